package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoDocument is returned when no document exists under the given key.
var ErrNoDocument = errors.New("localstore: no document")

// Store is a small file-backed key/JSON-document store, the server-side
// stand-in for the browser's localStorage tier. One file per key, writes
// are atomic (temp file + rename).
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore opens a store rooted at dir, creating it as needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store dir %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Get unmarshals the document stored under key into v.
func (s *Store) Get(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNoDocument
	}
	if err != nil {
		return fmt.Errorf("failed to read document %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal document %q: %w", key, err)
	}
	return nil
}

// Set stores v as the JSON document under key.
func (s *Store) Set(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal document %q: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to commit document %q: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Deleting a missing key is not an
// error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
