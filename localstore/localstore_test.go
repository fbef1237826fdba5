package localstore

import (
	"errors"
	"testing"
)

func TestStore_SetAndGet(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := store.Set("testDoc", doc{Name: "grove", Count: 3}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got doc
	if err := store.Get("testDoc", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "grove" || got.Count != 3 {
		t.Errorf("Round trip mismatch: %+v", got)
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	var got string
	err = store.Get("nothingHere", &got)
	if !errors.Is(err, ErrNoDocument) {
		t.Fatalf("Expected ErrNoDocument, got %v", err)
	}
}

func TestStore_OverwriteAndDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	_ = store.Set("key", []string{"a"})
	_ = store.Set("key", []string{"a", "b"})

	var got []string
	if err := store.Get("key", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected overwrite to stick, got %v", got)
	}

	if err := store.Delete("key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Get("key", &got); !errors.Is(err, ErrNoDocument) {
		t.Errorf("Expected ErrNoDocument after delete, got %v", err)
	}
}

func TestStore_DeleteMissingKeyIsNoop(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Delete("neverExisted"); err != nil {
		t.Errorf("Expected deleting a missing key to succeed, got %v", err)
	}
}
