package db

import (
	"context"
	"errors"
	"path"
	"sync"
)

// ErrMockKeyNotFound mimics a Redis nil reply.
var ErrMockKeyNotFound = errors.New("mock redis: key not found")

// MockRedisClient simulates a Redis client for testing and local runs.
type MockRedisClient struct {
	data map[string]string
	mu   sync.RWMutex
	ctx  context.Context

	// FailWrites makes Set/Del return errors, to exercise fallback paths.
	FailWrites bool
}

// NewMockRedisClient initializes an empty in-memory client.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data: make(map[string]string),
		ctx:  ctx,
	}
}

func (m *MockRedisClient) Set(key, value string) error {
	if m.FailWrites {
		return errors.New("mock redis: write failure")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	if !ok {
		return "", ErrMockKeyNotFound
	}
	return val, nil
}

func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		matched, err := path.Match(pattern, k)
		if err != nil {
			return nil, err
		}
		if matched {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *MockRedisClient) Del(key string) error {
	if m.FailWrites {
		return errors.New("mock redis: write failure")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockRedisClient) GetContext() context.Context {
	return m.ctx
}

func (m *MockRedisClient) Ping() error {
	return nil
}
