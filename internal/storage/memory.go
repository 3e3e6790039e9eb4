package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-memory KV implementation. It backs tests and any
// session that should not touch disk.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory key-value store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Load returns the value stored under key, if any.
func (m *MemoryKV) Load(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if err := validateString(key, "key"); err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Save writes value under key, replacing any previous value.
func (m *MemoryKV) Save(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryKV) Close() error {
	return nil
}
