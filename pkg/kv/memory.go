package kv

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes Set and Delete return an error, for exercising
	// storage-failure paths in tests.
	FailWrites error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

// Set implements Store.
func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ping implements Store.
func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
