package usagestore

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-memory Store. Keys survive only for the process
// lifetime; use it when the caller opts out of persistence.
type Memory struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{keys: make(map[string]struct{})}
}

// Load returns all stored keys, sorted.
func (m *Memory) Load(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.keys))
	for k := range m.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

// Save replaces the stored key set.
func (m *Memory) Save(ctx context.Context, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k != "" {
			m.keys[k] = struct{}{}
		}
	}
	return nil
}

// Close is a no-op for memory storage.
func (m *Memory) Close() error {
	return nil
}
