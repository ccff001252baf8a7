package storage

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests and throwaway runs.
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.records[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Update(_ context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Stage writes; merge only if fn succeeds.
	staged := &memoryTx{store: m, writes: make(map[string][]byte)}
	if err := fn(staged); err != nil {
		return err
	}
	for key, value := range staged.writes {
		m.records[key] = value
	}
	return nil
}

type memoryTx struct {
	store  *Memory
	writes map[string][]byte
}

func (t *memoryTx) Get(key string) ([]byte, error) {
	if value, ok := t.writes[key]; ok {
		return append([]byte(nil), value...), nil
	}
	value, ok := t.store.records[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (t *memoryTx) Set(key string, value []byte) error {
	t.writes[key] = append([]byte(nil), value...)
	return nil
}
