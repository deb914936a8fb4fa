package store

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned by a KV when the key holds no value.
var ErrNotFound = errors.New("store: key not found")

// KV is the raw key-value storage the trip and chat stores persist into. Each
// key holds one whole JSON document; writes replace it entirely.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Keys(ctx context.Context) []string
	Close() error
}

// NewMemory returns an in-process KV, seeded with the given key/value pairs.
func NewMemory(seed map[string][]byte) *Memory {
	m := &Memory{data: make(map[string][]byte, len(seed))}
	for k, v := range seed {
		m.data[k] = append([]byte(nil), v...)
	}
	return m
}

// Memory is a KV held in a map. It is safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

var _ KV = (*Memory)(nil)

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), val...)
	return nil
}

func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Memory) Close() error { return nil }
