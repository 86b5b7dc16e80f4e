// Package repo contains all persistence logic for the Ventureline backend.
// The durable layer is a small key-value contract (KVStore) with one file per
// backend; the favorites and bookings collections are encoded on top of it.
// No business logic lives here, only storage access and JSON mapping.
package repo

import (
	"context"
	"slices"
	"sync"
)

// Storage keys. Each value is a UTF-8 JSON document. These names are shared
// with the front-end's local storage and must not change.
const (
	FavoritesKey = "ventureline_favorites"
	BookingsKey  = "ventureline_bookings"
)

// KVStore is durable key-value storage holding JSON documents.
// The favorite and booking repos depend on this interface, not on a concrete
// backend, which lets the same encoding logic run against memory, Postgres,
// Redis or object storage.
type KVStore interface {
	// Get returns the value stored under key. The boolean is false, with a nil
	// error, when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the value stored under key. value must be valid JSON.
	Set(ctx context.Context, key string, value []byte) error
}

// memoryKVStore keeps values in process memory. Contents are lost on exit.
type memoryKVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKVStore returns an empty in-process KVStore.
func NewMemoryKVStore() KVStore {
	return &memoryKVStore{data: make(map[string][]byte)}
}

func (m *memoryKVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (m *memoryKVStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = slices.Clone(value)
	return nil
}
