// Package memory provides in-memory implementations of the persistence ports.
package memory

import (
	"context"
	"sync"

	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/ports"
)

// ErrNotFound is returned when an entity is not found.
var ErrNotFound = fault.ErrNotFound

// KVStore is an in-memory implementation of ports.KVStore.
type KVStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewKVStore creates an empty store.
func NewKVStore() *KVStore {
	return &KVStore{values: make(map[string][]byte)}
}

// Get returns a copy of the value under key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of value under key.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Keys returns the stored keys (for tests and diagnostics).
func (s *KVStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// Ping always succeeds.
func (s *KVStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *KVStore) Close() error { return nil }

var _ ports.KVStore = (*KVStore)(nil)
