// Package memory provides a process-local kv.KV backend.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/colonyops/mindflow/internal/core/kv"
	mapstore "github.com/colonyops/mindflow/pkg/kv"
)

// KVStore implements kv.KV on top of an in-memory map. Data does not
// survive the process.
type KVStore struct {
	data *mapstore.Store[string, []byte]
}

var _ kv.KV = (*KVStore)(nil)

// NewKVStore creates an empty in-memory store.
func NewKVStore() *KVStore {
	return &KVStore{data: mapstore.New[string, []byte]()}
}

// Get returns a copy of the stored payload.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.data.Get(key)
	if !ok {
		return nil, fmt.Errorf("kv get %q: %w", key, kv.ErrNotFound)
	}
	return bytes.Clone(v), nil
}

// Set stores a copy of value.
func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.data.Set(key, bytes.Clone(value))
	return nil
}

// Delete removes a key.
func (s *KVStore) Delete(_ context.Context, key string) error {
	s.data.Delete(key)
	return nil
}

// Has returns whether a key exists.
func (s *KVStore) Has(_ context.Context, key string) (bool, error) {
	return s.data.Has(key), nil
}

// ListKeys returns all keys in sorted order.
func (s *KVStore) ListKeys(_ context.Context) ([]string, error) {
	keys := s.data.Keys()
	slices.Sort(keys)
	return keys, nil
}
