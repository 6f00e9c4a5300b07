// Package jsonfile implements kv.KV as a single JSON document on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/colonyops/mindflow/internal/core/kv"
)

// FileName is the default document name inside the data directory.
const FileName = "mindflow.json"

// KVStore implements kv.KV using a JSON file that maps keys to payload
// strings. Every write rewrites the whole document through a temp file and
// a rename.
type KVStore struct {
	path string
	mu   sync.RWMutex
}

var _ kv.KV = (*KVStore)(nil)

// NewKVStore creates a store backed by the file at path. The file and its
// parent directory are created on first write.
func NewKVStore(path string) *KVStore {
	return &KVStore{path: path}
}

// Path returns the backing file path.
func (s *KVStore) Path() string {
	return s.path
}

// Get returns the payload stored under key, or an error wrapping
// kv.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	value, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", kv.ErrNotFound, key)
	}
	return []byte(value), nil
}

// Set stores value under key and rewrites the document.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc[key] = string(value)
	return s.save(doc)
}

// Delete removes key. Deleting a missing key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return s.save(doc)
}

// Has reports whether key holds a payload.
func (s *KVStore) Has(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}
	_, ok := doc[key]
	return ok, nil
}

// ListKeys returns every key in sorted order.
func (s *KVStore) ListKeys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// load reads the document from disk.
// Returns an empty document if the file doesn't exist or is empty.
func (s *KVStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	doc := map[string]string{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return doc, nil
}

// save writes the document to disk atomically.
func (s *KVStore) save(doc map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
