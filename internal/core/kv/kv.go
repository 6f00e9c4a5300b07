// Package kv defines the key-value substrate the item store persists into.
// Backends live in internal/data/stores (SQLite), internal/store/jsonfile,
// internal/store/redis and internal/store/memory.
package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("kv: key not found")
	// ErrDecode is returned by TypedKV.Get when the stored payload cannot be
	// decoded into the requested type.
	ErrDecode = errors.New("kv: decode value")
)

// KV is a persistent key-value store of opaque text payloads.
// Set replaces the whole value in one step; readers never observe a
// partially written value.
type KV interface {
	// Get returns the stored payload. Returns an error wrapping ErrNotFound
	// if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores the payload, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Has returns whether a key exists.
	Has(ctx context.Context, key string) (bool, error)
	// ListKeys returns all keys in sorted order.
	ListKeys(ctx context.Context) ([]string, error)
}
