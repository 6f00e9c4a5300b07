package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// TypedKV stores a single JSON-encoded value of type T under a fixed key.
type TypedKV[T any] struct {
	store KV
	key   string
}

// Slot returns a TypedKV[T] bound to key. Values are written as compact JSON.
func Slot[T any](store KV, key string) *TypedKV[T] {
	return &TypedKV[T]{store: store, key: key}
}

// Key returns the key the slot is bound to.
func (t *TypedKV[T]) Key() string {
	return t.key
}

// Get retrieves and decodes the value.
// Returns an error wrapping ErrNotFound if the slot is empty, or ErrDecode if
// the payload is not valid JSON for T.
func (t *TypedKV[T]) Get(ctx context.Context) (T, error) {
	var v T
	data, err := t.store.Get(ctx, t.key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w %q: %w", ErrDecode, t.key, err)
	}
	return v, nil
}

// Set encodes and stores the value.
func (t *TypedKV[T]) Set(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set %q marshal: %w", t.key, err)
	}
	return t.store.Set(ctx, t.key, data)
}

// Delete empties the slot.
func (t *TypedKV[T]) Delete(ctx context.Context) error {
	return t.store.Delete(ctx, t.key)
}

// Has returns whether the slot holds a value.
func (t *TypedKV[T]) Has(ctx context.Context) (bool, error) {
	return t.store.Has(ctx, t.key)
}
