// Package kvtest provides a behavioral test suite shared by every kv.KV backend.
package kvtest

import (
	"context"
	"testing"

	"github.com/colonyops/mindflow/internal/core/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises store against the kv.KV contract. newStore must return an
// empty store; it is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) kv.KV) {
	t.Helper()
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "key", []byte(`[{"id":"a"}]`)))

		got, err := store.Get(ctx, "key")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"a"}]`, string(got))
	})

	t.Run("get missing", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("set overwrites", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "key", []byte("first")))
		require.NoError(t, store.Set(ctx, "key", []byte("second")))

		got, err := store.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("delete", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "key", []byte("value")))
		require.NoError(t, store.Delete(ctx, "key"))

		has, err := store.Has(ctx, "key")
		require.NoError(t, err)
		assert.False(t, has)

		_, err = store.Get(ctx, "key")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Delete(ctx, "never-set"))
	})

	t.Run("has", func(t *testing.T) {
		store := newStore(t)

		has, err := store.Has(ctx, "key")
		require.NoError(t, err)
		assert.False(t, has)

		require.NoError(t, store.Set(ctx, "key", []byte("[]")))
		has, err = store.Has(ctx, "key")
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("list keys sorted", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "b", []byte("1")))
		require.NoError(t, store.Set(ctx, "a", []byte("2")))
		require.NoError(t, store.Set(ctx, "c", []byte("3")))

		keys, err := store.ListKeys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, keys)
	})

	t.Run("value is copied", func(t *testing.T) {
		store := newStore(t)

		buf := []byte("abc")
		require.NoError(t, store.Set(ctx, "key", buf))
		buf[0] = 'z'

		got, err := store.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
	})
}
