package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/colonyops/mindflow/internal/core/kv"
	"github.com/colonyops/mindflow/internal/core/kv/kvtest"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKVStore(t *testing.T) (*KVStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	store, err := Open(t.Context(), "redis://"+server.Addr()+"/0", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, server
}

func TestKVStore(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.KV {
		store, _ := newTestKVStore(t)
		return store
	})
}

func TestKVStore_KeysArePrefixed(t *testing.T) {
	store, server := newTestKVStore(t)

	require.NoError(t, store.Set(t.Context(), "@mindflow_data", []byte("[]")))

	assert.True(t, server.Exists(DefaultPrefix+"@mindflow_data"))
	assert.False(t, server.Exists("@mindflow_data"))
}

func TestKVStore_ListKeysIgnoresForeignKeys(t *testing.T) {
	store, server := newTestKVStore(t)

	require.NoError(t, server.Set("other:key", "x"))
	require.NoError(t, store.Set(t.Context(), "b", []byte("1")))
	require.NoError(t, store.Set(t.Context(), "a", []byte("2")))

	keys, err := store.ListKeys(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestOpen_InvalidURL(t *testing.T) {
	_, err := Open(t.Context(), "not-a-url", "")
	require.Error(t, err)
}

func TestNewKVStore_CustomPrefix(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	store := NewKVStore(client, "test:")
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(t.Context(), "k", []byte("v")))
	assert.True(t, server.Exists("test:k"))
}
