package stores

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/colonyops/mindflow/internal/core/config"
	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/data/db"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend config.Backend) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Storage.Backend = backend
	return &cfg
}

func TestOpenBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend config.Backend
		setup   func(t *testing.T, cfg *config.Config)
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			name:    "sqlite",
			backend: config.BackendSQLite,
			check: func(t *testing.T, cfg *config.Config) {
				_, err := os.Stat(filepath.Join(cfg.DataDir, db.FileName))
				assert.NoError(t, err)
			},
		},
		{
			name:    "jsonfile",
			backend: config.BackendJSONFile,
			check: func(t *testing.T, cfg *config.Config) {
				_, err := os.Stat(cfg.StorageFile())
				assert.NoError(t, err)
			},
		},
		{
			name:    "redis",
			backend: config.BackendRedis,
			setup: func(t *testing.T, cfg *config.Config) {
				server := miniredis.RunT(t)
				cfg.Storage.RedisURL = "redis://" + server.Addr() + "/0"
			},
		},
		{
			name:    "memory",
			backend: config.BackendMemory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.backend)
			if tt.setup != nil {
				tt.setup(t, cfg)
			}

			backend, err := OpenBackend(t.Context(), cfg, zerolog.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = backend.Close() })

			store := NewItemStore(backend.KV, cfg.Storage.Key, zerolog.Nop())
			require.NoError(t, store.SaveAll(t.Context(), []item.Item{newItem("a")}))

			items, err := store.LoadAll(t.Context())
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "a", items[0].ID)

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestOpenBackend_RedisUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	cfg := testConfig(t, config.BackendRedis)
	cfg.Storage.RedisURL = "redis://" + addr + "/0"

	_, err := OpenBackend(t.Context(), cfg, zerolog.Nop())
	require.Error(t, err)
}

func TestOpenBackend_Unknown(t *testing.T) {
	cfg := testConfig(t, "etcd")

	_, err := OpenBackend(t.Context(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}
