package stores

import (
	"context"
	"fmt"

	"github.com/colonyops/mindflow/internal/core/config"
	"github.com/colonyops/mindflow/internal/core/kv"
	"github.com/colonyops/mindflow/internal/data/db"
	"github.com/colonyops/mindflow/internal/store/jsonfile"
	"github.com/colonyops/mindflow/internal/store/memory"
	"github.com/colonyops/mindflow/internal/store/redis"
	"github.com/rs/zerolog"
)

// Backend is an opened KV substrate and the function that releases it.
type Backend struct {
	KV    kv.KV
	Close func() error
}

// OpenBackend opens the KV substrate selected by cfg.Storage.Backend.
func OpenBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Backend, error) {
	noop := func() error { return nil }
	log = log.With().Str("backend", string(cfg.Storage.Backend)).Logger()

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		database, err := OpenDatabase(cfg.DataDir, db.OpenOptions{
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			BusyTimeout:  cfg.Database.BusyTimeout,
		}, log)
		if err != nil {
			return Backend{}, fmt.Errorf("open database: %w", err)
		}
		log.Debug().Str("data_dir", cfg.DataDir).Msg("storage opened")
		return Backend{KV: NewKVStore(database), Close: database.Close}, nil

	case config.BackendJSONFile:
		log.Debug().Str("file", cfg.StorageFile()).Msg("storage opened")
		return Backend{KV: jsonfile.NewKVStore(cfg.StorageFile()), Close: noop}, nil

	case config.BackendRedis:
		store, err := redis.Open(ctx, cfg.Storage.RedisURL, cfg.Storage.RedisPrefix)
		if err != nil {
			return Backend{}, err
		}
		log.Debug().Msg("storage opened")
		return Backend{KV: store, Close: store.Close}, nil

	case config.BackendMemory:
		log.Warn().Msg("memory storage selected, items are discarded on exit")
		return Backend{KV: memory.NewKVStore(), Close: noop}, nil
	}

	return Backend{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
