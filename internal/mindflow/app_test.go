package mindflow

import (
	"sync"
	"testing"
	"time"

	"github.com/colonyops/mindflow/internal/core/config"
	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/data/stores"
	"github.com/colonyops/mindflow/internal/store/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// stepClock returns a time that advances one minute per call.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	backend := memory.NewKVStore()
	store := stores.NewItemStore(backend, cfg.Storage.Key, zerolog.Nop())

	app := NewApp(store, backend, &cfg, zerolog.Nop())
	clock := &stepClock{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	app.Items.now = clock.Now
	return app
}

func ids(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func mustTimestamp(t *testing.T, s string) item.Timestamp {
	t.Helper()
	ts, err := item.ParseTimestamp(s, time.UTC)
	require.NoError(t, err)
	return ts
}
