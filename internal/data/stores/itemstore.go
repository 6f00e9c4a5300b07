package stores

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/core/kv"
	"github.com/rs/zerolog"
)

// DefaultItemsKey is the KV slot holding the item collection.
const DefaultItemsKey = "@mindflow_data"

// ItemStore implements item.Store as one JSON array in a single KV slot.
// Mutations are serialized by a mutex so concurrent load-modify-save cycles
// within the process never overwrite each other.
type ItemStore struct {
	slot *kv.TypedKV[item.Collection]
	log  zerolog.Logger
	mu   sync.Mutex
}

var _ item.Store = (*ItemStore)(nil)

// NewItemStore creates an item store over the given KV backend. An empty key
// selects DefaultItemsKey.
func NewItemStore(store kv.KV, key string, log zerolog.Logger) *ItemStore {
	if key == "" {
		key = DefaultItemsKey
	}
	return &ItemStore{
		slot: kv.Slot[item.Collection](store, key),
		log:  log.With().Str("key", key).Logger(),
	}
}

// LoadAll returns the collection in storage order. A missing slot, a payload
// that item.Decode rejects, or a failing read all yield an empty collection;
// the latter two are logged.
func (s *ItemStore) LoadAll(ctx context.Context) ([]item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored, err := s.slot.Get(ctx)
	switch {
	case err == nil:
		if stored == nil {
			return []item.Item{}, nil
		}
		return []item.Item(stored), nil
	case errors.Is(err, kv.ErrNotFound):
		return []item.Item{}, nil
	case errors.Is(err, kv.ErrDecode):
		s.log.Warn().Err(err).Msg("stored items are corrupt, treating as empty")
		return []item.Item{}, nil
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		s.log.Error().Err(err).Msg("failed to read items, treating as empty")
		return []item.Item{}, nil
	}
}

// SaveAll replaces the stored collection.
func (s *ItemStore) SaveAll(ctx context.Context, items []item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, items)
}

// Clear removes the stored payload entirely.
func (s *ItemStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.Delete(ctx); err != nil {
		return fmt.Errorf("%w: clear items: %w", item.ErrStorageWrite, err)
	}
	return nil
}

// Update loads the collection, passes it to fn, and saves the result, all
// while holding the writer lock.
func (s *ItemStore) Update(ctx context.Context, fn func(items []item.Item) ([]item.Item, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	next, err := fn(items)
	if errors.Is(err, item.ErrNoChange) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.save(ctx, next)
}

func (s *ItemStore) save(ctx context.Context, items []item.Item) error {
	if items == nil {
		items = []item.Item{}
	}
	if err := s.slot.Set(ctx, item.Collection(items)); err != nil {
		return fmt.Errorf("%w: save %d items: %w", item.ErrStorageWrite, len(items), err)
	}
	s.log.Debug().Int("count", len(items)).Msg("items saved")
	return nil
}
