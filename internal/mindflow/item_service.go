package mindflow

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/core/logging"
	"github.com/colonyops/mindflow/pkg/randid"
	"github.com/rs/zerolog"
)

// ItemService performs every state transition on the item collection.
// Each mutation is a single load-modify-save cycle through item.Store.Update.
// Mutations addressed at an unknown id succeed without effect.
type ItemService struct {
	store item.Store
	log   zerolog.Logger
	newID func() string
	now   func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(store item.Store, log zerolog.Logger) *ItemService {
	return &ItemService{
		store: store,
		log:   logging.Scoped(log, "item-service"),
		newID: randid.New,
		now:   time.Now,
	}
}

// CreateRaw captures text as a new active raw thought at the front of the
// collection. Text that is blank after trimming is rejected with
// item.ErrEmptyText and nothing is written.
func (s *ItemService) CreateRaw(ctx context.Context, text string) (item.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return item.Item{}, item.ErrEmptyText
	}

	return s.create(logging.WithOperation(ctx, "create-raw"), item.Item{
		Text: text,
		Type: item.TypeRaw,
	})
}

// CreateTyped captures a task or idea directly. Due date and completion are
// dropped for ideas.
func (s *ItemService) CreateTyped(ctx context.Context, t item.Type, f item.Fields) (item.Item, error) {
	if t != item.TypeTask && t != item.TypeIdea {
		return item.Item{}, fmt.Errorf("%w: cannot create %q directly (want task or idea)", item.ErrInvalidType, t)
	}

	it := item.Item{
		Text: strings.TrimSpace(f.Text),
		Type: t,
	}
	item.Patch{Tag: f.Tag}.Apply(&it)
	if t == item.TypeTask {
		if f.DueDate != nil {
			it.DueDate = f.DueDate.Ptr()
		}
		it.IsCompleted = f.IsCompleted
	}

	return s.create(logging.WithOperation(ctx, "create-typed"), it)
}

func (s *ItemService) create(ctx context.Context, it item.Item) (item.Item, error) {
	it.Status = item.StatusActive
	it.CreatedAt = item.NewTimestamp(s.now())

	err := s.store.Update(ctx, func(items []item.Item) ([]item.Item, error) {
		it.ID = s.newID()
		for item.IndexOf(items, it.ID) >= 0 {
			it.ID = s.newID()
		}
		return append([]item.Item{it}, items...), nil
	})
	if err != nil {
		return item.Item{}, fmt.Errorf("create %s item: %w", it.Type, err)
	}

	s.log.Info().Ctx(logging.WithItemID(ctx, it.ID)).Str("type", string(it.Type)).Msg("item created")
	return it.Clone(), nil
}

// UpdateFields merges the set fields of p into the item.
func (s *ItemService) UpdateFields(ctx context.Context, id string, p item.Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.IsEmpty() {
		return nil
	}

	return s.mutate(ctx, "update", id, func(it *item.Item) bool {
		return p.Apply(it)
	})
}

// ConvertType reclassifies the item as newType, reactivates it, and merges
// the overrides in p. Leaving TASK clears the due date and completion flag.
func (s *ItemService) ConvertType(ctx context.Context, id string, newType item.Type, p item.Patch) error {
	if !newType.IsValid() {
		return fmt.Errorf("%w: %q", item.ErrInvalidType, newType)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	return s.mutate(ctx, "convert", id, func(it *item.Item) bool {
		return item.Convert(it, newType, p)
	})
}

// Archive hides the item from its active view.
func (s *ItemService) Archive(ctx context.Context, id string) error {
	return s.setStatus(ctx, "archive", id, item.StatusArchived)
}

// Restore returns an archived item to its active view.
func (s *ItemService) Restore(ctx context.Context, id string) error {
	return s.setStatus(ctx, "restore", id, item.StatusActive)
}

func (s *ItemService) setStatus(ctx context.Context, op, id string, status item.Status) error {
	return s.mutate(ctx, op, id, func(it *item.Item) bool {
		if it.Status == status {
			return false
		}
		it.Status = status
		return true
	})
}

// ToggleCompleted flips the completion flag. The item type is not checked.
func (s *ItemService) ToggleCompleted(ctx context.Context, id string) error {
	return s.mutate(ctx, "toggle", id, func(it *item.Item) bool {
		it.IsCompleted = !it.IsCompleted
		return true
	})
}

// Delete removes every item with id permanently. Imported collections may
// hold duplicate ids; none of them survive.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	ctx = logging.WithItemID(logging.WithOperation(ctx, "delete"), id)

	deleted := 0
	err := s.store.Update(ctx, func(items []item.Item) ([]item.Item, error) {
		before := len(items)
		items = slices.DeleteFunc(items, func(it item.Item) bool { return it.ID == id })
		deleted = before - len(items)
		if deleted == 0 {
			s.log.Debug().Ctx(ctx).Msg("item not found")
			return nil, item.ErrNoChange
		}
		return items, nil
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}

	if deleted > 0 {
		s.log.Info().Ctx(ctx).Int("count", deleted).Msg("item deleted")
	}
	return nil
}

// Get returns the item with id, or an error wrapping item.ErrNotFound.
func (s *ItemService) Get(ctx context.Context, id string) (item.Item, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return item.Item{}, err
	}

	idx := item.IndexOf(items, id)
	if idx < 0 {
		return item.Item{}, fmt.Errorf("%w: %s", item.ErrNotFound, id)
	}
	return items[idx], nil
}

// ClearAll removes the whole collection from storage.
func (s *ItemService) ClearAll(ctx context.Context) error {
	ctx = logging.WithOperation(ctx, "clear")
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	s.log.Warn().Ctx(ctx).Msg("all items cleared")
	return nil
}

// mutate applies fn to every item with id inside one store update. fn
// reports whether it changed anything; when nothing matched or nothing
// changed the collection is not written.
func (s *ItemService) mutate(ctx context.Context, op, id string, fn func(it *item.Item) bool) error {
	ctx = logging.WithItemID(logging.WithOperation(ctx, op), id)

	changed := false
	err := s.store.Update(ctx, func(items []item.Item) ([]item.Item, error) {
		matched := false
		for i := range items {
			if items[i].ID != id {
				continue
			}
			matched = true
			if fn(&items[i]) {
				changed = true
			}
		}
		if !matched {
			s.log.Debug().Ctx(ctx).Msg("item not found")
		}
		if !changed {
			return nil, item.ErrNoChange
		}
		return items, nil
	})
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, id, err)
	}

	if changed {
		s.log.Debug().Ctx(ctx).Msg("item updated")
	}
	return nil
}
