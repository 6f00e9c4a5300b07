package mindflow

import (
	"context"
	"time"

	"github.com/colonyops/mindflow/internal/core/item"
)

// LibraryService serves read-only views derived from the item collection.
// Every call works on a fresh snapshot.
type LibraryService struct {
	store item.Store
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(store item.Store) *LibraryService {
	return &LibraryService{store: store}
}

// View returns the items in v, sorted the way v defines.
func (s *LibraryService) View(ctx context.Context, v item.View) ([]item.Item, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return v.Select(items), nil
}

// RawThoughts returns active raw items, newest first.
func (s *LibraryService) RawThoughts(ctx context.Context) ([]item.Item, error) {
	return s.View(ctx, item.ViewRaw)
}

// Tasks returns active tasks, earliest due first and undated last.
func (s *LibraryService) Tasks(ctx context.Context) ([]item.Item, error) {
	return s.View(ctx, item.ViewTasks)
}

// Ideas returns active ideas, newest first.
func (s *LibraryService) Ideas(ctx context.Context) ([]item.Item, error) {
	return s.View(ctx, item.ViewIdeas)
}

// Archived returns archived items of every type, newest first.
func (s *LibraryService) Archived(ctx context.Context) ([]item.Item, error) {
	return s.View(ctx, item.ViewArchived)
}

// Search narrows view v to items whose text or tag contains query.
func (s *LibraryService) Search(ctx context.Context, v item.View, query string) ([]item.Item, error) {
	items, err := s.View(ctx, v)
	if err != nil {
		return nil, err
	}
	return item.Search(items, query), nil
}

// RawThoughtsByDay returns the raw thoughts matching query with a header
// before each calendar day in loc.
func (s *LibraryService) RawThoughtsByDay(ctx context.Context, query string, loc *time.Location) ([]item.Entry, error) {
	items, err := s.Search(ctx, item.ViewRaw, query)
	if err != nil {
		return nil, err
	}
	return item.GroupByDay(items, loc), nil
}

// Counts tallies every view.
func (s *LibraryService) Counts(ctx context.Context) (item.Counts, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return item.Counts{}, err
	}
	return item.Count(items), nil
}
