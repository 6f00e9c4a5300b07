package item

import "context"

// Store persists the whole item collection as a single value.
//
// Every read returns a fresh snapshot and every write replaces the whole
// collection.
type Store interface {
	// LoadAll returns the collection in storage order (newest insert first).
	// A missing or unreadable payload yields an empty collection; the only
	// error returned is a done context.
	LoadAll(ctx context.Context) ([]Item, error)

	// SaveAll replaces the stored collection. Failures wrap ErrStorageWrite.
	SaveAll(ctx context.Context, items []Item) error

	// Clear removes the stored payload. Failures wrap ErrStorageWrite.
	Clear(ctx context.Context) error

	// Update runs a load-modify-save cycle under the store's writer lock.
	// fn receives a snapshot it may modify freely. Returning ErrNoChange
	// skips the write and makes Update return nil.
	Update(ctx context.Context, fn func(items []Item) ([]Item, error)) error
}
