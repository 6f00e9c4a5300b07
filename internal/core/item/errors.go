package item

import "errors"

var (
	// ErrNotFound is returned by lookups for an id that is not in the collection.
	// Mutations treat a missing id as a no-op instead.
	ErrNotFound = errors.New("item not found")
	// ErrEmptyText is returned when item text is blank after trimming.
	ErrEmptyText = errors.New("item text is empty")
	// ErrInvalidType is returned for an unknown type or a type not allowed by the operation.
	ErrInvalidType = errors.New("invalid item type")
	// ErrMalformed is returned by Decode when a payload is not a JSON array of items.
	ErrMalformed = errors.New("malformed item payload")
	// ErrStorageWrite wraps substrate failures while persisting the collection.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrNoChange may be returned by an Update callback to skip the write.
	ErrNoChange = errors.New("no change")
)
