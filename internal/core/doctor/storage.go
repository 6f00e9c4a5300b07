package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/core/kv"
)

// StorageCheck inspects the raw item payload in the KV substrate. Unlike
// item.Store.LoadAll, which reads a corrupt payload as an empty collection,
// it reports the corruption so it can be repaired before the next write
// replaces it.
type StorageCheck struct {
	store kv.KV
	key   string
}

// NewStorageCheck creates a new storage check.
func NewStorageCheck(store kv.KV, key string) *StorageCheck {
	return &StorageCheck{store: store, key: key}
}

func (c *StorageCheck) Name() string {
	return "Storage"
}

func (c *StorageCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	data, err := c.store.Get(ctx, c.key)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		result.Items = append(result.Items, pass("payload", fmt.Sprintf("%s is empty", c.key)))
		return result
	case err != nil:
		result.Items = append(result.Items, fail("payload", fmt.Sprintf("read %s: %v", c.key, err)))
		return result
	}

	items, err := item.Decode(data)
	if err != nil {
		result.Items = append(result.Items, fail("payload", fmt.Sprintf("%s is corrupt and loads as empty: %v", c.key, err)))
		return result
	}
	result.Items = append(result.Items, pass("payload", fmt.Sprintf("%d items", len(items))))
	result.Items = append(result.Items, integrity(items)...)

	return result
}

// integrity checks the collection invariants the lifecycle engine maintains.
// Imported backups can violate them.
func integrity(items []item.Item) []CheckItem {
	seen := make(map[string]bool, len(items))
	var dupes, badEnum, strayDue int
	for _, it := range items {
		if seen[it.ID] {
			dupes++
		}
		seen[it.ID] = true

		if !it.Type.IsValid() || !it.Status.IsValid() {
			badEnum++
		}
		if it.Type != item.TypeTask && it.DueDate != nil {
			strayDue++
		}
	}

	var out []CheckItem
	if dupes > 0 {
		out = append(out, fail("unique ids", fmt.Sprintf("%d duplicate ids", dupes)))
	} else {
		out = append(out, pass("unique ids", ""))
	}
	if badEnum > 0 {
		out = append(out, warn("types", fmt.Sprintf("%d items with unknown type or status", badEnum)))
	} else {
		out = append(out, pass("types", ""))
	}
	if strayDue > 0 {
		out = append(out, warn("due dates", fmt.Sprintf("%d non-task items carry a due date", strayDue)))
	} else {
		out = append(out, pass("due dates", ""))
	}
	return out
}
