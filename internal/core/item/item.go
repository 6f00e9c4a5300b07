// Package item defines the captured-note domain model: raw thoughts that can
// be reclassified into tasks or ideas, archived, restored, or deleted.
package item

import (
	"fmt"
	"strings"
)

// Type classifies an item.
type Type string

const (
	// TypeRaw is an unclassified, freshly captured thought.
	TypeRaw Type = "raw"
	// TypeTask is an actionable to-do with an optional due date.
	TypeTask Type = "task"
	// TypeIdea is a freeform, non-actionable note.
	TypeIdea Type = "idea"
)

// Types lists every valid Type in display order.
var Types = []Type{TypeRaw, TypeTask, TypeIdea}

// IsValid reports whether t is one of the known types.
func (t Type) IsValid() bool {
	switch t {
	case TypeRaw, TypeTask, TypeIdea:
		return true
	}
	return false
}

// UnmarshalText accepts any letter case ("TASK", "task").
func (t *Type) UnmarshalText(b []byte) error {
	*t = Type(strings.ToLower(string(b)))
	return nil
}

// ParseType parses user input into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q (want raw, task or idea)", ErrInvalidType, s)
	}
	return t, nil
}

// Status is the lifecycle state of an item, orthogonal to its type.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusArchived
}

// UnmarshalText accepts any letter case ("ARCHIVED", "archived").
func (s *Status) UnmarshalText(b []byte) error {
	*s = Status(strings.ToLower(string(b)))
	return nil
}

// Item is a single captured thought, task, or idea.
//
// DueDate and IsCompleted only carry meaning for tasks; the engine clears
// them when an item stops being a task.
type Item struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Type        Type       `json:"type"`
	Status      Status     `json:"status"`
	CreatedAt   Timestamp  `json:"createdAt"`
	DueDate     *Timestamp `json:"dueDate"`
	IsCompleted bool       `json:"isCompleted"`
	Tag         *string    `json:"tag"`
}

// IsActive reports whether the item is not archived.
func (it Item) IsActive() bool {
	return it.Status == StatusActive
}

// TagValue returns the tag or "" when unset.
func (it Item) TagValue() string {
	if it.Tag == nil {
		return ""
	}
	return *it.Tag
}

// Clone returns a deep copy; pointer fields are not shared with it.
func (it Item) Clone() Item {
	out := it
	if it.DueDate != nil {
		d := *it.DueDate
		out.DueDate = &d
	}
	if it.Tag != nil {
		tag := *it.Tag
		out.Tag = &tag
	}
	return out
}

// CloneAll deep-copies a collection. A nil input yields an empty, non-nil slice.
func CloneAll(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// IndexOf returns the position of the item with id, or -1.
func IndexOf(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// normalizeTag trims a tag and maps blank to nil.
func normalizeTag(tag *string) *string {
	if tag == nil {
		return nil
	}
	v := strings.TrimSpace(*tag)
	if v == "" {
		return nil
	}
	return &v
}
