package item

import "strings"

// Fields are the caller-supplied values for a typed capture. Zero values are
// the defaults: empty text, no due date, not completed, no tag.
type Fields struct {
	Text        string
	DueDate     *Timestamp
	IsCompleted bool
	Tag         *string
}

// Patch is a partial update. Nil pointers and false Clear flags leave the
// corresponding field untouched.
type Patch struct {
	Text         *string
	Tag          *string
	ClearTag     bool
	DueDate      *Timestamp
	ClearDueDate bool
	IsCompleted  *bool
}

// IsEmpty reports whether the patch would change nothing on any item.
func (p Patch) IsEmpty() bool {
	return p.Text == nil && p.Tag == nil && !p.ClearTag &&
		p.DueDate == nil && !p.ClearDueDate && p.IsCompleted == nil
}

// Validate rejects a patch that would blank the item text.
func (p Patch) Validate() error {
	if p.Text != nil && strings.TrimSpace(*p.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// Apply merges the patch into it and reports whether anything changed.
// Text and tag are trimmed; a blank tag clears it. ClearTag/ClearDueDate win
// over a value supplied in the same patch.
func (p Patch) Apply(it *Item) bool {
	before := it.Clone()

	if p.Text != nil {
		it.Text = strings.TrimSpace(*p.Text)
	}

	switch {
	case p.ClearTag:
		it.Tag = nil
	case p.Tag != nil:
		it.Tag = normalizeTag(p.Tag)
	}

	switch {
	case p.ClearDueDate:
		it.DueDate = nil
	case p.DueDate != nil:
		it.DueDate = p.DueDate.Ptr()
	}

	if p.IsCompleted != nil {
		it.IsCompleted = *p.IsCompleted
	}

	return !equalItems(before, *it)
}

// withoutTaskFields returns the patch with due date and completion
// overrides removed, for items that are not tasks.
func (p Patch) withoutTaskFields() Patch {
	p.DueDate = nil
	p.ClearDueDate = false
	p.IsCompleted = nil
	return p
}

// Convert changes it to newType and reactivates it, then merges the
// overrides in p.
//
// Leaving TASK clears the due date and completion flag before overrides are
// applied, and task-only overrides are ignored when newType is not TASK, so a
// non-task never carries a due date.
func Convert(it *Item, newType Type, p Patch) bool {
	before := it.Clone()

	if newType != TypeTask {
		it.DueDate = nil
		it.IsCompleted = false
		p = p.withoutTaskFields()
	}

	it.Type = newType
	it.Status = StatusActive
	p.Apply(it)

	return !equalItems(before, *it)
}

func equalItems(a, b Item) bool {
	if a.ID != b.ID || a.Text != b.Text || a.Type != b.Type || a.Status != b.Status ||
		a.IsCompleted != b.IsCompleted || !a.CreatedAt.Equal(b.CreatedAt.Time) {
		return false
	}
	if (a.Tag == nil) != (b.Tag == nil) || (a.Tag != nil && *a.Tag != *b.Tag) {
		return false
	}
	if (a.DueDate == nil) != (b.DueDate == nil) || (a.DueDate != nil && !a.DueDate.Equal(b.DueDate.Time)) {
		return false
	}
	return true
}
