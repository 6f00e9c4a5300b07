package item

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// View names one of the derived lists.
type View string

const (
	ViewRaw      View = "raw"
	ViewTasks    View = "tasks"
	ViewIdeas    View = "ideas"
	ViewArchived View = "archived"
)

// Views lists every view in display order.
var Views = []View{ViewRaw, ViewTasks, ViewIdeas, ViewArchived}

// ParseView parses user input into a View. Singular forms are accepted.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw", "thoughts":
		return ViewRaw, nil
	case "tasks", "task":
		return ViewTasks, nil
	case "ideas", "idea":
		return ViewIdeas, nil
	case "archived", "archive":
		return ViewArchived, nil
	}
	return "", fmt.Errorf("unknown view %q (want raw, tasks, ideas or archived)", s)
}

// Select derives the view from the full collection.
func (v View) Select(items []Item) []Item {
	switch v {
	case ViewRaw:
		return RawThoughts(items)
	case ViewTasks:
		return Tasks(items)
	case ViewIdeas:
		return Ideas(items)
	case ViewArchived:
		return Archived(items)
	}
	return []Item{}
}

// RawThoughts returns active raw items, newest first.
func RawThoughts(items []Item) []Item {
	out := filter(items, func(it Item) bool { return it.Type == TypeRaw && it.Status == StatusActive })
	slices.SortStableFunc(out, byCreatedDesc)
	return out
}

// Tasks returns active tasks ordered by due date (earliest first, undated
// last), ties broken by newest creation first.
func Tasks(items []Item) []Item {
	out := filter(items, func(it Item) bool { return it.Type == TypeTask && it.Status == StatusActive })
	slices.SortStableFunc(out, byDueAsc)
	return out
}

// Ideas returns active ideas, newest first.
func Ideas(items []Item) []Item {
	out := filter(items, func(it Item) bool { return it.Type == TypeIdea && it.Status == StatusActive })
	slices.SortStableFunc(out, byCreatedDesc)
	return out
}

// Archived returns archived items of every type, newest first.
func Archived(items []Item) []Item {
	out := filter(items, func(it Item) bool { return it.Status == StatusArchived })
	slices.SortStableFunc(out, byCreatedDesc)
	return out
}

// Search keeps items whose text or tag contains query, ignoring case. The
// query is matched as given, surrounding spaces included; only the empty
// string returns items unchanged.
func Search(items []Item, query string) []Item {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	return filter(items, func(it Item) bool {
		return strings.Contains(strings.ToLower(it.Text), q) ||
			(it.Tag != nil && strings.Contains(strings.ToLower(*it.Tag), q))
	})
}

func filter(items []Item, keep func(Item) bool) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it.Clone())
		}
	}
	return out
}

func byCreatedDesc(a, b Item) int {
	return b.CreatedAt.Compare(a.CreatedAt.Time)
}

func byDueAsc(a, b Item) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return byCreatedDesc(a, b)
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	}
	if c := a.DueDate.Compare(b.DueDate.Time); c != 0 {
		return c
	}
	return byCreatedDesc(a, b)
}

// DayHeader marks the start of a calendar day in a grouped list.
type DayHeader struct {
	ID   string    `json:"id"`   // header-YYYY-MM-DD
	Date string    `json:"date"` // YYYY-MM-DD
	Day  time.Time `json:"-"`    // midnight of the day in the grouping location
}

// Entry is either a day header or an item in a grouped list.
type Entry struct {
	Header *DayHeader `json:"header,omitempty"`
	Item   *Item      `json:"item,omitempty"`
}

// IsHeader reports whether the entry is a day header.
func (e Entry) IsHeader() bool {
	return e.Header != nil
}

// GroupByDay inserts a header before the first item of each calendar day in
// loc. items must already be sorted newest first, as RawThoughts returns them.
func GroupByDay(items []Item, loc *time.Location) []Entry {
	if loc == nil {
		loc = time.Local
	}

	entries := make([]Entry, 0, len(items)+len(items)/2)
	lastDate := ""
	for _, it := range items {
		local := it.CreatedAt.In(loc)
		date := local.Format(time.DateOnly)
		if date != lastDate {
			y, m, d := local.Date()
			entries = append(entries, Entry{Header: &DayHeader{
				ID:   "header-" + date,
				Date: date,
				Day:  time.Date(y, m, d, 0, 0, 0, 0, loc),
			}})
			lastDate = date
		}
		c := it.Clone()
		entries = append(entries, Entry{Item: &c})
	}
	return entries
}

// FormatDayHeader labels a day relative to now: "Today, January 2",
// "Yesterday, January 2", or "January 2, 2006" for anything older.
func FormatDayHeader(day, now time.Time) string {
	day = day.In(now.Location())
	yesterday := now.AddDate(0, 0, -1)

	switch {
	case sameDay(day, now):
		return "Today, " + day.Format("January 2")
	case sameDay(day, yesterday):
		return "Yesterday, " + day.Format("January 2")
	}
	return day.Format("January 2, 2006")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Counts is the number of items in each view.
type Counts struct {
	Raw      int `json:"raw"`
	Tasks    int `json:"tasks"`
	Ideas    int `json:"ideas"`
	Archived int `json:"archived"`
	Open     int `json:"openTasks"`
}

// Count tallies the views over a collection in one pass.
func Count(items []Item) Counts {
	var c Counts
	for _, it := range items {
		if it.Status == StatusArchived {
			c.Archived++
			continue
		}
		switch it.Type {
		case TypeRaw:
			c.Raw++
		case TypeTask:
			c.Tasks++
			if !it.IsCompleted {
				c.Open++
			}
		case TypeIdea:
			c.Ideas++
		}
	}
	return c
}
