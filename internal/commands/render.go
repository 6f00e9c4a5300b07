package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/core/styles"
	"github.com/colonyops/mindflow/pkg/iojson"
)

// writeItems streams items as JSON lines.
func writeItems(w io.Writer, items []item.Item) error {
	for _, it := range items {
		if err := iojson.WriteLine(w, it); err != nil {
			return err
		}
	}
	return nil
}

// renderItem formats one item on a single styled line.
func renderItem(it item.Item, loc *time.Location) string {
	var b strings.Builder

	b.WriteString("  ")
	if it.Type == item.TypeTask {
		if it.IsCompleted {
			b.WriteString("[x] ")
			b.WriteString(styles.DoneStyle.Render(it.Text))
		} else {
			b.WriteString("[ ] ")
			b.WriteString(styles.ItemTextStyle.Render(it.Text))
		}
	} else {
		b.WriteString(styles.ItemTextStyle.Render(it.Text))
	}

	if it.Tag != nil {
		b.WriteString("  ")
		b.WriteString(styles.TagStyle.Render("#" + *it.Tag))
	}
	if it.DueDate != nil {
		b.WriteString("  ")
		b.WriteString(styles.DueStyle.Render("due " + it.DueDate.In(loc).Format("Jan 2")))
	}

	b.WriteString("  ")
	b.WriteString(styles.ItemIDStyle.Render(it.ID))
	return b.String()
}

// renderGrouped prints day headers followed by their items.
func renderGrouped(w io.Writer, entries []item.Entry, now time.Time) error {
	for i, e := range entries {
		var line string
		if e.IsHeader() {
			line = styles.DayHeaderStyle.Render(item.FormatDayHeader(e.Header.Day, now))
			if i > 0 {
				line = "\n" + line
			}
		} else {
			line = renderItem(*e.Item, now.Location())
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// renderSummary prints one styled row per view.
func renderSummary(w io.Writer, c item.Counts) error {
	rows := []struct {
		label string
		count int
	}{
		{"Thoughts", c.Raw},
		{"Tasks", c.Tasks},
		{"Open", c.Open},
		{"Ideas", c.Ideas},
		{"Archived", c.Archived},
	}

	for _, r := range rows {
		line := styles.LabelStyle.Render(r.label) + styles.CountStyle.Render(fmt.Sprintf("%d", r.count))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
