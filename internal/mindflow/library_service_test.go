package mindflow

import (
	"context"
	"testing"
	"time"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLibrary creates one item per view plus an archived task and returns
// them in creation order.
func seedLibrary(t *testing.T, app *App) (raw, task, idea, archived item.Item) {
	t.Helper()
	ctx := context.Background()

	var err error
	raw, err = app.Items.CreateRaw(ctx, "Buy Milk")
	require.NoError(t, err)
	require.NoError(t, app.Items.UpdateFields(ctx, raw.ID, item.Patch{Tag: strPtr("home")}))

	due := mustTimestamp(t, "2025-03-20")
	task, err = app.Items.CreateTyped(ctx, item.TypeTask, item.Fields{Text: "Walk dog", DueDate: &due})
	require.NoError(t, err)

	idea, err = app.Items.CreateTyped(ctx, item.TypeIdea, item.Fields{Text: "milk frother startup"})
	require.NoError(t, err)

	archived, err = app.Items.CreateTyped(ctx, item.TypeTask, item.Fields{Text: "old chore"})
	require.NoError(t, err)
	require.NoError(t, app.Items.Archive(ctx, archived.ID))

	return raw, task, idea, archived
}

func TestLibraryService_Views(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	raw, task, idea, archived := seedLibrary(t, app)

	tests := []struct {
		view item.View
		want []string
	}{
		{item.ViewRaw, []string{raw.ID}},
		{item.ViewTasks, []string{task.ID}},
		{item.ViewIdeas, []string{idea.ID}},
		{item.ViewArchived, []string{archived.ID}},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			got, err := app.Library.View(ctx, tt.view)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestLibraryService_TasksOrderedByDueDate(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	later := mustTimestamp(t, "2025-06-01")
	sooner := mustTimestamp(t, "2025-04-01")

	undated, err := app.Items.CreateTyped(ctx, item.TypeTask, item.Fields{Text: "someday"})
	require.NoError(t, err)
	l, err := app.Items.CreateTyped(ctx, item.TypeTask, item.Fields{Text: "later", DueDate: &later})
	require.NoError(t, err)
	s, err := app.Items.CreateTyped(ctx, item.TypeTask, item.Fields{Text: "sooner", DueDate: &sooner})
	require.NoError(t, err)

	tasks, err := app.Library.Tasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{s.ID, l.ID, undated.ID}, ids(tasks))
}

func TestLibraryService_Search(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	raw, _, idea, _ := seedLibrary(t, app)

	got, err := app.Library.Search(ctx, item.ViewRaw, "milk")
	require.NoError(t, err)
	assert.Equal(t, []string{raw.ID}, ids(got))

	got, err = app.Library.Search(ctx, item.ViewIdeas, "MILK")
	require.NoError(t, err)
	assert.Equal(t, []string{idea.ID}, ids(got))

	got, err = app.Library.Search(ctx, item.ViewRaw, "HOME")
	require.NoError(t, err)
	assert.Equal(t, []string{raw.ID}, ids(got), "tags are searched")

	got, err = app.Library.Search(ctx, item.ViewTasks, "")
	require.NoError(t, err)
	assert.Len(t, got, 1, "empty query keeps the whole view")
}

func TestLibraryService_RawThoughtsByDay(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	days := []time.Time{
		time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	i := 0
	app.Items.now = func() time.Time {
		ts := days[i]
		i++
		return ts
	}

	for _, text := range []string{"late night", "early", "coffee"} {
		_, err := app.Items.CreateRaw(ctx, text)
		require.NoError(t, err)
	}

	entries, err := app.Library.RawThoughtsByDay(ctx, "", time.UTC)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.True(t, entries[0].IsHeader())
	assert.Equal(t, "header-2025-03-10", entries[0].Header.ID)
	assert.Equal(t, "coffee", entries[1].Item.Text)
	assert.Equal(t, "early", entries[2].Item.Text)
	assert.True(t, entries[3].IsHeader())
	assert.Equal(t, "header-2025-03-09", entries[3].Header.ID)
	assert.Equal(t, "late night", entries[4].Item.Text)

	entries, err = app.Library.RawThoughtsByDay(ctx, "coffee", time.UTC)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "header-2025-03-10", entries[0].Header.ID)
}

func TestLibraryService_Counts(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	_, task, _, _ := seedLibrary(t, app)

	counts, err := app.Library.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, item.Counts{Raw: 1, Tasks: 1, Ideas: 1, Archived: 1, Open: 1}, counts)

	require.NoError(t, app.Items.ToggleCompleted(ctx, task.ID))
	counts, err = app.Library.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Open)
}
