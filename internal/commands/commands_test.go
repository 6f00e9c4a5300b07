package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/colonyops/mindflow/internal/core/config"
	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/data/stores"
	"github.com/colonyops/mindflow/internal/mindflow"
	"github.com/colonyops/mindflow/internal/store/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type harness struct {
	t       *testing.T
	app     *mindflow.App
	backend *memory.KVStore
	flags   *Flags
	stdin   io.Reader
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Timezone = "UTC"

	backend := memory.NewKVStore()
	store := stores.NewItemStore(backend, cfg.Storage.Key, zerolog.Nop())
	return &harness{
		t:       t,
		app:     mindflow.NewApp(store, backend, &cfg, zerolog.Nop()),
		backend: backend,
		flags:   &Flags{},
	}
}

// run executes one command line against a fresh command tree sharing the
// harness app, and returns stdout.
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()

	var out bytes.Buffer
	root := &cli.Command{
		Name:      "mindflow",
		Writer:    &out,
		ErrWriter: io.Discard,
		Reader:    h.stdin,
	}

	backup := NewBackupCmd(h.flags, h.app)
	backup.isTerminal = func() bool { return false }
	if h.stdin != nil {
		backup.reader.Stdin = h.stdin
	}

	root = NewCaptureCmd(h.flags, h.app).Register(root)
	root = NewListCmd(h.flags, h.app).Register(root)
	root = NewItemCmd(h.flags, h.app).Register(root)
	root = backup.Register(root)
	root = NewSummaryCmd(h.flags, h.app).Register(root)
	root = NewConfigValidateCmd(h.flags, h.app).Register(root)
	root = NewDoctorCmd(h.flags, h.app).Register(root)

	err := root.Run(context.Background(), append([]string{"mindflow"}, args...))
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, "mindflow %s", strings.Join(args, " "))
	return out
}

func decodeLines(t *testing.T, out string) []item.Item {
	t.Helper()
	var items []item.Item
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var it item.Item
		require.NoError(t, json.Unmarshal([]byte(line), &it), line)
		items = append(items, it)
	}
	return items
}

func TestCapture_Raw(t *testing.T) {
	h := newHarness(t)

	created := decodeLines(t, h.mustRun("capture", "buy", "milk"))
	require.Len(t, created, 1)
	assert.Equal(t, "buy milk", created[0].Text)
	assert.Equal(t, item.TypeRaw, created[0].Type)

	listed := decodeLines(t, h.mustRun("list"))
	require.Len(t, listed, 1)
	assert.Equal(t, created[0].ID, listed[0].ID)
}

func TestCapture_RawWithTag(t *testing.T) {
	h := newHarness(t)

	created := decodeLines(t, h.mustRun("capture", "--tag", "home", "fix sink"))
	require.Len(t, created, 1)
	assert.Equal(t, "home", created[0].TagValue())
}

func TestCapture_EmptyText(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("capture", "   ")
	require.ErrorIs(t, err, item.ErrEmptyText)
}

func TestCapture_TypedTask(t *testing.T) {
	h := newHarness(t)

	created := decodeLines(t, h.mustRun("capture", "--as", "TASK", "--due", "2025-04-15", "file", "taxes"))
	require.Len(t, created, 1)
	assert.Equal(t, item.TypeTask, created[0].Type)
	require.NotNil(t, created[0].DueDate)
	assert.Equal(t, "2025-04-15T00:00:00.000Z", created[0].DueDate.String())

	tasks := decodeLines(t, h.mustRun("list", "tasks"))
	require.Len(t, tasks, 1)
}

func TestCapture_DueWithoutType(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("capture", "--due", "2025-04-15", "x")
	require.Error(t, err)
}

func TestCapture_InvalidType(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("capture", "--as", "note", "x")
	require.ErrorIs(t, err, item.ErrInvalidType)
}

func TestList_Search(t *testing.T) {
	h := newHarness(t)
	h.mustRun("capture", "Buy Milk")
	h.mustRun("capture", "Walk dog")

	found := decodeLines(t, h.mustRun("list", "--search", "milk"))
	require.Len(t, found, 1)
	assert.Equal(t, "Buy Milk", found[0].Text)
}

func TestList_UnknownView(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("list", "notes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view")
}

func TestList_Grouped(t *testing.T) {
	h := newHarness(t)
	h.mustRun("capture", "first thought")

	out := h.mustRun("list", "--grouped")
	assert.Contains(t, out, "Today, ")
	assert.Contains(t, out, "first thought")

	_, err := h.run("list", "--grouped", "tasks")
	require.Error(t, err)
}

func TestLifecycleCommands(t *testing.T) {
	h := newHarness(t)
	id := decodeLines(t, h.mustRun("capture", "plan trip"))[0].ID

	assert.Equal(t, "converted\n", h.mustRun("convert", "--due", "2025-06-01", id, "task"))
	assert.Equal(t, "toggled\n", h.mustRun("toggle", id))

	tasks := decodeLines(t, h.mustRun("list", "tasks"))
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].IsCompleted)

	assert.Equal(t, "updated\n", h.mustRun("edit", "--text", "plan summer trip", "--tag", "travel", id))

	var shown item.Item
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("show", id)), &shown))
	assert.Equal(t, "plan summer trip", shown.Text)
	assert.Equal(t, "travel", shown.TagValue())

	assert.Equal(t, "archived\n", h.mustRun("archive", id))
	assert.Empty(t, decodeLines(t, h.mustRun("list", "tasks")))
	assert.Len(t, decodeLines(t, h.mustRun("list", "archived")), 1)

	assert.Equal(t, "restored\n", h.mustRun("restore", id))
	assert.Len(t, decodeLines(t, h.mustRun("list", "tasks")), 1)

	assert.Equal(t, "converted\n", h.mustRun("convert", id, "idea"))
	ideas := decodeLines(t, h.mustRun("list", "ideas"))
	require.Len(t, ideas, 1)
	assert.Nil(t, ideas[0].DueDate)
	assert.False(t, ideas[0].IsCompleted)

	assert.Equal(t, "deleted\n", h.mustRun("delete", id))
	assert.Equal(t, "deleted\n", h.mustRun("delete", id), "deleting twice is fine")

	_, err := h.run("show", id)
	require.ErrorIs(t, err, item.ErrNotFound)
}

func TestEdit_RequiresAChange(t *testing.T) {
	h := newHarness(t)
	id := decodeLines(t, h.mustRun("capture", "x"))[0].ID

	_, err := h.run("edit", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestItemCommands_RequireID(t *testing.T) {
	h := newHarness(t)

	for _, name := range []string{"show", "archive", "restore", "toggle", "delete"} {
		_, err := h.run(name)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "usage")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	h := newHarness(t)
	h.mustRun("capture", "one")
	h.mustRun("capture", "--as", "idea", "two")

	dir := t.TempDir()
	path := strings.TrimSpace(h.mustRun("export", "--out", dir))
	assert.Equal(t, filepath.Join(dir, item.BackupFileName), path)

	before := h.mustRun("export")

	h.mustRun("clear", "--yes")
	assert.Empty(t, decodeLines(t, h.mustRun("list")))

	out := h.mustRun("import", "--yes", "--file", path)
	assert.Contains(t, out, "Thoughts")

	assert.JSONEq(t, before, h.mustRun("export"))
}

func TestImport_FromStdin(t *testing.T) {
	h := newHarness(t)
	h.stdin = strings.NewReader(`[{"id":"a1","text":"restored","type":"raw","status":"active","createdAt":"2025-01-01T00:00:00.000Z"}]`)

	h.mustRun("import", "--yes")

	h.stdin = nil
	listed := decodeLines(t, h.mustRun("list"))
	require.Len(t, listed, 1)
	assert.Equal(t, "a1", listed[0].ID)
}

func TestImport_Malformed(t *testing.T) {
	h := newHarness(t)
	h.mustRun("capture", "keep")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o644))

	_, err := h.run("import", "--yes", "--file", path)
	require.ErrorIs(t, err, item.ErrMalformed)

	assert.Len(t, decodeLines(t, h.mustRun("list")), 1)
}

func TestClear_RequiresConfirmation(t *testing.T) {
	h := newHarness(t)
	h.mustRun("capture", "keep")

	_, err := h.run("clear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	assert.Len(t, decodeLines(t, h.mustRun("list")), 1)
}

func TestSummary(t *testing.T) {
	h := newHarness(t)
	h.mustRun("capture", "a")
	h.mustRun("capture", "--as", "task", "b")

	var counts item.Counts
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("summary", "--json")), &counts))
	assert.Equal(t, item.Counts{Raw: 1, Tasks: 1, Open: 1}, counts)

	out := h.mustRun("summary")
	assert.Contains(t, out, "Thoughts")
	assert.Contains(t, out, "Archived")
}

func TestConfigValidate(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, "configuration is valid\n", h.mustRun("config", "validate"))

	h.app.Config.Timezone = "Nowhere/Special"
	out, err := h.run("config", "validate")
	require.Error(t, err)
	assert.Contains(t, out, "timezone")
}

func TestDoctor(t *testing.T) {
	h := newHarness(t)
	h.mustRun("capture", "first thought")

	out := h.mustRun("doctor")
	assert.Contains(t, out, "Mindflow Doctor")
	assert.Contains(t, out, "1 items")
	assert.Contains(t, out, "0 failed")

	out = h.mustRun("doctor", "--format", "json")
	var report struct {
		Healthy bool `json:"healthy"`
		Summary struct {
			Failed int `json:"failed"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Healthy)
	assert.Zero(t, report.Summary.Failed)
}

func TestDoctor_CorruptPayload(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.backend.Set(t.Context(), h.app.Config.Storage.Key, []byte("{not json")))

	out, err := h.run("doctor")
	require.ErrorIs(t, err, errUnhealthy)
	assert.Contains(t, out, "corrupt")
}

func TestReadYes(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		got, err := readYes(strings.NewReader(tt.input))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
