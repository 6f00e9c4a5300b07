package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Indented(t *testing.T) {
	out, err := Encode([]Item{{ID: "a", Text: "x", Type: TypeRaw, Status: StatusActive, CreatedAt: at("2025-01-01T00:00:00Z")}})
	require.NoError(t, err)

	want := `[
  {
    "id": "a",
    "text": "x",
    "type": "raw",
    "status": "active",
    "createdAt": "2025-01-01T00:00:00.000Z",
    "dueDate": null,
    "isCompleted": false,
    "tag": null
  }
]`
	assert.Equal(t, want, out)
}

func TestEncode_Empty(t *testing.T) {
	out, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantLen   int
		malformed bool
	}{
		{name: "empty array", payload: "[]", wantLen: 0},
		{name: "array with whitespace", payload: "  \n[ ]\n", wantLen: 0},
		{name: "one item", payload: `[{"id":"a","text":"x","type":"raw","status":"active","createdAt":"2025-01-01T00:00:00.000Z"}]`, wantLen: 1},
		{name: "unknown fields ignored", payload: `[{"id":"a","color":"red"}]`, wantLen: 1},
		{name: "object at top level", payload: `{"id":"a"}`, malformed: true},
		{name: "null", payload: `null`, malformed: true},
		{name: "empty", payload: ``, malformed: true},
		{name: "not json", payload: `hello`, malformed: true},
		{name: "truncated", payload: `[{"id":"a"`, malformed: true},
		{name: "element not object", payload: `[1, 2]`, malformed: true},
		{name: "null element", payload: `[null]`, malformed: true},
		{name: "null among items", payload: `[{"id":"a"}, null]`, malformed: true},
		{name: "bad field type", payload: `[{"id": 5}]`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Decode([]byte(tt.payload))
			if tt.malformed {
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tt.wantLen)
		})
	}
}

func TestEncodeDecode_PreservesItems(t *testing.T) {
	due := at("2025-01-01T00:00:00Z")
	items := []Item{
		{ID: "t", Text: "file taxes", Type: TypeTask, Status: StatusActive, CreatedAt: at("2025-01-02T03:04:05.678Z"), DueDate: &due, IsCompleted: true, Tag: strPtr("admin")},
		{ID: "i", Text: "novel", Type: TypeIdea, Status: StatusArchived, CreatedAt: at("2025-01-01T00:00:00Z")},
	}

	out, err := Encode(items)
	require.NoError(t, err)

	back, err := Decode([]byte(out))
	require.NoError(t, err)
	require.Len(t, back, 2)

	for i := range items {
		assert.True(t, equalItems(items[i], back[i]), "item %d differs: %+v vs %+v", i, items[i], back[i])
	}
}

func TestCollection_UnmarshalFollowsDecode(t *testing.T) {
	var c Collection
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"a"},{"id":"b"}]`), &c))
	assert.Len(t, c, 2)

	for _, payload := range []string{`[null]`, `[1]`, `null`, `{"id":"a"}`} {
		var bad Collection
		err := json.Unmarshal([]byte(payload), &bad)
		assert.ErrorIs(t, err, ErrMalformed, "payload %s", payload)
	}
}
