package item

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BackupFileName is the conventional name of an exported backup.
const BackupFileName = "mindflow_backup.json"

// Encode renders a collection as a JSON array indented with two spaces.
// An empty collection encodes as "[]".
func Encode(items []Item) (string, error) {
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode items: %w", err)
	}
	return string(data), nil
}

// Decode parses a payload produced by Encode. The top level must be a JSON
// array and every element an object with item fields; anything else, such as
// [null] or [1], fails with ErrMalformed. Field values are not validated
// beyond their JSON types.
//
// The same rules apply to imports, to the stored collection (via
// Collection), and to the doctor's payload check.
func Decode(payload []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top level is not an array", ErrMalformed)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	items := make([]Item, 0, len(raw))
	for i, elem := range raw {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrMalformed, i)
		}
		var it Item
		if err := json.Unmarshal(elem, &it); err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrMalformed, i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// Collection is a stored item collection. It unmarshals through Decode so
// the persisted slot follows the same shape rules as an import.
type Collection []Item

// UnmarshalJSON implements json.Unmarshaler.
func (c *Collection) UnmarshalJSON(b []byte) error {
	items, err := Decode(b)
	if err != nil {
		return err
	}
	*c = items
	return nil
}
