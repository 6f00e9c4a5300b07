// Package iojson writes command output as JSON and reads JSON payloads from
// a file flag or stdin.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the JSON shape of an error reported on the error stream.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// fallbackError builds the error document by hand for when marshaling
// itself failed.
func fallbackError(msg string, cause error) string {
	msgBytes, _ := json.Marshal(msg)
	causeBytes, _ := json.Marshal(cause.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, causeBytes)
}

// MarshalError renders msg and data as an indented Error document.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return fallbackError(msg, err)
	}
	return string(bits)
}

// WriteWith writes obj to w as indented JSON. If obj cannot be marshaled an
// Error document describing the failure goes to ew instead.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, MarshalError("cannot encode output", map[string]any{"json_error": err.Error()}))
		if werr != nil {
			return werr
		}
		return fmt.Errorf("marshal json: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj as a single line of compact JSON, for streams that
// are consumed one record per line.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal json line: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
