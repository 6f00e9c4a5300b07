package item

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the wire format for timestamps: UTC, millisecond precision,
// e.g. 2025-01-01T00:00:00.000Z.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a point in time serialized in TimeLayout.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to milliseconds and converts it to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// Ptr returns a pointer to a copy of t.
func (t Timestamp) Ptr() *Timestamp {
	return &t
}

// String formats the timestamp in TimeLayout.
func (t Timestamp) String() string {
	return t.UTC().Format(TimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON accepts any RFC 3339 timestamp. A JSON null leaves t unchanged.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	*t = NewTimestamp(parsed)
	return nil
}

// ParseTimestamp parses an RFC 3339 timestamp or a bare YYYY-MM-DD date.
// Bare dates are read as midnight in loc.
func ParseTimestamp(s string, loc *time.Location) (Timestamp, error) {
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		return NewTimestamp(parsed), nil
	}
	if loc == nil {
		loc = time.Local
	}
	parsed, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return NewTimestamp(parsed), nil
}
