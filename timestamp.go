package fintrack

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampFormat is the canonical second-resolution representation of a
// transaction timestamp, both on screen and in the persisted store.
const TimestampFormat = "2006-01-02 15:04:05"

// Timestamp is the creation time of a transaction, with second granularity
// in the local time zone.
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns the Timestamp for t, truncated to the second.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.Truncate(time.Second)}
}

// Now returns the current local time as a Timestamp.
func Now() Timestamp { return NewTimestamp(time.Now()) }

// ParseTimestamp parses a timestamp in the canonical "YYYY-MM-DD HH:MM:SS"
// form, interpreted in the local time zone.
func ParseTimestamp(str string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampFormat, strings.TrimSpace(str), time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q, want format %q: %w", str, TimestampFormat, err)
	}
	return Timestamp{t: t}, nil
}

// MustParseTimestamp is like ParseTimestamp but panics on error.
func MustParseTimestamp(str string) Timestamp {
	ts, err := ParseTimestamp(str)
	if err != nil {
		panic(err.Error())
	}
	return ts
}

// String formats the timestamp in the canonical form.
func (ts Timestamp) String() string { return ts.t.Format(TimestampFormat) }

// Format returns a textual representation of the timestamp formatted
// according to the layout. See the documentation for [time.Format].
func (ts Timestamp) Format(layout string) string { return ts.t.Format(layout) }

// Time returns the underlying time.Time.
func (ts Timestamp) Time() time.Time { return ts.t }

// IsZero returns true if the timestamp is the zero value.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// After reports whether ts is after x.
func (ts Timestamp) After(x Timestamp) bool { return ts.t.After(x.t) }

// Equal reports whether ts and x denote the same second.
func (ts Timestamp) Equal(x Timestamp) bool { return ts.t.Equal(x.t) }

// MarshalJSON encodes the timestamp as a canonical JSON string.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON decodes a timestamp from its canonical JSON string form.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(str)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

var _ json.Marshaler = (*Timestamp)(nil)
var _ json.Unmarshaler = (*Timestamp)(nil)
