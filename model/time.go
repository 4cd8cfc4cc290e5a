package model

import (
	"encoding"
	"fmt"
	"time"

	"github.com/justincampbell/timeago"
)

// RFC3339Milli is like time.RFC3339Nano, but with millisecond precision,
// and fractional seconds do not have trailing zeros removed.
const RFC3339Milli = "2006-01-02T15:04:05.000Z07:00"

// localDateTime is how the backend serializes timestamps without a zone.
// Fractional seconds are optional when parsing.
const localDateTime = "2006-01-02T15:04:05.999999999"

// Time is a wrapper around [time.Time] that understands the timestamps the backend sends.
// Timestamps without a zone keep their wall clock and are stored as UTC.
type Time struct {
	T time.Time
}

// String satisfies [fmt.Stringer].
func (t Time) String() string {
	return t.T.UTC().Format(RFC3339Milli)
}

var _ fmt.Stringer = Time{}

// ParseTime in either RFC 3339 or zone-less local date-time format, and return in UTC.
func ParseTime(v string) (Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return Time{T: t.UTC()}, nil
	}

	t, err := time.Parse(localDateTime, v)
	if err != nil {
		return Time{}, fmt.Errorf("error parsing time %q: %w", v, err)
	}
	return Time{T: t}, nil
}

// Pretty formats the time for the product pages, or "-" if not set.
func (t *Time) Pretty() string {
	if t == nil || t.T.IsZero() {
		return "-"
	}
	return t.T.Format("2006-01-02 15:04")
}

// ChartLabel is the short day.month hour:minute form used on chart axes.
func (t Time) ChartLabel() string {
	return t.T.Format("02.01 15:04")
}

func (t *Time) Ago() string {
	if t == nil || t.T.IsZero() {
		return "-"
	}
	return timeago.FromTime(t.T)
}

// MarshalText satisfies [encoding.TextMarshaler].
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

var _ encoding.TextMarshaler = Time{}

// UnmarshalText satisfies [encoding.TextUnmarshaler].
func (t *Time) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	parsedT, err := ParseTime(string(data))
	if err != nil {
		return err
	}

	t.T = parsedT.T

	return nil
}

var _ encoding.TextUnmarshaler = &Time{}
