package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// DateLayout is the canonical DateKey layout.
const DateLayout = "2006-01-02"

// DateKey is the canonical YYYY-MM-DD form of a calendar day.
type DateKey string

// KeyFor returns the DateKey of the calendar day t falls on in t's location.
func KeyFor(t time.Time) DateKey {
	return DateKey(t.Format(DateLayout))
}

// ParseDateKey accepts a date-only string or an ISO 8601 timestamp.
// Timestamps are converted into loc before taking the calendar day, so an
// instant recorded as local midnight in UTC maps back to the local day.
func ParseDateKey(raw string, loc *time.Location) (DateKey, error) {
	s := strings.TrimSpace(raw)
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return KeyFor(t), nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return KeyFor(t.In(loc)), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// Time returns midnight of the key's day in loc.
func (k DateKey) Time(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, string(k), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, string(k))
	}
	return t, nil
}

func (k DateKey) String() string { return string(k) }
