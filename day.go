package b3folio

import (
	"fmt"
	"time"
)

// DayFormat is the canonical form of a trading day, as found in the B3 raw
// dumps: four-digit year, two-digit month, two-digit day, no separators.
const DayFormat = "20060102"

// Day represents a single calendar day in the canonical "YYYYMMDD" form.
//
// Because the format is fixed-width, the natural string order of Day values
// is also their chronological order. Day sequences throughout this package
// rely on that property, so a Day must always hold the canonical form.
type Day string

// NewDay returns the canonical Day for the given year, month and day.
func NewDay(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DayFormat))
}

// ParseDay validates s as a canonical "YYYYMMDD" day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid day %q want format %q: %w", s, DayFormat, err)
	}
	return Day(t.Format(DayFormat)), nil
}

// String returns the canonical form.
func (d Day) String() string { return string(d) }

// Before reports whether the day d is before x.
func (d Day) Before(x Day) bool { return d < x }

// After reports whether the day d is after x.
func (d Day) After(x Day) bool { return d > x }

// Time returns the canonical time.Time for that day (midnight UTC).
func (d Day) Time() time.Time {
	t, err := time.Parse(DayFormat, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Format returns the day formatted according to the layout defined by the
// argument. See the documentation for [time.Format].
func (d Day) Format(layout string) string { return d.Time().Format(layout) }
