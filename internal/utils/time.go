package utils

import (
	"time"

	"github.com/vkotov/stride/internal/constants"
)

// Clock abstracts "now" so streak math and archive timestamps are
// testable with fixed dates.
type Clock interface {
	Now() time.Time
	Today() string
}

// SystemClock reads the wall clock in UTC, matching the ISO timestamps
// the document stores.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

func (c SystemClock) Today() string { return c.Now().Format(constants.DateFormat) }

// FixedClock pins time for tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

func (c FixedClock) Today() string { return c.T.Format(constants.DateFormat) }

// ParseDate parses an ISO date string (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// AddDays shifts an ISO date string by n days. Invalid input is
// returned unchanged; callers validate dates at the boundary.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat)
}

// Yesterday returns the ISO date one day before the given one.
func Yesterday(date string) string { return AddDays(date, -1) }

// WeekStart returns the most recent Sunday on or before the given
// date, the anchor for weekly grids.
func WeekStart(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -int(t.Weekday())).Format(constants.DateFormat)
}

// Weekday returns the weekday of an ISO date string. Invalid input
// reports Sunday; the zero value keeps grid math total.
func Weekday(date string) time.Weekday {
	t, err := ParseDate(date)
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}

// ValidDate reports whether the string is a well-formed ISO date.
func ValidDate(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}
