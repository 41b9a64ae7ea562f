package core

import (
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// ParseDueDate parses a due date in one of the two accepted shapes:
// ISO "2006-01-02" or slash-separated "02/01/06" (day first, two-digit year
// interpreted as 20YY). The boolean is false for anything else, including the
// empty string.
func ParseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(isoDate, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("02/01/06", s); err == nil {
		// time.Parse pivots two-digit years 69-99 into 19YY; every stored
		// date lives in this century, so force 20YY.
		if t.Year() < 2000 {
			t = time.Date(t.Year()+100, t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		}
		return t, true
	}
	return time.Time{}, false
}

// AddMonthClamped advances t by exactly one calendar month, clamping the day
// to the last day of the target month: Jan 31 becomes Feb 28 (29 in leap
// years), Mar 31 becomes Apr 30. Days 1-28 are always preserved.
func AddMonthClamped(t time.Time) time.Time {
	y, m, d := t.Date()
	// Day 0 of month+2 is the last day of month+1; time.Date normalizes
	// overflowing months into the next year.
	last := time.Date(y, m+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > last {
		d = last
	}
	return time.Date(y, m+1, d, 0, 0, 0, 0, t.Location())
}

// FormatISO renders a date as "2006-01-02", the canonical stored shape.
func FormatISO(t time.Time) string {
	return t.Format(isoDate)
}
