// Package dates normalizes the three date representations the directory
// works with: the DD/MM/YYYY wire format submitted and returned by the
// API, the YYYY-MM-DD value calendar inputs edit, and the human-readable
// display strings used on read views.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse converts a DD/MM/YYYY string into a local calendar date with the
// time of day zeroed. Parse and Format are exact inverses for any valid
// date.
func Parse(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: want DD/MM/YYYY", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in %q", s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// Format renders a date as DD/MM/YYYY, zero-padding day and month.
func Format(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// ISO renders a date as YYYY-MM-DD, the representation calendar inputs
// expect when a record is loaded for editing.
func ISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// Display renders a date as "02 Jan 2006" for read views.
func Display(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// DisplayTime renders a timestamp as "02 Jan 2006, 15:04"; used for
// company creation timestamps.
func DisplayTime(t time.Time) string {
	return t.Format("02 Jan 2006, 15:04")
}

// BeforeToday reports whether t falls strictly before the current date.
// Both sides are truncated to local midnight, so "yesterday" passes
// regardless of wall-clock time and "today" never does.
func BeforeToday(t time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return day.Before(today)
}
