// Package duedate holds the date policy shared by sorting and overdue checks.
//
// Due dates are calendar dates in YYYY-MM-DD form. Anything else, including
// the empty string, has no date: it sorts after every dated task and is never
// overdue.
package duedate

import (
	"strings"
	"time"
)

// Layout is the only accepted due date format
const Layout = "2006-01-02"

// Parse returns the calendar date in loc and whether s held one
func Parse(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Normalize trims s and reports whether it is empty or a valid date
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if _, ok := Parse(s, time.UTC); !ok {
		return s, false
	}
	return s, true
}

// Compare orders two due dates for display.
// Dated values come first in calendar order; undated values compare equal
// to each other so a stable sort keeps their insertion order.
func Compare(a, b string) int {
	da, okA := Parse(a, time.UTC)
	db, okB := Parse(b, time.UTC)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return da.Compare(db)
}

// IsOverdue reports whether due falls on a calendar day strictly before now's
func IsOverdue(due string, now time.Time) bool {
	d, ok := Parse(due, now.Location())
	if !ok {
		return false
	}
	return d.Before(StartOfDay(now))
}

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today formats now as a due date, for prefilling forms
func Today(now time.Time) string {
	return now.Format(Layout)
}
