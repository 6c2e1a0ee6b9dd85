// utils/dates.go
package utils

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DateLayout is the canonical storage form of a booking date.
const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD calendar date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// SameDay compares calendar dates, ignoring the time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether the stored date s is today's date in loc.
// Unparseable dates are never today.
func IsToday(s string, now time.Time, loc *time.Location) bool {
	d, err := ParseDate(s, loc)
	if err != nil {
		return false
	}
	return SameDay(d, now.In(loc))
}

// DisplayDate renders t as "October 16th, 2026", the long form the
// reservation workflow receives.
func DisplayDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

// ReviewDate renders t as "16 Oct 2026".
func ReviewDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
