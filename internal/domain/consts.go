package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Workdays are the five weekdays an availability record covers, in order.
var Workdays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

// DefaultMinOfficeDays is the compliance threshold: a week needs at least
// this many office days to be compliant.
const DefaultMinOfficeDays = 3

// DefaultAttemptCeiling caps how many collection attempts are made for a
// single (user, week) before the bot stops asking.
const DefaultAttemptCeiling = 3

// WeekStart returns the Monday of the ISO week containing t, truncated to
// midnight UTC. It identifies the week an availability record applies to.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday = 0 in Go, but we want 7 for ISO 8601
		weekday = 7
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// NextWeekStart returns the Monday of the week after the one containing t.
func NextWeekStart(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7)
}
