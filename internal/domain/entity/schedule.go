package entity

import (
	"strings"

	"github.com/diegoclair/slack-wfo-bot/internal/domain"
)

// WeekdayStatus is the stated plan for a single weekday.
// The zero value StatusUnset means "no information", which is not the same
// as StatusHome: an unanswered day must never be treated as a confirmed
// not-in-office day.
type WeekdayStatus string

const (
	StatusUnset  WeekdayStatus = ""
	StatusOffice WeekdayStatus = "office"
	StatusHome   WeekdayStatus = "home"
	StatusHybrid WeekdayStatus = "hybrid"
	StatusLeave  WeekdayStatus = "leave"
)

// IsSet reports whether the status carries actual information.
func (s WeekdayStatus) IsSet() bool {
	return s != StatusUnset
}

// Valid reports whether s is one of the known status values.
func (s WeekdayStatus) Valid() bool {
	switch s {
	case StatusUnset, StatusOffice, StatusHome, StatusHybrid, StatusLeave:
		return true
	}
	return false
}

// WeekSchedule holds the per-weekday statuses for one working week.
type WeekSchedule struct {
	Monday    WeekdayStatus `json:"monday_status"`
	Tuesday   WeekdayStatus `json:"tuesday_status"`
	Wednesday WeekdayStatus `json:"wednesday_status"`
	Thursday  WeekdayStatus `json:"thursday_status"`
	Friday    WeekdayStatus `json:"friday_status"`
}

// Day returns the status for an ISO 8601 weekday (1=Monday .. 5=Friday).
// Weekend days are always unset.
func (w WeekSchedule) Day(isoDay int) WeekdayStatus {
	switch isoDay {
	case domain.Monday:
		return w.Monday
	case domain.Tuesday:
		return w.Tuesday
	case domain.Wednesday:
		return w.Wednesday
	case domain.Thursday:
		return w.Thursday
	case domain.Friday:
		return w.Friday
	}
	return StatusUnset
}

// SetDay sets the status for an ISO 8601 weekday. Weekend days are ignored.
func (w *WeekSchedule) SetDay(isoDay int, status WeekdayStatus) {
	switch isoDay {
	case domain.Monday:
		w.Monday = status
	case domain.Tuesday:
		w.Tuesday = status
	case domain.Wednesday:
		w.Wednesday = status
	case domain.Thursday:
		w.Thursday = status
	case domain.Friday:
		w.Friday = status
	}
}

// IsEmpty reports whether no day carries any information.
func (w WeekSchedule) IsEmpty() bool {
	for _, day := range domain.Workdays {
		if w.Day(day).IsSet() {
			return false
		}
	}
	return true
}

// OfficeDaysCount counts the days explicitly marked office. Hybrid, leave,
// home and unset days never count.
func (w WeekSchedule) OfficeDaysCount() int {
	count := 0
	for _, day := range domain.Workdays {
		if w.Day(day) == StatusOffice {
			count++
		}
	}
	return count
}

// OfficeDayNames returns the English names of days marked office, in
// Monday-to-Friday order.
func (w WeekSchedule) OfficeDayNames() []string {
	var names []string
	for _, day := range domain.Workdays {
		if w.Day(day) == StatusOffice {
			names = append(names, domain.WeekdayNames[day])
		}
	}
	return names
}

// Merge applies incoming on top of w: a day is overwritten only when the
// incoming schedule supplies a non-unset value for it. Days unset in the
// incoming data leave the stored value untouched.
func (w WeekSchedule) Merge(incoming WeekSchedule) WeekSchedule {
	merged := w
	for _, day := range domain.Workdays {
		if status := incoming.Day(day); status.IsSet() {
			merged.SetDay(day, status)
		}
	}
	return merged
}

// String renders the schedule for logs, e.g. "Mon:office Tue:home".
func (w WeekSchedule) String() string {
	var parts []string
	for _, day := range domain.Workdays {
		if status := w.Day(day); status.IsSet() {
			parts = append(parts, domain.WeekdayNames[day][:3]+":"+string(status))
		}
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

// Compliance is the derived verdict for one week of statuses.
type Compliance struct {
	OfficeDaysCount int  `json:"office_days_count"`
	IsCompliant     bool `json:"is_compliant"`
}

// EvaluateCompliance derives the office-day count and compliance verdict
// from a week schedule. Pure function, total over all inputs.
func EvaluateCompliance(schedule WeekSchedule, minOfficeDays int) Compliance {
	count := schedule.OfficeDaysCount()
	return Compliance{
		OfficeDaysCount: count,
		IsCompliant:     count >= minOfficeDays,
	}
}
