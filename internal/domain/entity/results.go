package entity

import "time"

// CollectionCheck is the read-only answer to "should we prompt this user
// for this week at all?".
type CollectionCheck struct {
	UserID           string    `json:"user_id"`
	WeekStartDate    time.Time `json:"week_start_date"`
	CollectionNeeded bool      `json:"collection_needed"`
	OfficeDaysCount  int       `json:"office_days_count"`
	MinRequired      int       `json:"min_required"`
	AttemptCount     int       `json:"attempt_count"`
	Reason           string    `json:"reason"`
}

// ReplyResult is the outcome of running a user's free-text reply through
// the extraction pipeline. When Extracted is false, ConfirmationMessage
// carries a clarification prompt and Schedule holds no data. The caller is
// expected to show ConfirmationMessage and commit the schedule via
// SaveConfirmedSchedule only after the user agrees.
type ReplyResult struct {
	Extracted           bool             `json:"extracted"`
	Schedule            WeekSchedule     `json:"schedule"`
	WeekStartDate       time.Time        `json:"week_start_date"`
	CollectionMethod    CollectionMethod `json:"collection_method"`
	OfficeDaysCount     int              `json:"office_days_count"`
	IsCompliant         bool             `json:"is_compliant"`
	ConfirmationMessage string           `json:"confirmation_message"`
}
