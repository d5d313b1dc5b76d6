package entity

import "time"

// AttemptType identifies which kind of solicitation an attempt belongs to.
type AttemptType string

const (
	AttemptWeeklyFriday   AttemptType = "weekly_friday"
	AttemptWeeklyFollowup AttemptType = "weekly_monday_followup"
	AttemptDailyEvening   AttemptType = "daily_evening"
)

// CollectionAttempt is one row of the append-only audit trail of
// solicitations and their outcomes. Attempts are never mutated or deleted;
// their count drives the stopping rule.
type CollectionAttempt struct {
	ID               int64       `json:"id"`
	UserID           string      `json:"user_id"`
	WeekStartDate    time.Time   `json:"week_start_date"`
	AttemptType      AttemptType `json:"attempt_type"`
	AttemptTimestamp time.Time   `json:"attempt_timestamp"`
	ResponseReceived bool        `json:"response_received"`
	ResponseData     string      `json:"response_data,omitempty"`
	Success          bool        `json:"success"`
	Reason           string      `json:"reason,omitempty"`
}
