package entity

import "time"

// CollectionMethod records how a week's data was gathered.
type CollectionMethod string

const (
	MethodWeekly CollectionMethod = "weekly"
	MethodDaily  CollectionMethod = "daily"
)

// Availability is the canonical record of what a user told us about one
// week. At most one record exists per (user, week start date); updates are
// merges, never blind overwrites.
type Availability struct {
	ID               int64            `json:"id"`
	UserID           string           `json:"user_id"`
	WeekStartDate    time.Time        `json:"week_start_date"`
	Schedule         WeekSchedule     `json:"schedule"`
	OfficeDaysCount  int              `json:"office_days_count"`
	IsCompliant      bool             `json:"is_compliant"`
	CollectionMethod CollectionMethod `json:"collection_method"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
