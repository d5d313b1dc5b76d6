package entity

import "time"

// Employee is a user enrolled in WFO collection.
type Employee struct {
	ID            int64     `json:"id"`
	SlackUserID   string    `json:"slack_user_id"`
	SlackUserName string    `json:"slack_user_name"`
	DisplayName   string    `json:"display_name"`
	IsActive      bool      `json:"is_active"`
	JoinedAt      time.Time `json:"joined_at"`
}
