package entity

import "time"

// MessageType identifies which collection message a scheduled row carries.
type MessageType string

const (
	MessageWeeklyFriday   MessageType = "weekly_friday"
	MessageWeeklyFollowup MessageType = "weekly_monday_followup"
	MessageDailyEvening   MessageType = "daily_evening"
)

// MessageStatus is the lifecycle state of a scheduled message.
// pending -> sent -> completed, with cancelled reachable while pending.
type MessageStatus string

const (
	MessagePending   MessageStatus = "pending"
	MessageSent      MessageStatus = "sent"
	MessageCompleted MessageStatus = "completed"
	MessageCancelled MessageStatus = "cancelled"
)

// ScheduledMessage is one planned (or dispatched) collection prompt. There
// is at most one row per (user, message type, week target); the scheduler
// relies on that uniqueness to stay re-entrant.
type ScheduledMessage struct {
	ID           int64         `json:"id"`
	UserID       string        `json:"user_id"`
	MessageType  MessageType   `json:"message_type"`
	ScheduledFor time.Time     `json:"scheduled_for"`
	WeekTarget   time.Time     `json:"week_target"`
	Status       MessageStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	SentAt       *time.Time    `json:"sent_at,omitempty"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
}

// AttemptType maps the message type to the attempt type logged when the
// message is dispatched.
func (t MessageType) AttemptType() AttemptType {
	switch t {
	case MessageWeeklyFriday:
		return AttemptWeeklyFriday
	case MessageWeeklyFollowup:
		return AttemptWeeklyFollowup
	default:
		return AttemptDailyEvening
	}
}
