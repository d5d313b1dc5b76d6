package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Employee() EmployeeRepo
	Availability() AvailabilityRepo
	Attempt() AttemptRepo
	Message() MessageRepo
}

// EmployeeRepo defines the contract for the enrolled-employees repository
type EmployeeRepo interface {
	Create(employee *entity.Employee) error
	GetBySlackID(slackUserID string) (*entity.Employee, error)
	GetActive() ([]*entity.Employee, error)
	SetActive(slackUserID string, active bool) error
	Delete(id int64) error
}

// AvailabilityRepo defines the contract for the per-user-per-week
// availability repository
type AvailabilityRepo interface {
	Create(availability *entity.Availability) error
	GetByUserAndWeek(userID string, weekStart time.Time) (*entity.Availability, error)
	Update(availability *entity.Availability) error
	GetAllByUser(userID string) ([]*entity.Availability, error)
}

// AttemptRepo defines the contract for the append-only collection attempt
// log. Rows are never updated or deleted.
type AttemptRepo interface {
	Create(attempt *entity.CollectionAttempt) error
	GetByUserAndWeek(userID string, weekStart time.Time) ([]*entity.CollectionAttempt, error)
	CountByUserAndWeek(userID string, weekStart time.Time) (int, error)
}

// MessageRepo defines the contract for scheduled collection messages
type MessageRepo interface {
	Create(message *entity.ScheduledMessage) error
	GetByUserTypeAndWeek(userID string, messageType entity.MessageType, weekTarget time.Time) (*entity.ScheduledMessage, error)
	GetPendingDue(now time.Time) ([]*entity.ScheduledMessage, error)
	GetOpenSentByUser(userID string) ([]*entity.ScheduledMessage, error)
	GetByUserAndWeek(userID string, weekTarget time.Time) ([]*entity.ScheduledMessage, error)
	UpdateStatus(id int64, status entity.MessageStatus) error
}
