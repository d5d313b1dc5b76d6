package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/diegoclair/slack-wfo-bot/internal/parser"
)

// CollectionService is the core WFO intent pipeline exposed to the request
// layer (HTTP handlers, chat transport, test harness).
type CollectionService interface {
	EnrollEmployee(slackUserID string) (*entity.Employee, error)
	RemoveEmployee(slackUserID string) error
	ListEmployees() ([]*entity.Employee, error)

	CheckCollectionNeeded(userID string, weekStart time.Time) (*entity.CollectionCheck, error)
	OpenQuestionContext(userID string) (*parser.QuestionContext, error)
	ProcessReply(userID, text string, qctx *parser.QuestionContext) (*entity.ReplyResult, error)
	SaveConfirmedSchedule(ctx context.Context, userID string, weekStart time.Time, schedule entity.WeekSchedule, method entity.CollectionMethod) (*entity.Availability, error)

	RecordAttempt(userID string, weekStart time.Time, attemptType entity.AttemptType, responseReceived bool, responseData string, success bool, reason string) (*entity.CollectionAttempt, error)
	NeedsMoreCollection(userID string, weekStart time.Time) (bool, error)

	GetAvailability(userID string, weekStart time.Time) (*entity.Availability, error)
	GetAllAvailability(userID string) ([]*entity.Availability, error)
}

// SchedulerService decides which collection message to send next for each
// enrolled user and week, and dispatches the ones that are due.
type SchedulerService interface {
	ScheduleWeeklyKickoffs(now time.Time) error
	ScheduleDailyFollowups(now time.Time) error
	Sweep(now time.Time) error
}
