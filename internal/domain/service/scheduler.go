package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/diegoclair/slack-wfo-bot/internal/logger"
	"github.com/slack-go/slack"
)

// schedulerService drives the per-(user, week) collection state machine.
// The state lives in the scheduled-message rows; the periodic jobs move it
// forward and stay re-entrant because at most one pending row can exist per
// (user, message type, week target).
type schedulerService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	collection  *collectionService
	cfg         Config
}

func newScheduler(dm contract.DataManager, slackClient contract.SlackClient, collection *collectionService, cfg Config) *schedulerService {
	return &schedulerService{
		dm:          dm,
		slackClient: slackClient,
		collection:  collection,
		cfg:         cfg,
	}
}

// ScheduleWeeklyKickoffs ensures every active employee has a weekly
// full-week question queued for the coming week. Intended to run on Friday
// evening; running it twice never creates duplicate rows.
func (s *schedulerService) ScheduleWeeklyKickoffs(now time.Time) error {
	weekTarget := domain.NextWeekStart(now)

	employees, err := s.dm.Employee().GetActive()
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	for _, employee := range employees {
		created, err := s.ensureScheduled(employee.SlackUserID, entity.MessageWeeklyFriday, weekTarget, now)
		if err != nil {
			logger.Log.Errorf("Failed to schedule weekly kickoff for %s: %v", employee.SlackUserID, err)
			continue
		}
		if created {
			logger.Log.Infof("Scheduled weekly kickoff for %s, week of %s", employee.SlackUserID, weekTarget.Format("2006-01-02"))
		}
	}

	return nil
}

// ScheduleDailyFollowups runs each evening. For every employee whose week
// is still short of compliance and whose attempt budget is not exhausted,
// it expires the unanswered prompt from the previous pass and queues the
// next question: a Monday full-week follow-up when no data arrived at all,
// otherwise a single-day "are you coming in tomorrow?" nudge.
func (s *schedulerService) ScheduleDailyFollowups(now time.Time) error {
	tomorrow := now.AddDate(0, 0, 1)
	if !isWorkday(tomorrow) {
		return nil
	}
	weekTarget := domain.WeekStart(tomorrow)

	employees, err := s.dm.Employee().GetActive()
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	for _, employee := range employees {
		if err := s.followUpEmployee(employee.SlackUserID, weekTarget, now); err != nil {
			logger.Log.Errorf("Failed to follow up with %s: %v", employee.SlackUserID, err)
		}
	}

	return nil
}

func (s *schedulerService) followUpEmployee(userID string, weekTarget, now time.Time) error {
	if err := s.expireUnanswered(userID, weekTarget, now); err != nil {
		return err
	}

	needed, err := s.collection.NeedsMoreCollection(userID, weekTarget)
	if err != nil {
		return err
	}
	if !needed {
		// Compliance met or budget exhausted: the chain terminates with the
		// best-known data. Withdraw anything still queued.
		return s.cancelPending(userID, weekTarget)
	}

	availability, err := s.dm.Availability().GetByUserAndWeek(userID, weekTarget)
	if err != nil {
		return fmt.Errorf("failed to get availability: %w", err)
	}

	messageType := entity.MessageDailyEvening
	if availability == nil {
		// Nothing extracted yet for this week: re-ask for the full week
		// once before falling back to single-day nudges.
		followup, err := s.dm.Message().GetByUserTypeAndWeek(userID, entity.MessageWeeklyFollowup, weekTarget)
		if err != nil {
			return fmt.Errorf("failed to check weekly followup: %w", err)
		}
		if followup == nil {
			messageType = entity.MessageWeeklyFollowup
		}
	}

	created, err := s.ensureScheduled(userID, messageType, weekTarget, now)
	if err != nil {
		return err
	}
	if created {
		logger.Log.Infof("Scheduled %s for %s, week of %s", messageType, userID, weekTarget.Format("2006-01-02"))
	}

	return nil
}

// expireUnanswered closes out sent messages that never got a processed
// reply, recording the silent outcome in the attempt log. The next
// question supersedes them; no timeout error is ever raised.
func (s *schedulerService) expireUnanswered(userID string, weekTarget, now time.Time) error {
	messages, err := s.dm.Message().GetByUserAndWeek(userID, weekTarget)
	if err != nil {
		return fmt.Errorf("failed to get scheduled messages: %w", err)
	}

	attempts, err := s.dm.Attempt().GetByUserAndWeek(userID, weekTarget)
	if err != nil {
		return fmt.Errorf("failed to get attempts: %w", err)
	}

	for _, msg := range messages {
		if msg.Status != entity.MessageSent || msg.SentAt == nil {
			continue
		}
		if answeredSince(attempts, *msg.SentAt) {
			continue
		}

		if _, err := s.collection.RecordAttempt(userID, weekTarget, msg.MessageType.AttemptType(),
			false, "", false, "no response before next scheduling pass"); err != nil {
			return err
		}
		if err := s.dm.Message().UpdateStatus(msg.ID, entity.MessageCompleted); err != nil {
			return fmt.Errorf("failed to expire message %d: %w", msg.ID, err)
		}
		logger.Log.Infof("Expired unanswered %s message for %s", msg.MessageType, userID)
	}

	return nil
}

func answeredSince(attempts []*entity.CollectionAttempt, since time.Time) bool {
	for _, attempt := range attempts {
		if attempt.ResponseReceived && attempt.AttemptTimestamp.After(since) {
			return true
		}
	}
	return false
}

func (s *schedulerService) cancelPending(userID string, weekTarget time.Time) error {
	messages, err := s.dm.Message().GetByUserAndWeek(userID, weekTarget)
	if err != nil {
		return fmt.Errorf("failed to get scheduled messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Status != entity.MessagePending {
			continue
		}
		if err := s.dm.Message().UpdateStatus(msg.ID, entity.MessageCancelled); err != nil {
			return fmt.Errorf("failed to cancel message %d: %w", msg.ID, err)
		}
		logger.Log.Infof("Cancelled pending %s message for %s", msg.MessageType, userID)
	}

	return nil
}

// ensureScheduled queues a message unless one of the same type is already
// open (pending or sent) for the (user, week). Reports whether a row was
// created.
func (s *schedulerService) ensureScheduled(userID string, messageType entity.MessageType, weekTarget, scheduledFor time.Time) (bool, error) {
	existing, err := s.dm.Message().GetByUserTypeAndWeek(userID, messageType, weekTarget)
	if err != nil {
		return false, fmt.Errorf("failed to check existing message: %w", err)
	}
	if existing != nil && (existing.Status == entity.MessagePending || existing.Status == entity.MessageSent) {
		return false, nil
	}

	message := &entity.ScheduledMessage{
		UserID:       userID,
		MessageType:  messageType,
		ScheduledFor: scheduledFor,
		WeekTarget:   weekTarget,
		Status:       entity.MessagePending,
	}
	if err := s.dm.Message().Create(message); err != nil {
		return false, fmt.Errorf("failed to create scheduled message: %w", err)
	}

	return true, nil
}

// Sweep dispatches every due pending message. Re-running it is safe: a
// message becomes sent only after a successful dispatch, and a failed
// dispatch leaves the row pending for the next pass. A week that became
// compliant out of band gets its prompt withdrawn instead of sent.
func (s *schedulerService) Sweep(now time.Time) error {
	due, err := s.dm.Message().GetPendingDue(now)
	if err != nil {
		return fmt.Errorf("failed to get due messages: %w", err)
	}

	for _, msg := range due {
		availability, err := s.dm.Availability().GetByUserAndWeek(msg.UserID, msg.WeekTarget)
		if err != nil {
			logger.Log.Errorf("Failed to get availability for %s: %v", msg.UserID, err)
			continue
		}

		if availability != nil && availability.IsCompliant {
			if err := s.dm.Message().UpdateStatus(msg.ID, entity.MessageCancelled); err != nil {
				logger.Log.Errorf("Failed to cancel message %d: %v", msg.ID, err)
			}
			continue
		}

		if err := s.dispatch(msg); err != nil {
			// Transport unavailable: leave pending, the next sweep retries.
			logger.Log.Errorf("Failed to dispatch %s message to %s: %v", msg.MessageType, msg.UserID, err)
			continue
		}

		if err := s.dm.Message().UpdateStatus(msg.ID, entity.MessageSent); err != nil {
			logger.Log.Errorf("Failed to mark message %d sent: %v", msg.ID, err)
		}
	}

	return nil
}

func (s *schedulerService) dispatch(msg *entity.ScheduledMessage) error {
	_, _, err := s.slackClient.PostMessage(
		msg.UserID,
		slack.MsgOptionText(PromptText(msg.MessageType), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	logger.Log.Infof("Dispatched %s message to %s for week of %s", msg.MessageType, msg.UserID, msg.WeekTarget.Format("2006-01-02"))
	return nil
}

// PromptText returns the conversational prompt for a message type.
func PromptText(messageType entity.MessageType) string {
	switch messageType {
	case entity.MessageWeeklyFriday:
		return "Hi! Quick question before you head into the weekend - which days are you planning to work from the office next week?"
	case entity.MessageWeeklyFollowup:
		return "Happy Monday! I still need your office plan for this week - which days will you be in?"
	default:
		return "Hope your day went well! Quick question - are you planning to be in the office tomorrow?"
	}
}

func isWorkday(t time.Time) bool {
	weekday := t.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}
