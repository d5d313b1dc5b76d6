package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/diegoclair/slack-wfo-bot/internal/parser"
)

// ErrEmptySchedule is returned when a caller tries to persist a schedule
// with no information on any day. An all-unset record must never be saved
// as if it were a real answer with zero office days.
var ErrEmptySchedule = errors.New("schedule carries no day information")

type collectionService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	parser      *parser.Parser
	cfg         Config
}

func newCollection(dm contract.DataManager, slackClient contract.SlackClient, p *parser.Parser, cfg Config) *collectionService {
	return &collectionService{
		dm:          dm,
		slackClient: slackClient,
		parser:      p,
		cfg:         cfg,
	}
}

func (s *collectionService) EnrollEmployee(slackUserID string) (*entity.Employee, error) {
	existing, err := s.dm.Employee().GetBySlackID(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing employee: %w", err)
	}

	if existing != nil {
		if existing.IsActive {
			return nil, fmt.Errorf("user is already enrolled")
		}
		if err := s.dm.Employee().SetActive(slackUserID, true); err != nil {
			return nil, fmt.Errorf("failed to re-enroll employee: %w", err)
		}
		existing.IsActive = true
		return existing, nil
	}

	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	displayName := userInfo.Profile.RealName
	if displayName == "" {
		displayName = userInfo.Profile.DisplayName
	}
	if displayName == "" {
		displayName = userInfo.Name
	}

	employee := &entity.Employee{
		SlackUserID:   slackUserID,
		SlackUserName: userInfo.Name,
		DisplayName:   displayName,
		IsActive:      true,
	}

	if err := s.dm.Employee().Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

func (s *collectionService) RemoveEmployee(slackUserID string) error {
	employee, err := s.dm.Employee().GetBySlackID(slackUserID)
	if err != nil {
		return fmt.Errorf("failed to find employee: %w", err)
	}

	if employee == nil {
		return fmt.Errorf("user is not enrolled")
	}

	return s.dm.Employee().Delete(employee.ID)
}

func (s *collectionService) ListEmployees() ([]*entity.Employee, error) {
	return s.dm.Employee().GetActive()
}

// CheckCollectionNeeded answers whether the user should be prompted at all
// for the given week: compliance unmet and attempt budget not exhausted.
func (s *collectionService) CheckCollectionNeeded(userID string, weekStart time.Time) (*entity.CollectionCheck, error) {
	availability, err := s.dm.Availability().GetByUserAndWeek(userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	attemptCount, err := s.dm.Attempt().CountByUserAndWeek(userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}

	officeDays := 0
	if availability != nil {
		officeDays = availability.OfficeDaysCount
	}

	check := &entity.CollectionCheck{
		UserID:          userID,
		WeekStartDate:   weekStart,
		OfficeDaysCount: officeDays,
		MinRequired:     s.cfg.MinOfficeDays,
		AttemptCount:    attemptCount,
	}

	switch {
	case officeDays >= s.cfg.MinOfficeDays:
		check.Reason = fmt.Sprintf("Compliance met: %d/%d office days", officeDays, s.cfg.MinOfficeDays)
	case attemptCount >= s.cfg.AttemptCeiling:
		check.Reason = fmt.Sprintf("Attempt budget exhausted: %d/%d attempts used", attemptCount, s.cfg.AttemptCeiling)
	default:
		check.CollectionNeeded = true
		check.Reason = fmt.Sprintf("Current office days: %d/%d minimum required", officeDays, s.cfg.MinOfficeDays)
	}

	return check, nil
}

// ProcessReply runs a raw reply through the extraction pipeline and records
// the attempt outcome. It never persists availability data; that happens in
// SaveConfirmedSchedule after the user confirms what was understood.
func (s *collectionService) ProcessReply(userID, text string, qctx *parser.QuestionContext) (*entity.ReplyResult, error) {
	weekStart, attemptType := replyTarget(qctx, time.Now())

	schedule, err := s.parser.Parse(text, qctx)
	if err != nil {
		if !errors.Is(err, parser.ErrNoScheduleInfo) {
			return nil, fmt.Errorf("failed to parse reply: %w", err)
		}

		if _, err := s.RecordAttempt(userID, weekStart, attemptType, true, text, false, "extraction failed: no schedule information"); err != nil {
			return nil, err
		}

		return &entity.ReplyResult{
			Extracted:           false,
			ConfirmationMessage: "Sorry, I couldn't work out which days you meant. Could you tell me the weekdays you'll be in the office? For example: \"Monday to Wednesday\" or \"Mon, Wed, Fri\".",
		}, nil
	}

	compliance := entity.EvaluateCompliance(schedule, s.cfg.MinOfficeDays)

	if _, err := s.RecordAttempt(userID, weekStart, attemptType, true, text, true, "extraction succeeded"); err != nil {
		return nil, err
	}

	method := entity.MethodWeekly
	if attemptType == entity.AttemptDailyEvening {
		method = entity.MethodDaily
	}

	return &entity.ReplyResult{
		Extracted:           true,
		Schedule:            schedule,
		WeekStartDate:       weekStart,
		CollectionMethod:    method,
		OfficeDaysCount:     compliance.OfficeDaysCount,
		IsCompliant:         compliance.IsCompliant,
		ConfirmationMessage: confirmationMessage(schedule, compliance),
	}, nil
}

// OpenQuestionContext rebuilds the parser context for the most recent
// outstanding prompt sent to the user, so bare yes/no replies resolve to
// the day that prompt asked about.
func (s *collectionService) OpenQuestionContext(userID string) (*parser.QuestionContext, error) {
	open, err := s.dm.Message().GetOpenSentByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get open messages: %w", err)
	}
	if len(open) == 0 {
		return nil, nil
	}

	latest := open[0]
	if latest.MessageType == entity.MessageDailyEvening {
		// The daily evening prompt asks about the day after it was scheduled.
		return parser.SingleDayQuestion(latest.ScheduledFor.AddDate(0, 0, 1)), nil
	}

	qctx := parser.WeekQuestion(latest.WeekTarget)
	// A reply counts against the prompt that solicited it, so a Monday
	// followup answer is logged as a followup attempt, not a kickoff one.
	qctx.Attempt = latest.MessageType.AttemptType()
	return qctx, nil
}

// replyTarget resolves which week a reply applies to and which attempt type
// to log it under. Without a question context the reply is treated as an
// answer to the weekly full-week question about the coming week.
func replyTarget(qctx *parser.QuestionContext, now time.Time) (time.Time, entity.AttemptType) {
	if qctx == nil {
		return domain.NextWeekStart(now), entity.AttemptWeeklyFriday
	}

	attemptType := qctx.Attempt
	if attemptType == "" {
		attemptType = entity.AttemptWeeklyFriday
		if qctx.SingleDay {
			attemptType = entity.AttemptDailyEvening
		}
	}

	if !qctx.WeekTarget.IsZero() {
		return qctx.WeekTarget, attemptType
	}
	if qctx.SingleDay {
		return domain.WeekStart(now), attemptType
	}
	return domain.NextWeekStart(now), attemptType
}

func confirmationMessage(schedule entity.WeekSchedule, compliance entity.Compliance) string {
	days := schedule.OfficeDayNames()
	dayList := "no days"
	if len(days) > 0 {
		dayList = strings.Join(days, ", ")
	}
	return fmt.Sprintf("Got it! You'll be in the office on %s. That's %d day(s). Should I save this?", dayList, compliance.OfficeDaysCount)
}

// SaveConfirmedSchedule commits a user-confirmed schedule. The merge and
// the derived-field recomputation run inside a single transaction so
// concurrent replies for the same (user, week) serialize instead of
// clobbering each other.
func (s *collectionService) SaveConfirmedSchedule(ctx context.Context, userID string, weekStart time.Time, schedule entity.WeekSchedule, method entity.CollectionMethod) (*entity.Availability, error) {
	if schedule.IsEmpty() {
		return nil, ErrEmptySchedule
	}

	var saved *entity.Availability

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Availability().GetByUserAndWeek(userID, weekStart)
		if err != nil {
			return fmt.Errorf("failed to get availability: %w", err)
		}

		if existing == nil {
			compliance := entity.EvaluateCompliance(schedule, s.cfg.MinOfficeDays)
			availability := &entity.Availability{
				UserID:           userID,
				WeekStartDate:    weekStart,
				Schedule:         schedule,
				OfficeDaysCount:  compliance.OfficeDaysCount,
				IsCompliant:      compliance.IsCompliant,
				CollectionMethod: method,
			}
			if err := tx.Availability().Create(availability); err != nil {
				return fmt.Errorf("failed to create availability: %w", err)
			}
			saved = availability
		} else {
			existing.Schedule = existing.Schedule.Merge(schedule)
			compliance := entity.EvaluateCompliance(existing.Schedule, s.cfg.MinOfficeDays)
			existing.OfficeDaysCount = compliance.OfficeDaysCount
			existing.IsCompliant = compliance.IsCompliant
			existing.CollectionMethod = method
			if err := tx.Availability().Update(existing); err != nil {
				return fmt.Errorf("failed to update availability: %w", err)
			}
			saved = existing
		}

		return s.settleMessages(tx, userID, weekStart, saved.IsCompliant)
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// settleMessages completes open sent messages for the week now that the
// reply has been processed, and withdraws pending ones once the week is
// compliant.
func (s *collectionService) settleMessages(tx contract.DataManager, userID string, weekStart time.Time, compliant bool) error {
	messages, err := tx.Message().GetByUserAndWeek(userID, weekStart)
	if err != nil {
		return fmt.Errorf("failed to get scheduled messages: %w", err)
	}

	for _, msg := range messages {
		switch msg.Status {
		case entity.MessageSent:
			if err := tx.Message().UpdateStatus(msg.ID, entity.MessageCompleted); err != nil {
				return fmt.Errorf("failed to complete message %d: %w", msg.ID, err)
			}
		case entity.MessagePending:
			if compliant {
				if err := tx.Message().UpdateStatus(msg.ID, entity.MessageCancelled); err != nil {
					return fmt.Errorf("failed to cancel message %d: %w", msg.ID, err)
				}
			}
		}
	}

	return nil
}

func (s *collectionService) RecordAttempt(userID string, weekStart time.Time, attemptType entity.AttemptType, responseReceived bool, responseData string, success bool, reason string) (*entity.CollectionAttempt, error) {
	attempt := &entity.CollectionAttempt{
		UserID:           userID,
		WeekStartDate:    weekStart,
		AttemptType:      attemptType,
		ResponseReceived: responseReceived,
		ResponseData:     responseData,
		Success:          success,
		Reason:           reason,
	}

	if err := s.dm.Attempt().Create(attempt); err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	return attempt, nil
}

// NeedsMoreCollection is the smart stopping rule: keep asking only while
// compliance is unmet and the attempt budget is not exhausted.
func (s *collectionService) NeedsMoreCollection(userID string, weekStart time.Time) (bool, error) {
	check, err := s.CheckCollectionNeeded(userID, weekStart)
	if err != nil {
		return false, err
	}
	return check.CollectionNeeded, nil
}

func (s *collectionService) GetAvailability(userID string, weekStart time.Time) (*entity.Availability, error) {
	return s.dm.Availability().GetByUserAndWeek(userID, weekStart)
}

func (s *collectionService) GetAllAvailability(userID string) ([]*entity.Availability, error) {
	return s.dm.Availability().GetAllByUser(userID)
}
