package service

import (
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fridayEvening is Friday September 4th 2026; the next week starts Monday
// the 7th.
func fridayEvening() time.Time {
	return time.Date(2026, 9, 4, 17, 0, 0, 0, time.UTC)
}

// tuesdayEvening is Tuesday September 8th 2026, inside testWeek, so
// tomorrow is a workday.
func tuesdayEvening() time.Time {
	return time.Date(2026, 9, 8, 17, 0, 0, 0, time.UTC)
}

func TestSchedulerService_ScheduleWeeklyKickoffs(t *testing.T) {
	t.Run("Should queue a kickoff for every active employee", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockEmployeeRepo.EXPECT().
			GetActive().
			Return([]*entity.Employee{
				{SlackUserID: "U111"},
				{SlackUserID: "U222"},
			}, nil).Times(1)

		for _, userID := range []string{"U111", "U222"} {
			m.mockMessageRepo.EXPECT().
				GetByUserTypeAndWeek(userID, entity.MessageWeeklyFriday, testWeek()).
				Return(nil, nil).Times(1)
			m.mockMessageRepo.EXPECT().
				Create(gomock.Any()).
				DoAndReturn(func(msg *entity.ScheduledMessage) error {
					assert.Equal(t, entity.MessageWeeklyFriday, msg.MessageType)
					assert.Equal(t, testWeek(), msg.WeekTarget)
					assert.Equal(t, entity.MessagePending, msg.Status)
					return nil
				}).Times(1)
		}

		err := svc.Scheduler.ScheduleWeeklyKickoffs(fridayEvening())
		require.NoError(t, err)
	})

	t.Run("Should not queue a second kickoff when one is already open", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockEmployeeRepo.EXPECT().
			GetActive().
			Return([]*entity.Employee{{SlackUserID: "U111"}}, nil).Times(1)

		m.mockMessageRepo.EXPECT().
			GetByUserTypeAndWeek("U111", entity.MessageWeeklyFriday, testWeek()).
			Return(&entity.ScheduledMessage{ID: 1, Status: entity.MessagePending}, nil).Times(1)

		err := svc.Scheduler.ScheduleWeeklyKickoffs(fridayEvening())
		require.NoError(t, err)
	})

	t.Run("Should queue again when the previous kickoff was cancelled", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockEmployeeRepo.EXPECT().
			GetActive().
			Return([]*entity.Employee{{SlackUserID: "U111"}}, nil).Times(1)

		m.mockMessageRepo.EXPECT().
			GetByUserTypeAndWeek("U111", entity.MessageWeeklyFriday, testWeek()).
			Return(&entity.ScheduledMessage{ID: 1, Status: entity.MessageCancelled}, nil).Times(1)
		m.mockMessageRepo.EXPECT().
			Create(gomock.Any()).
			Return(nil).Times(1)

		err := svc.Scheduler.ScheduleWeeklyKickoffs(fridayEvening())
		require.NoError(t, err)
	})
}

func TestSchedulerService_ScheduleDailyFollowups(t *testing.T) {
	t.Run("Should skip entirely when tomorrow is not a workday", func(t *testing.T) {
		_, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		// Friday evening: tomorrow is Saturday, nobody gets nudged.
		err := svc.Scheduler.ScheduleDailyFollowups(fridayEvening())
		require.NoError(t, err)
	})

	t.Run("Should queue a weekly followup when no data arrived at all", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockEmployeeRepo.EXPECT().
			GetActive().
			Return([]*entity.Employee{{SlackUserID: "U111"}}, nil).Times(1)

		// No earlier prompts to expire.
		m.mockMessageRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(1)
		m.mockAttemptRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(1)

		// Stopping rule: no data, no attempts, keep going.
		m.mockAvailabilityRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(2)
		m.mockAttemptRepo.EXPECT().
			CountByUserAndWeek("U111", testWeek()).
			Return(0, nil).Times(1)

		// No followup was sent yet, so the full-week re-ask goes out first.
		m.mockMessageRepo.EXPECT().
			GetByUserTypeAndWeek("U111", entity.MessageWeeklyFollowup, testWeek()).
			Return(nil, nil).Times(2)
		m.mockMessageRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(msg *entity.ScheduledMessage) error {
				assert.Equal(t, entity.MessageWeeklyFollowup, msg.MessageType)
				return nil
			}).Times(1)

		err := svc.Scheduler.ScheduleDailyFollowups(tuesdayEvening())
		require.NoError(t, err)
	})

	t.Run("Should queue a daily nudge when partial data exists", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		partial := &entity.Availability{
			UserID:          "U111",
			WeekStartDate:   testWeek(),
			OfficeDaysCount: 1,
		}

		m.mockEmployeeRepo.EXPECT().
			GetActive().
			Return([]*entity.Employee{{SlackUserID: "U111"}}, nil).Times(1)

		m.mockMessageRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(1)
		m.mockAttemptRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(1)

		m.mockAvailabilityRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(partial, nil).Times(2)
		m.mockAttemptRepo.EXPECT().
			CountByUserAndWeek("U111", testWeek()).
			Return(1, nil).Times(1)

		m.mockMessageRepo.EXPECT().
			GetByUserTypeAndWeek("U111", entity.MessageDailyEvening, testWeek()).
			Return(nil, nil).Times(1)
		m.mockMessageRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(msg *entity.ScheduledMessage) error {
				assert.Equal(t, entity.MessageDailyEvening, msg.MessageType)
				return nil
			}).Times(1)

		err := svc.Scheduler.ScheduleDailyFollowups(tuesdayEvening())
		require.NoError(t, err)
	})

	t.Run("Should expire an unanswered prompt and count it as an attempt", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		sentAt := time.Date(2026, 9, 7, 17, 0, 0, 0, time.UTC)
		unanswered := &entity.ScheduledMessage{
			ID:          5,
			UserID:      "U111",
			MessageType: entity.MessageWeeklyFriday,
			WeekTarget:  testWeek(),
			Status:      entity.MessageSent,
			SentAt:      &sentAt,
		}

		m.mockEmployeeRepo.EXPECT().
			GetActive().
			Return([]*entity.Employee{{SlackUserID: "U111"}}, nil).Times(1)

		m.mockMessageRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return([]*entity.ScheduledMessage{unanswered}, nil).Times(1)
		m.mockAttemptRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(1)

		m.mockAttemptRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(attempt *entity.CollectionAttempt) error {
				assert.Equal(t, entity.AttemptWeeklyFriday, attempt.AttemptType)
				assert.False(t, attempt.ResponseReceived)
				assert.False(t, attempt.Success)
				assert.Equal(t, "no response before next scheduling pass", attempt.Reason)
				return nil
			}).Times(1)
		m.mockMessageRepo.EXPECT().
			UpdateStatus(int64(5), entity.MessageCompleted).
			Return(nil).Times(1)

		// After expiry the chain continues with a followup decision.
		m.mockAvailabilityRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(2)
		m.mockAttemptRepo.EXPECT().
			CountByUserAndWeek("U111", testWeek()).
			Return(1, nil).Times(1)
		m.mockMessageRepo.EXPECT().
			GetByUserTypeAndWeek("U111", entity.MessageWeeklyFollowup, testWeek()).
			Return(nil, nil).Times(2)
		m.mockMessageRepo.EXPECT().
			Create(gomock.Any()).
			Return(nil).Times(1)

		err := svc.Scheduler.ScheduleDailyFollowups(tuesdayEvening())
		require.NoError(t, err)
	})

	t.Run("Should cancel queued prompts once the attempt budget is exhausted", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		queued := &entity.ScheduledMessage{
			ID:          9,
			UserID:      "U111",
			MessageType: entity.MessageDailyEvening,
			WeekTarget:  testWeek(),
			Status:      entity.MessagePending,
		}

		m.mockEmployeeRepo.EXPECT().
			GetActive().
			Return([]*entity.Employee{{SlackUserID: "U111"}}, nil).Times(1)

		// expireUnanswered pass, then cancelPending pass.
		m.mockMessageRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return([]*entity.ScheduledMessage{queued}, nil).Times(2)
		m.mockAttemptRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(1)

		m.mockAvailabilityRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(&entity.Availability{OfficeDaysCount: 1}, nil).Times(1)
		m.mockAttemptRepo.EXPECT().
			CountByUserAndWeek("U111", testWeek()).
			Return(3, nil).Times(1)

		m.mockMessageRepo.EXPECT().
			UpdateStatus(int64(9), entity.MessageCancelled).
			Return(nil).Times(1)

		err := svc.Scheduler.ScheduleDailyFollowups(tuesdayEvening())
		require.NoError(t, err)
	})
}

func TestSchedulerService_Sweep(t *testing.T) {
	now := time.Date(2026, 9, 7, 17, 0, 0, 0, time.UTC)

	t.Run("Should dispatch due messages and mark them sent", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		due := &entity.ScheduledMessage{
			ID:          1,
			UserID:      "U111",
			MessageType: entity.MessageDailyEvening,
			WeekTarget:  testWeek(),
			Status:      entity.MessagePending,
		}

		m.mockMessageRepo.EXPECT().
			GetPendingDue(now).
			Return([]*entity.ScheduledMessage{due}, nil).Times(1)
		m.mockAvailabilityRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(1)
		m.mockSlackClient.EXPECT().
			PostMessage("U111", gomock.Any(), gomock.Any()).
			Return("C111", "123.456", nil).Times(1)
		m.mockMessageRepo.EXPECT().
			UpdateStatus(int64(1), entity.MessageSent).
			Return(nil).Times(1)

		err := svc.Scheduler.Sweep(now)
		require.NoError(t, err)
	})

	t.Run("Should withdraw the prompt for a week that became compliant", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		due := &entity.ScheduledMessage{
			ID:          2,
			UserID:      "U111",
			MessageType: entity.MessageDailyEvening,
			WeekTarget:  testWeek(),
			Status:      entity.MessagePending,
		}

		m.mockMessageRepo.EXPECT().
			GetPendingDue(now).
			Return([]*entity.ScheduledMessage{due}, nil).Times(1)
		m.mockAvailabilityRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(&entity.Availability{OfficeDaysCount: 3, IsCompliant: true}, nil).Times(1)
		m.mockMessageRepo.EXPECT().
			UpdateStatus(int64(2), entity.MessageCancelled).
			Return(nil).Times(1)

		err := svc.Scheduler.Sweep(now)
		require.NoError(t, err)
	})

	t.Run("Should leave the message pending when dispatch fails", func(t *testing.T) {
		m, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		due := &entity.ScheduledMessage{
			ID:          3,
			UserID:      "U111",
			MessageType: entity.MessageWeeklyFriday,
			WeekTarget:  testWeek(),
			Status:      entity.MessagePending,
		}

		m.mockMessageRepo.EXPECT().
			GetPendingDue(now).
			Return([]*entity.ScheduledMessage{due}, nil).Times(1)
		m.mockAvailabilityRepo.EXPECT().
			GetByUserAndWeek("U111", testWeek()).
			Return(nil, nil).Times(1)
		m.mockSlackClient.EXPECT().
			PostMessage("U111", gomock.Any(), gomock.Any()).
			Return("", "", errors.New("slack is down")).Times(1)

		// No status update: the next sweep retries.

		err := svc.Scheduler.Sweep(now)
		require.NoError(t, err)
	})
}

func TestPromptText(t *testing.T) {
	assert.Contains(t, PromptText(entity.MessageWeeklyFriday), "next week")
	assert.Contains(t, PromptText(entity.MessageWeeklyFollowup), "this week")
	assert.Contains(t, PromptText(entity.MessageDailyEvening), "tomorrow")
}
