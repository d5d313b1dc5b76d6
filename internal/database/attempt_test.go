package database

import (
	"testing"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAttemptRepo(db.conn)

	attempt := &entity.CollectionAttempt{
		UserID:           "U123456789",
		WeekStartDate:    testWeek(),
		AttemptType:      entity.AttemptWeeklyFriday,
		ResponseReceived: true,
		ResponseData:     "monday to wednesday",
		Success:          true,
	}

	err := repo.Create(attempt)
	require.NoError(t, err, "Failed to create attempt")

	assert.NotZero(t, attempt.ID, "Expected attempt ID to be set after creation")
	assert.False(t, attempt.AttemptTimestamp.IsZero(), "Expected attempt timestamp to be set")
}

func TestAttemptRepository_GetByUserAndWeek(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAttemptRepo(db.conn)

	require.NoError(t, repo.Create(&entity.CollectionAttempt{
		UserID:           "U123456789",
		WeekStartDate:    testWeek(),
		AttemptType:      entity.AttemptWeeklyFriday,
		ResponseReceived: false,
		Reason:           "no response before next scheduling pass",
	}))
	require.NoError(t, repo.Create(&entity.CollectionAttempt{
		UserID:           "U123456789",
		WeekStartDate:    testWeek(),
		AttemptType:      entity.AttemptDailyEvening,
		ResponseReceived: true,
		ResponseData:     "yes",
		Success:          true,
	}))
	require.NoError(t, repo.Create(&entity.CollectionAttempt{
		UserID:        "U_OTHER",
		WeekStartDate: testWeek(),
		AttemptType:   entity.AttemptWeeklyFriday,
	}))

	attempts, err := repo.GetByUserAndWeek("U123456789", testWeek())
	require.NoError(t, err, "Failed to get attempts")
	require.Len(t, attempts, 2, "Expected only the user's own attempts")

	for _, attempt := range attempts {
		assert.Equal(t, "U123456789", attempt.UserID)
	}

	// Empty result for a week without attempts.
	none, err := repo.GetByUserAndWeek("U123456789", testWeek().AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAttemptRepository_CountByUserAndWeek(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAttemptRepo(db.conn)

	count, err := repo.CountByUserAndWeek("U123456789", testWeek())
	require.NoError(t, err)
	assert.Zero(t, count, "Expected zero attempts before any are recorded")

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&entity.CollectionAttempt{
			UserID:        "U123456789",
			WeekStartDate: testWeek(),
			AttemptType:   entity.AttemptDailyEvening,
		}))
	}
	require.NoError(t, repo.Create(&entity.CollectionAttempt{
		UserID:        "U123456789",
		WeekStartDate: testWeek().AddDate(0, 0, 7),
		AttemptType:   entity.AttemptWeeklyFriday,
	}))

	count, err = repo.CountByUserAndWeek("U123456789", testWeek())
	require.NoError(t, err, "Failed to count attempts")
	assert.Equal(t, 3, count, "Count must only cover the requested week")
}
