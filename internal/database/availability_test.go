package database

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeek() time.Time {
	return time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
}

func TestAvailabilityRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAvailabilityRepo(db.conn)

	availability := &entity.Availability{
		UserID:        "U123456789",
		WeekStartDate: testWeek(),
		Schedule: entity.WeekSchedule{
			Monday:    entity.StatusOffice,
			Wednesday: entity.StatusOffice,
			Friday:    entity.StatusHome,
		},
		OfficeDaysCount:  2,
		IsCompliant:      false,
		CollectionMethod: entity.MethodWeekly,
	}

	err := repo.Create(availability)
	require.NoError(t, err, "Failed to create availability")

	assert.NotZero(t, availability.ID, "Expected availability ID to be set after creation")
}

func TestAvailabilityRepository_Create_DuplicateWeek(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAvailabilityRepo(db.conn)

	first := &entity.Availability{
		UserID:           "U123456789",
		WeekStartDate:    testWeek(),
		CollectionMethod: entity.MethodWeekly,
	}
	require.NoError(t, repo.Create(first))

	err := repo.Create(&entity.Availability{
		UserID:           "U123456789",
		WeekStartDate:    testWeek(),
		CollectionMethod: entity.MethodDaily,
	})
	assert.Error(t, err, "Expected error for duplicate user and week")
}

func TestAvailabilityRepository_GetByUserAndWeek(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAvailabilityRepo(db.conn)

	original := &entity.Availability{
		UserID:        "U123456789",
		WeekStartDate: testWeek(),
		Schedule: entity.WeekSchedule{
			Monday:   entity.StatusOffice,
			Tuesday:  entity.StatusLeave,
			Thursday: entity.StatusHybrid,
		},
		OfficeDaysCount:  1,
		IsCompliant:      false,
		CollectionMethod: entity.MethodWeekly,
	}
	require.NoError(t, repo.Create(original))

	found, err := repo.GetByUserAndWeek("U123456789", testWeek())
	require.NoError(t, err, "Failed to get availability")
	require.NotNil(t, found, "Expected to find availability")

	assert.Equal(t, original.UserID, found.UserID)
	assert.Equal(t, entity.StatusOffice, found.Schedule.Monday)
	assert.Equal(t, entity.StatusLeave, found.Schedule.Tuesday)
	assert.Equal(t, entity.StatusUnset, found.Schedule.Wednesday, "Days without information must come back unset")
	assert.Equal(t, entity.StatusHybrid, found.Schedule.Thursday)
	assert.Equal(t, entity.StatusUnset, found.Schedule.Friday)
	assert.Equal(t, 1, found.OfficeDaysCount)
	assert.False(t, found.IsCompliant)
	assert.Equal(t, entity.MethodWeekly, found.CollectionMethod)

	// Test not found
	notFound, err := repo.GetByUserAndWeek("U123456789", testWeek().AddDate(0, 0, 7))
	require.NoError(t, err, "Unexpected error when availability not found")
	assert.Nil(t, notFound, "Expected nil when availability not found")
}

func TestAvailabilityRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAvailabilityRepo(db.conn)

	availability := &entity.Availability{
		UserID:        "U123456789",
		WeekStartDate: testWeek(),
		Schedule: entity.WeekSchedule{
			Monday: entity.StatusOffice,
		},
		OfficeDaysCount:  1,
		CollectionMethod: entity.MethodWeekly,
	}
	require.NoError(t, repo.Create(availability))

	availability.Schedule.Wednesday = entity.StatusOffice
	availability.Schedule.Friday = entity.StatusOffice
	availability.OfficeDaysCount = 3
	availability.IsCompliant = true
	availability.CollectionMethod = entity.MethodDaily

	err := repo.Update(availability)
	require.NoError(t, err, "Failed to update availability")

	found, err := repo.GetByUserAndWeek("U123456789", testWeek())
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, entity.StatusOffice, found.Schedule.Monday)
	assert.Equal(t, entity.StatusOffice, found.Schedule.Wednesday)
	assert.Equal(t, entity.StatusOffice, found.Schedule.Friday)
	assert.Equal(t, 3, found.OfficeDaysCount)
	assert.True(t, found.IsCompliant)
	assert.Equal(t, entity.MethodDaily, found.CollectionMethod)
}

func TestAvailabilityRepository_GetAllByUser(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAvailabilityRepo(db.conn)

	weeks := []time.Time{
		testWeek(),
		testWeek().AddDate(0, 0, 7),
		testWeek().AddDate(0, 0, 14),
	}
	for _, week := range weeks {
		require.NoError(t, repo.Create(&entity.Availability{
			UserID:           "U123456789",
			WeekStartDate:    week,
			CollectionMethod: entity.MethodWeekly,
		}))
	}
	require.NoError(t, repo.Create(&entity.Availability{
		UserID:           "U_OTHER",
		WeekStartDate:    testWeek(),
		CollectionMethod: entity.MethodWeekly,
	}))

	records, err := repo.GetAllByUser("U123456789")
	require.NoError(t, err, "Failed to get availability records")
	require.Len(t, records, 3, "Expected only the user's own records")

	// Most recent week first.
	assert.Equal(t, weeks[2], records[0].WeekStartDate.UTC())
	assert.Equal(t, weeks[1], records[1].WeekStartDate.UTC())
	assert.Equal(t, weeks[0], records[2].WeekStartDate.UTC())
}
