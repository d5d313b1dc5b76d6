package database

import (
	"testing"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newEmployeeRepo(db.conn)

	employee := &entity.Employee{
		SlackUserID:   "U123456789",
		SlackUserName: "testuser",
		DisplayName:   "Test User",
		IsActive:      true,
	}

	err := repo.Create(employee)
	require.NoError(t, err, "Failed to create employee")

	assert.NotZero(t, employee.ID, "Expected employee ID to be set after creation")
}

func TestEmployeeRepository_Create_DuplicateSlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newEmployeeRepo(db.conn)

	employee := &entity.Employee{
		SlackUserID:   "U123456789",
		SlackUserName: "testuser",
		IsActive:      true,
	}

	require.NoError(t, repo.Create(employee))

	err := repo.Create(&entity.Employee{
		SlackUserID:   "U123456789",
		SlackUserName: "other",
		IsActive:      true,
	})
	assert.Error(t, err, "Expected error for duplicate slack user ID")
}

func TestEmployeeRepository_GetBySlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newEmployeeRepo(db.conn)

	original := &entity.Employee{
		SlackUserID:   "U123456789",
		SlackUserName: "testuser",
		DisplayName:   "Test User",
		IsActive:      true,
	}

	err := repo.Create(original)
	require.NoError(t, err, "Failed to create test employee")

	found, err := repo.GetBySlackID("U123456789")
	require.NoError(t, err, "Failed to get employee by Slack ID")
	require.NotNil(t, found, "Expected to find employee")

	assert.Equal(t, original.SlackUserID, found.SlackUserID)
	assert.Equal(t, original.SlackUserName, found.SlackUserName)
	assert.Equal(t, original.DisplayName, found.DisplayName)
	assert.True(t, found.IsActive)
	assert.False(t, found.JoinedAt.IsZero(), "Expected joined_at to be set")

	// Test not found
	notFound, err := repo.GetBySlackID("NONEXISTENT")
	require.NoError(t, err, "Unexpected error when employee not found")
	assert.Nil(t, notFound, "Expected nil when employee not found")
}

func TestEmployeeRepository_GetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newEmployeeRepo(db.conn)

	require.NoError(t, repo.Create(&entity.Employee{SlackUserID: "U111", SlackUserName: "one", IsActive: true}))
	require.NoError(t, repo.Create(&entity.Employee{SlackUserID: "U222", SlackUserName: "two", IsActive: true}))
	require.NoError(t, repo.Create(&entity.Employee{SlackUserID: "U333", SlackUserName: "three", IsActive: false}))

	active, err := repo.GetActive()
	require.NoError(t, err, "Failed to get active employees")
	require.Len(t, active, 2, "Expected only active employees")

	ids := []string{active[0].SlackUserID, active[1].SlackUserID}
	assert.Contains(t, ids, "U111")
	assert.Contains(t, ids, "U222")
}

func TestEmployeeRepository_SetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newEmployeeRepo(db.conn)

	require.NoError(t, repo.Create(&entity.Employee{SlackUserID: "U111", SlackUserName: "one", IsActive: true}))

	err := repo.SetActive("U111", false)
	require.NoError(t, err, "Failed to deactivate employee")

	found, err := repo.GetBySlackID("U111")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.IsActive)

	require.NoError(t, repo.SetActive("U111", true))

	found, err = repo.GetBySlackID("U111")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.IsActive)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newEmployeeRepo(db.conn)

	employee := &entity.Employee{SlackUserID: "U111", SlackUserName: "one", IsActive: true}
	require.NoError(t, repo.Create(employee))

	err := repo.Delete(employee.ID)
	require.NoError(t, err, "Failed to delete employee")

	found, err := repo.GetBySlackID("U111")
	require.NoError(t, err)
	assert.Nil(t, found, "Expected employee to be gone after delete")
}
