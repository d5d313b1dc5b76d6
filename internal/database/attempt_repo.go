package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
)

type attemptRepo struct {
	db dbConn
}

func newAttemptRepo(db dbConn) contract.AttemptRepo {
	return &attemptRepo{db: db}
}

// Create appends one attempt row. There is no update or delete on this
// table; the log is the audit trail driving the stopping rule.
func (r *attemptRepo) Create(attempt *entity.CollectionAttempt) error {
	query := `
		INSERT INTO wfo_collection_attempts (user_id, week_start_date, attempt_type,
			response_received, response_data, success, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		attempt.UserID,
		dateKey(attempt.WeekStartDate),
		string(attempt.AttemptType),
		attempt.ResponseReceived,
		attempt.ResponseData,
		attempt.Success,
		attempt.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	attempt.ID = id
	if attempt.AttemptTimestamp.IsZero() {
		attempt.AttemptTimestamp = time.Now().UTC()
	}
	return nil
}

func (r *attemptRepo) GetByUserAndWeek(userID string, weekStart time.Time) ([]*entity.CollectionAttempt, error) {
	query := `
		SELECT id, user_id, week_start_date, attempt_type, attempt_timestamp,
			response_received, response_data, success, reason
		FROM wfo_collection_attempts
		WHERE user_id = ? AND week_start_date = ?
		ORDER BY attempt_timestamp DESC
	`

	rows, err := r.db.Query(query, userID, dateKey(weekStart))
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*entity.CollectionAttempt
	for rows.Next() {
		attempt := &entity.CollectionAttempt{}
		var attemptType string
		var responseData, reason sql.NullString
		err := rows.Scan(
			&attempt.ID,
			&attempt.UserID,
			&attempt.WeekStartDate,
			&attemptType,
			&attempt.AttemptTimestamp,
			&attempt.ResponseReceived,
			&responseData,
			&attempt.Success,
			&reason,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempt.AttemptType = entity.AttemptType(attemptType)
		attempt.ResponseData = responseData.String
		attempt.Reason = reason.String
		attempts = append(attempts, attempt)
	}

	return attempts, nil
}

func (r *attemptRepo) CountByUserAndWeek(userID string, weekStart time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM wfo_collection_attempts WHERE user_id = ? AND week_start_date = ?`

	var count int
	err := r.db.QueryRow(query, userID, dateKey(weekStart)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}

	return count, nil
}
