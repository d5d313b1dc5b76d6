package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
)

type messageRepo struct {
	db dbConn
}

func newMessageRepo(db dbConn) contract.MessageRepo {
	return &messageRepo{db: db}
}

const messageColumns = `id, user_id, message_type, scheduled_for, week_target, status, created_at, sent_at, completed_at`

func (r *messageRepo) Create(message *entity.ScheduledMessage) error {
	query := `
		INSERT INTO wfo_scheduled_messages (user_id, message_type, scheduled_for, week_target, status)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		message.UserID,
		string(message.MessageType),
		message.ScheduledFor.UTC(),
		dateKey(message.WeekTarget),
		string(message.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduled message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	message.ID = id
	return nil
}

func (r *messageRepo) GetByUserTypeAndWeek(userID string, messageType entity.MessageType, weekTarget time.Time) (*entity.ScheduledMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM wfo_scheduled_messages
		WHERE user_id = ? AND message_type = ? AND week_target = ?
		ORDER BY created_at DESC
		LIMIT 1
	`

	message, err := scanMessage(r.db.QueryRow(query, userID, string(messageType), dateKey(weekTarget)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled message: %w", err)
	}

	return message, nil
}

func (r *messageRepo) GetPendingDue(now time.Time) ([]*entity.ScheduledMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM wfo_scheduled_messages
		WHERE status = 'pending' AND scheduled_for <= ?
		ORDER BY scheduled_for ASC
	`

	return r.queryMessages(query, now.UTC())
}

func (r *messageRepo) GetOpenSentByUser(userID string) ([]*entity.ScheduledMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM wfo_scheduled_messages
		WHERE user_id = ? AND status = 'sent'
		ORDER BY sent_at DESC
	`

	return r.queryMessages(query, userID)
}

func (r *messageRepo) GetByUserAndWeek(userID string, weekTarget time.Time) ([]*entity.ScheduledMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM wfo_scheduled_messages
		WHERE user_id = ? AND week_target = ?
		ORDER BY created_at ASC
	`

	return r.queryMessages(query, userID, dateKey(weekTarget))
}

// UpdateStatus advances a message through its lifecycle, stamping sent_at
// or completed_at as appropriate.
func (r *messageRepo) UpdateStatus(id int64, status entity.MessageStatus) error {
	var query string
	switch status {
	case entity.MessageSent:
		query = `UPDATE wfo_scheduled_messages SET status = ?, sent_at = CURRENT_TIMESTAMP WHERE id = ?`
	case entity.MessageCompleted:
		query = `UPDATE wfo_scheduled_messages SET status = ?, completed_at = CURRENT_TIMESTAMP WHERE id = ?`
	default:
		query = `UPDATE wfo_scheduled_messages SET status = ? WHERE id = ?`
	}

	_, err := r.db.Exec(query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	return nil
}

func (r *messageRepo) queryMessages(query string, args ...interface{}) ([]*entity.ScheduledMessage, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.ScheduledMessage
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled message: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func scanMessage(row rowScanner) (*entity.ScheduledMessage, error) {
	message := &entity.ScheduledMessage{}
	var messageType, status string
	var sentAt, completedAt sql.NullTime

	err := row.Scan(
		&message.ID,
		&message.UserID,
		&messageType,
		&message.ScheduledFor,
		&message.WeekTarget,
		&status,
		&message.CreatedAt,
		&sentAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	message.MessageType = entity.MessageType(messageType)
	message.Status = entity.MessageStatus(status)
	if sentAt.Valid {
		message.SentAt = &sentAt.Time
	}
	if completedAt.Valid {
		message.CompletedAt = &completedAt.Time
	}

	return message, nil
}
