package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
)

// dateKey is the canonical storage format for week start dates.
func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

type availabilityRepo struct {
	db dbConn
}

func newAvailabilityRepo(db dbConn) contract.AvailabilityRepo {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) Create(availability *entity.Availability) error {
	query := `
		INSERT INTO wfo_availability (user_id, week_start_date, monday_status, tuesday_status,
			wednesday_status, thursday_status, friday_status, office_days_count, is_compliant, collection_method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		availability.UserID,
		dateKey(availability.WeekStartDate),
		statusValue(availability.Schedule.Monday),
		statusValue(availability.Schedule.Tuesday),
		statusValue(availability.Schedule.Wednesday),
		statusValue(availability.Schedule.Thursday),
		statusValue(availability.Schedule.Friday),
		availability.OfficeDaysCount,
		availability.IsCompliant,
		string(availability.CollectionMethod),
	)
	if err != nil {
		return fmt.Errorf("failed to create availability: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	availability.ID = id
	return nil
}

func (r *availabilityRepo) GetByUserAndWeek(userID string, weekStart time.Time) (*entity.Availability, error) {
	query := `
		SELECT id, user_id, week_start_date, monday_status, tuesday_status, wednesday_status,
			thursday_status, friday_status, office_days_count, is_compliant, collection_method,
			created_at, updated_at
		FROM wfo_availability
		WHERE user_id = ? AND week_start_date = ?
	`

	availability, err := scanAvailability(r.db.QueryRow(query, userID, dateKey(weekStart)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	return availability, nil
}

func (r *availabilityRepo) Update(availability *entity.Availability) error {
	query := `
		UPDATE wfo_availability SET
			monday_status = ?,
			tuesday_status = ?,
			wednesday_status = ?,
			thursday_status = ?,
			friday_status = ?,
			office_days_count = ?,
			is_compliant = ?,
			collection_method = ?,
			updated_at = ?
		WHERE user_id = ? AND week_start_date = ?
	`

	_, err := r.db.Exec(query,
		statusValue(availability.Schedule.Monday),
		statusValue(availability.Schedule.Tuesday),
		statusValue(availability.Schedule.Wednesday),
		statusValue(availability.Schedule.Thursday),
		statusValue(availability.Schedule.Friday),
		availability.OfficeDaysCount,
		availability.IsCompliant,
		string(availability.CollectionMethod),
		time.Now().UTC(),
		availability.UserID,
		dateKey(availability.WeekStartDate),
	)
	if err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}

	return nil
}

func (r *availabilityRepo) GetAllByUser(userID string) ([]*entity.Availability, error) {
	query := `
		SELECT id, user_id, week_start_date, monday_status, tuesday_status, wednesday_status,
			thursday_status, friday_status, office_days_count, is_compliant, collection_method,
			created_at, updated_at
		FROM wfo_availability
		WHERE user_id = ?
		ORDER BY week_start_date DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability records: %w", err)
	}
	defer rows.Close()

	var records []*entity.Availability
	for rows.Next() {
		availability, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		records = append(records, availability)
	}

	return records, nil
}

// statusValue maps the unset status to NULL so the database never records
// "no information" as a real answer.
func statusValue(status entity.WeekdayStatus) interface{} {
	if !status.IsSet() {
		return nil
	}
	return string(status)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*entity.Availability, error) {
	availability := &entity.Availability{}
	var monday, tuesday, wednesday, thursday, friday sql.NullString
	var method string

	err := row.Scan(
		&availability.ID,
		&availability.UserID,
		&availability.WeekStartDate,
		&monday,
		&tuesday,
		&wednesday,
		&thursday,
		&friday,
		&availability.OfficeDaysCount,
		&availability.IsCompliant,
		&method,
		&availability.CreatedAt,
		&availability.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	availability.Schedule = entity.WeekSchedule{
		Monday:    nullableStatus(monday),
		Tuesday:   nullableStatus(tuesday),
		Wednesday: nullableStatus(wednesday),
		Thursday:  nullableStatus(thursday),
		Friday:    nullableStatus(friday),
	}
	availability.CollectionMethod = entity.CollectionMethod(method)

	return availability, nil
}

func nullableStatus(value sql.NullString) entity.WeekdayStatus {
	if !value.Valid {
		return entity.StatusUnset
	}
	return entity.WeekdayStatus(value.String)
}
