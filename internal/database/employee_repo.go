package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
)

type employeeRepo struct {
	db dbConn
}

func newEmployeeRepo(db dbConn) contract.EmployeeRepo {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (slack_user_id, slack_user_name, display_name, is_active)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		employee.SlackUserID,
		employee.SlackUserName,
		employee.DisplayName,
		employee.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	employee.ID = id
	return nil
}

func (r *employeeRepo) GetBySlackID(slackUserID string) (*entity.Employee, error) {
	employee := &entity.Employee{}
	query := `
		SELECT id, slack_user_id, slack_user_name, display_name, is_active, joined_at
		FROM employees
		WHERE slack_user_id = ?
	`

	err := r.db.QueryRow(query, slackUserID).Scan(
		&employee.ID,
		&employee.SlackUserID,
		&employee.SlackUserName,
		&employee.DisplayName,
		&employee.IsActive,
		&employee.JoinedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

func (r *employeeRepo) GetActive() ([]*entity.Employee, error) {
	query := `
		SELECT id, slack_user_id, slack_user_name, display_name, is_active, joined_at
		FROM employees
		WHERE is_active = 1
		ORDER BY joined_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee := &entity.Employee{}
		err := rows.Scan(
			&employee.ID,
			&employee.SlackUserID,
			&employee.SlackUserName,
			&employee.DisplayName,
			&employee.IsActive,
			&employee.JoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	return employees, nil
}

func (r *employeeRepo) SetActive(slackUserID string, active bool) error {
	query := `UPDATE employees SET is_active = ? WHERE slack_user_id = ?`

	_, err := r.db.Exec(query, active, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to set employee active status: %w", err)
	}

	return nil
}

func (r *employeeRepo) Delete(id int64) error {
	query := `DELETE FROM employees WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
