package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	employeeRepo     contract.EmployeeRepo
	availabilityRepo contract.AvailabilityRepo
	attemptRepo      contract.AttemptRepo
	messageRepo      contract.MessageRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.employeeRepo = newEmployeeRepo(i.db.conn)
	i.availabilityRepo = newAvailabilityRepo(i.db.conn)
	i.attemptRepo = newAttemptRepo(i.db.conn)
	i.messageRepo = newMessageRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		employeeRepo:     newEmployeeRepo(db),
		availabilityRepo: newAvailabilityRepo(db),
		attemptRepo:      newAttemptRepo(db),
		messageRepo:      newMessageRepo(db),
	}
}

// Employee returns the employee repository
func (i *instance) Employee() contract.EmployeeRepo {
	return i.employeeRepo
}

// Availability returns the availability repository
func (i *instance) Availability() contract.AvailabilityRepo {
	return i.availabilityRepo
}

// Attempt returns the collection attempt repository
func (i *instance) Attempt() contract.AttemptRepo {
	return i.attemptRepo
}

// Message returns the scheduled message repository
func (i *instance) Message() contract.MessageRepo {
	return i.messageRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
