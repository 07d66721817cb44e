// Package store defines the narrow data-access surface the rest of the
// application depends on, plus an in-memory implementation for tests and
// local runs.
package store

import (
	"context"
	"errors"

	"worklog/models"
)

var ErrNotFound = errors.New("not found")

// Repository is everything the application needs from the backend.
type Repository interface {
	// FindEmployeeByName matches firstName as a case-insensitive LIKE
	// pattern against employee first names and returns the first match,
	// or ErrNotFound.
	FindEmployeeByName(ctx context.Context, firstName string) (*models.Employee, error)

	// ListWorkLogs returns every log of the employee, newest date first and
	// newest creation first within a day.
	ListWorkLogs(ctx context.Context, employeeID string) ([]models.WorkLog, error)

	// InsertWorkLog stores a new log and returns it with the backend
	// assigned id, creation time and status.
	InsertWorkLog(ctx context.Context, employeeID string, in models.NewWorkLog) (*models.WorkLog, error)

	// DeleteWorkLog removes a log by id. Deleting a missing id is not an error.
	DeleteWorkLog(ctx context.Context, id string) error
}
