package database

import (
	"context"
	"fmt"

	"worklog/models"
	"worklog/store"

	"gorm.io/gorm"
)

// Repository is the gorm-backed store.Repository.
type Repository struct {
	db *gorm.DB
}

var _ store.Repository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindEmployeeByName(ctx context.Context, firstName string) (*models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).
		Select("id", "first_name", "last_name", "salary").
		Where("LOWER(first_name) LIKE LOWER(?)", firstName).
		Order("created_at asc").
		Limit(1).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("find employee: %w", err)
	}
	if len(employees) == 0 {
		return nil, store.ErrNotFound
	}
	return &employees[0], nil
}

func (r *Repository) ListWorkLogs(ctx context.Context, employeeID string) ([]models.WorkLog, error) {
	var logs []models.WorkLog
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date desc").
		Order("created_at desc").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list work logs: %w", err)
	}
	return logs, nil
}

func (r *Repository) InsertWorkLog(ctx context.Context, employeeID string, in models.NewWorkLog) (*models.WorkLog, error) {
	entry := models.WorkLog{
		EmployeeID:      employeeID,
		Date:            in.Date,
		TaskDescription: in.Description,
		HoursLogged:     in.Hours,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("insert work log: %w", err)
	}
	return &entry, nil
}

func (r *Repository) DeleteWorkLog(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WorkLog{}).Error; err != nil {
		return fmt.Errorf("delete work log: %w", err)
	}
	return nil
}

// AddEmployee inserts an employee. The web application never writes
// employees; this is for operators seeding the directory.
func (r *Repository) AddEmployee(ctx context.Context, e *models.Employee) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("add employee: %w", err)
	}
	return nil
}
