package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"worklog/dates"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Label is the display text of a status; unknown values read as pending.
func (s Status) Label() string {
	switch s {
	case StatusApproved:
		return "Approved"
	case StatusDenied:
		return "Denied"
	default:
		return "Pending"
	}
}

// WorkLog is one dated record of hours worked. Status is set by an approval
// process outside this application and is never changed here.
type WorkLog struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt       time.Time  `gorm:"not null;index" json:"created_at"`
	EmployeeID      string     `gorm:"type:uuid;not null;index" json:"employee_id"`
	Date            dates.Date `gorm:"not null;type:date;index" json:"date"`
	TaskDescription string     `gorm:"not null;type:text" json:"task_description"`
	HoursLogged     float64    `gorm:"not null" json:"hours_logged"`
	Status          Status     `gorm:"not null;size:20;default:pending" json:"status"`
}

func (l *WorkLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = StatusPending
	}
	return nil
}

var (
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidHours     = errors.New("hours must be a non-negative number")
	ErrEmptyDescription = errors.New("description is required")
)

// NewWorkLog is the client-supplied part of a work log.
type NewWorkLog struct {
	Date        dates.Date
	Hours       float64
	Description string
}

// ParseNewWorkLog validates raw form input. Hours must be finite and
// non-negative; no upper bound is applied.
func ParseNewWorkLog(date, hours, description string) (NewWorkLog, error) {
	d, err := dates.Parse(date)
	if err != nil {
		return NewWorkLog{}, ErrInvalidDate
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(hours), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return NewWorkLog{}, ErrInvalidHours
	}

	if strings.TrimSpace(description) == "" {
		return NewWorkLog{}, ErrEmptyDescription
	}

	return NewWorkLog{Date: d, Hours: h, Description: description}, nil
}
