package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is read-only from the web client. Salary is a daily rate for a
// standard 8-hour day.
type Employee struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	FirstName string    `gorm:"not null;size:100;index" json:"first_name"`
	LastName  string    `gorm:"not null;size:100" json:"last_name"`
	Salary    *float64  `gorm:"type:numeric(12,2)" json:"salary"`
	WorkLogs  []WorkLog `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"work_logs,omitempty"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// DisplayName is the first and last name joined by a space.
func (e *Employee) DisplayName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
