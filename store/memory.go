package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"worklog/models"

	"github.com/google/uuid"
)

// Memory is a Repository held in process memory. Employees match in the
// order they were added. The *Err fields, when set, are returned by the
// corresponding operation without touching state.
type Memory struct {
	mu        sync.Mutex
	employees []models.Employee
	logs      []models.WorkLog

	// Now stamps CreatedAt on insert.
	Now func() time.Time

	FindErr   error
	ListErr   error
	InsertErr error
	DeleteErr error

	calls map[string]int
}

var _ Repository = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		Now:   time.Now,
		calls: make(map[string]int),
	}
}

// AddEmployee stores e, assigning an id if it has none, and returns the id.
func (m *Memory) AddEmployee(e models.Employee) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	m.employees = append(m.employees, e)
	return e.ID
}

// AddWorkLog stores l as-is, assigning an id and pending status if missing.
// Tests use it to seed rows the approval process would have touched.
func (m *Memory) AddWorkLog(l models.WorkLog) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = models.StatusPending
	}
	m.logs = append(m.logs, l)
	return l.ID
}

// Calls returns how many times the named operation reached the store.
func (m *Memory) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *Memory) FindEmployeeByName(ctx context.Context, firstName string) (*models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["find"]++
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, e := range m.employees {
		if MatchFold(firstName, e.FirstName) {
			found := e
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListWorkLogs(ctx context.Context, employeeID string) ([]models.WorkLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["list"]++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.WorkLog
	for _, l := range m.logs {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) InsertWorkLog(ctx context.Context, employeeID string, in models.NewWorkLog) (*models.WorkLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["insert"]++
	if m.InsertErr != nil {
		return nil, m.InsertErr
	}
	l := models.WorkLog{
		ID:              uuid.NewString(),
		CreatedAt:       m.Now(),
		EmployeeID:      employeeID,
		Date:            in.Date,
		TaskDescription: in.Description,
		HoursLogged:     in.Hours,
		Status:          models.StatusPending,
	}
	m.logs = append(m.logs, l)
	return &l, nil
}

func (m *Memory) DeleteWorkLog(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["delete"]++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	kept := m.logs[:0]
	for _, l := range m.logs {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	m.logs = kept
	return nil
}
