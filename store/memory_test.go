package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"worklog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFold(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"alice", "Alice", true},
		{"ALICE", "alice", true},
		{"ali", "Alice", false},
		{"ali%", "Alice", true},
		{"%ce", "Alice", true},
		{"a_ice", "Alice", true},
		{"a_ice", "Aice", false},
		{"%", "", true},
		{"", "", true},
		{"", "Alice", false},
		{"josé", "JOSÉ", true},
		{"jos_", "José", true},
		{"a%%e", "Alice", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.s, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchFold(tt.pattern, tt.s))
		})
	}
}

func TestMemoryFindEmployeeFirstMatchWins(t *testing.T) {
	m := NewMemory()
	first := m.AddEmployee(models.Employee{FirstName: "Maria", LastName: "Santos"})
	m.AddEmployee(models.Employee{FirstName: "maria", LastName: "Cruz"})

	got, err := m.FindEmployeeByName(context.Background(), "MARIA")
	require.NoError(t, err)
	assert.Equal(t, first, got.ID)

	_, err = m.FindEmployeeByName(context.Background(), "Mario")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryListOrdering(t *testing.T) {
	m := NewMemory()
	base := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	m.AddWorkLog(models.WorkLog{ID: "old-day", EmployeeID: "e1", Date: "2024-01-01", CreatedAt: base.Add(time.Hour)})
	m.AddWorkLog(models.WorkLog{ID: "same-day-early", EmployeeID: "e1", Date: "2024-01-02", CreatedAt: base})
	m.AddWorkLog(models.WorkLog{ID: "same-day-late", EmployeeID: "e1", Date: "2024-01-02", CreatedAt: base.Add(2 * time.Hour)})
	m.AddWorkLog(models.WorkLog{ID: "other", EmployeeID: "e2", Date: "2024-01-03", CreatedAt: base})

	logs, err := m.ListWorkLogs(context.Background(), "e1")
	require.NoError(t, err)

	var ids []string
	for _, l := range logs {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"same-day-late", "same-day-early", "old-day"}, ids)
}

func TestMemoryInsertAssignsBackendFields(t *testing.T) {
	m := NewMemory()
	stamp := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	m.Now = func() time.Time { return stamp }

	l, err := m.InsertWorkLog(context.Background(), "e1", models.NewWorkLog{Date: "2024-01-02", Hours: 3, Description: "Filing"})
	require.NoError(t, err)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, stamp, l.CreatedAt)
	assert.Equal(t, models.StatusPending, l.Status)
	assert.Equal(t, "e1", l.EmployeeID)
	assert.Equal(t, 1, m.Calls("insert"))
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	m := NewMemory()
	id := m.AddWorkLog(models.WorkLog{EmployeeID: "e1", Date: "2024-01-02"})
	keep := m.AddWorkLog(models.WorkLog{EmployeeID: "e1", Date: "2024-01-03"})

	require.NoError(t, m.DeleteWorkLog(context.Background(), id))
	require.NoError(t, m.DeleteWorkLog(context.Background(), id))

	logs, err := m.ListWorkLogs(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, keep, logs[0].ID)
}

func TestMemoryInjectedErrors(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")
	m.ListErr = boom
	m.InsertErr = boom

	_, err := m.ListWorkLogs(context.Background(), "e1")
	assert.ErrorIs(t, err, boom)

	_, err = m.InsertWorkLog(context.Background(), "e1", models.NewWorkLog{Date: "2024-01-02"})
	assert.ErrorIs(t, err, boom)

	m.ListErr = nil
	logs, err := m.ListWorkLogs(context.Background(), "e1")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
