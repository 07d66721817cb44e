package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"worklog/dates"
	"worklog/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportTime(t *testing.T) {
	now := time.Date(2024, time.March, 5, 23, 30, 0, 0, time.UTC)

	got, err := reportTime("", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = reportTime("2024-01-07", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, dates.Date("2024-01-07"), dates.Of(got))

	_, err = reportTime("07/01/2024", now, time.UTC)
	assert.ErrorIs(t, err, dates.ErrInvalid)
}

func TestWriteReport(t *testing.T) {
	stats := reports.Stats{
		DailyHours:    4,
		WeeklyHours:   12,
		MonthlyHours:  12,
		WeeklySalary:  reports.Estimate{Amount: 800, Available: true},
		MonthlySalary: reports.Estimate{Amount: 800, Available: true},
	}
	asOf := time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, "Alice Reyes", asOf, stats, "₱"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "Alice Reyes"))
	assert.True(t, strings.HasSuffix(lines[0], "2024-01-02"))
	assert.True(t, strings.HasSuffix(lines[1], "4.0 hrs"))
	assert.True(t, strings.HasSuffix(lines[2], "12.0 hrs"))
	assert.True(t, strings.HasSuffix(lines[4], "₱800.00"))
}

func TestWriteReportWithoutSalary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, "Bob Tan", time.Now(), reports.Stats{}, "₱"))

	assert.Equal(t, 2, strings.Count(buf.String(), reports.SalaryUnavailable))
}

func TestNewEmployee(t *testing.T) {
	salary := 800.0
	e, err := newEmployee("  Alice ", " Reyes", &salary)
	require.NoError(t, err)
	assert.Equal(t, "Alice", e.FirstName)
	assert.Equal(t, "Reyes", e.LastName)
	assert.Equal(t, &salary, e.Salary)

	e, err = newEmployee("Bob", "", nil)
	require.NoError(t, err)
	assert.Nil(t, e.Salary)

	_, err = newEmployee(" ", "Reyes", nil)
	assert.Error(t, err)

	negative := -1.0
	_, err = newEmployee("Alice", "Reyes", &negative)
	assert.Error(t, err)
}
