package reports

import (
	"testing"
	"time"
	_ "time/tzdata"

	"worklog/dates"
	"worklog/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func entry(date string, hours float64, status models.Status) models.WorkLog {
	return models.WorkLog{Date: dates.Date(date), HoursLogged: hours, Status: status}
}

func TestComputeScenario(t *testing.T) {
	logs := []models.WorkLog{
		entry("2024-01-01", 8, models.StatusApproved),
		entry("2024-01-02", 4, models.StatusPending),
	}
	now := time.Date(2024, time.January, 2, 15, 0, 0, 0, time.Local)

	got := Compute(logs, ptr(800), now)

	want := Stats{
		DailyHours:    4,
		WeeklyHours:   12,
		MonthlyHours:  12,
		WeeklySalary:  Estimate{Amount: 800, Available: true},
		MonthlySalary: Estimate{Amount: 800, Available: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeSundayCountsTowardPrecedingWeek(t *testing.T) {
	logs := []models.WorkLog{
		entry("2024-01-07", 5, models.StatusApproved),
		entry("2024-01-08", 3, models.StatusApproved),
		entry("2023-12-31", 2, models.StatusApproved),
	}
	// Today is the Sunday itself.
	now := time.Date(2024, time.January, 7, 20, 0, 0, 0, time.UTC)

	got := Compute(logs, ptr(80), now)

	assert.Equal(t, 5.0, got.DailyHours)
	assert.Equal(t, 5.0, got.WeeklyHours)
	assert.Equal(t, 5.0, got.MonthlyHours)
	assert.Equal(t, Estimate{Amount: 50, Available: true}, got.WeeklySalary)
}

func TestComputeSalaryUnavailable(t *testing.T) {
	logs := []models.WorkLog{entry("2024-01-02", 8, models.StatusApproved)}
	now := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

	for name, salary := range map[string]*float64{"nil": nil, "zero": ptr(0)} {
		t.Run(name, func(t *testing.T) {
			got := Compute(logs, salary, now)

			assert.False(t, got.WeeklySalary.Available)
			assert.False(t, got.MonthlySalary.Available)
			assert.Equal(t, SalaryUnavailable, got.WeeklySalary.Text("₱"))
			assert.NotEqual(t, "₱0.00", got.MonthlySalary.Text("₱"))
			assert.Equal(t, 8.0, got.WeeklyHours)
		})
	}
}

func TestComputeZeroEarnedIsStillAvailable(t *testing.T) {
	logs := []models.WorkLog{entry("2024-01-02", 8, models.StatusDenied)}
	now := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

	got := Compute(logs, ptr(800), now)

	assert.Equal(t, Estimate{Amount: 0, Available: true}, got.WeeklySalary)
	assert.Equal(t, "₱0.00", got.WeeklySalary.Text("₱"))
	assert.Equal(t, 8.0, got.WeeklyHours, "hours count regardless of status")
}

func TestComputeMonthOutsideWeek(t *testing.T) {
	logs := []models.WorkLog{
		entry("2024-01-29", 1, models.StatusApproved), // Monday, same week and month
		entry("2024-02-01", 2, models.StatusApproved), // Thursday, same week, next month
		entry("2024-01-03", 4, models.StatusApproved), // same month, earlier week
		entry("2023-01-31", 8, models.StatusApproved), // same month number, earlier year
	}
	now := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

	got := Compute(logs, ptr(16), now)

	assert.Equal(t, 0.0, got.DailyHours)
	assert.Equal(t, 3.0, got.WeeklyHours)
	assert.Equal(t, 5.0, got.MonthlyHours)
	assert.Equal(t, 6.0, got.WeeklySalary.Amount)
	assert.Equal(t, 10.0, got.MonthlySalary.Amount)
}

func TestComputeUsesLocalCalendarDay(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	// 07:30 in Manila is still the previous day in UTC.
	now := time.Date(2024, time.January, 8, 7, 30, 0, 0, manila)
	logs := []models.WorkLog{
		entry("2024-01-08", 6, models.StatusApproved),
		entry("2024-01-07", 2, models.StatusApproved),
	}

	got := Compute(logs, ptr(800), now)

	assert.Equal(t, 6.0, got.DailyHours)
	assert.Equal(t, 6.0, got.WeeklyHours, "Sunday the 7th belongs to the previous week")
	assert.Equal(t, 8.0, got.MonthlyHours)
}

func TestComputeKeepsFullPrecision(t *testing.T) {
	logs := []models.WorkLog{
		entry("2024-01-02", 0.25, models.StatusPending),
		entry("2024-01-02", 0.25, models.StatusPending),
		entry("2024-01-02", 0.04, models.StatusPending),
	}
	now := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

	got := Compute(logs, nil, now)

	assert.InDelta(t, 0.54, got.DailyHours, 1e-9)
	assert.Equal(t, "0.5 hrs", FormatHours(got.DailyHours))
}

func TestComputeIgnoresMalformedDates(t *testing.T) {
	logs := []models.WorkLog{entry("not-a-date", 3, models.StatusApproved)}
	now := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

	got := Compute(logs, ptr(800), now)

	assert.Equal(t, 0.0, got.WeeklyHours)
	assert.Equal(t, 0.0, got.MonthlyHours)
}

func TestHourlyRate(t *testing.T) {
	assert.Equal(t, 100.0, HourlyRate(ptr(800)))
	assert.Equal(t, 0.0, HourlyRate(nil))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 800, want: "₱800.00"},
		{amount: 1234567.891, want: "₱1,234,567.89"},
		{amount: 0, want: "₱0.00"},
		{amount: -12.5, want: "-₱12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency("₱", tt.amount))
		})
	}
}
