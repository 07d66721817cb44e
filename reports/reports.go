// Package reports derives hour totals and salary estimates from an
// employee's work logs. Everything here is a pure function of its inputs;
// callers recompute whenever the logs or the salary change.
package reports

import (
	"time"

	"worklog/dates"
	"worklog/models"
)

// StandardDay is the number of hours a daily-rate salary pays for.
const StandardDay = 8

// Estimate is a salary figure. Available is false when the employee has no
// salary configured, which is distinct from having earned nothing.
type Estimate struct {
	Amount    float64
	Available bool
}

type Stats struct {
	DailyHours   float64
	WeeklyHours  float64
	MonthlyHours float64

	WeeklySalary  Estimate
	MonthlySalary Estimate
}

// HourlyRate converts a daily-rate salary. A nil salary counts as zero.
func HourlyRate(salary *float64) float64 {
	if salary == nil {
		return 0
	}
	return *salary / StandardDay
}

// SalaryConfigured is false for a nil or zero salary.
func SalaryConfigured(salary *float64) bool {
	return salary != nil && *salary != 0
}

// Compute aggregates logs as of now. The day, week and month are taken in
// now's location. Hour totals count every log regardless of status; salary
// estimates count approved logs only.
func Compute(logs []models.WorkLog, salary *float64, now time.Time) Stats {
	today := dates.Of(now)
	week := dates.Week(now)
	month := dates.Month(now)

	var stats Stats
	var approvedWeek, approvedMonth float64

	for _, l := range logs {
		if l.Date == today {
			stats.DailyHours += l.HoursLogged
		}

		approved := l.Status == models.StatusApproved
		if week.ContainsDate(l.Date) {
			stats.WeeklyHours += l.HoursLogged
			if approved {
				approvedWeek += l.HoursLogged
			}
		}
		if month.ContainsDate(l.Date) {
			stats.MonthlyHours += l.HoursLogged
			if approved {
				approvedMonth += l.HoursLogged
			}
		}
	}

	if SalaryConfigured(salary) {
		rate := HourlyRate(salary)
		stats.WeeklySalary = Estimate{Amount: approvedWeek * rate, Available: true}
		stats.MonthlySalary = Estimate{Amount: approvedMonth * rate, Available: true}
	}

	return stats
}
