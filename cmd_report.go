package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"worklog/database"
	"worklog/dates"
	"worklog/reports"
	"worklog/session"

	"github.com/spf13/cobra"
)

var (
	reportFirstName string
	reportDate      string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print an employee's hour totals and salary estimates",
	Long: `Prints the same figures as the Reports page for the employee the first
name resolves to, as of today or the given date.

Example:
  worklog report --first-name Alice --date 2024-01-02`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFirstName, "first-name", "", "employee first name, matched as on the sign-in page")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "report as of this day (YYYY-MM-DD); defaults to today")
	_ = reportCmd.MarkFlagRequired("first-name")
}

// reportTime is the instant the report is taken at: now, or noon of the
// given day so the calendar day is unambiguous in loc.
func reportTime(date string, now time.Time, loc *time.Location) (time.Time, error) {
	if date == "" {
		return now.In(loc), nil
	}
	midnight, err := dates.Date(date).Midnight(loc)
	if err != nil {
		return time.Time{}, err
	}
	return midnight.Add(12 * time.Hour), nil
}

func writeReport(w io.Writer, name string, asOf time.Time, stats reports.Stats, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", name, dates.Of(asOf))
	fmt.Fprintf(tw, "Today\t%s\n", reports.FormatHours(stats.DailyHours))
	fmt.Fprintf(tw, "This Week\t%s\n", reports.FormatHours(stats.WeeklyHours))
	fmt.Fprintf(tw, "This Month\t%s\n", reports.FormatHours(stats.MonthlyHours))
	fmt.Fprintf(tw, "Salary This Week\t%s\n", stats.WeeklySalary.Text(currency))
	fmt.Fprintf(tw, "Salary This Month\t%s\n", stats.MonthlySalary.Text(currency))
	return tw.Flush()
}

func runReport(cmd *cobra.Command, args []string) error {
	asOf, err := reportTime(reportDate, cfg.Now(), cfg.Location)
	if err != nil {
		return err
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	repo := database.NewRepository(db)

	identity, err := session.Resolve(cmd.Context(), repo, reportFirstName)
	if err != nil {
		return fmt.Errorf("%q: %w", reportFirstName, err)
	}

	logs, err := repo.ListWorkLogs(cmd.Context(), identity.ID)
	if err != nil {
		return err
	}

	stats := reports.Compute(logs, identity.Salary, asOf)
	return writeReport(cmd.OutOrStdout(), identity.Name, asOf, stats, cfg.CurrencySymbol)
}
