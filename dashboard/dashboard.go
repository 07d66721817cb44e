// Package dashboard is the per-session view controller: which view is
// showing, the employee's log list as last fetched, a staged deletion, and
// the report derived from the logs.
//
// Reads that fail are logged and leave an empty list. Writes that fail
// return the error and leave the list as it was.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"worklog/models"
	"worklog/reports"
	"worklog/session"
	"worklog/store"

	"go.uber.org/zap"
)

type View string

const (
	ViewList    View = "list"
	ViewForm    View = "form"
	ViewReports View = "reports"
)

func (v View) Title() string {
	switch v {
	case ViewForm:
		return "Add New Log"
	case ViewReports:
		return "Reports"
	default:
		return "Dashboard"
	}
}

type Dashboard struct {
	repo     store.Repository
	identity session.Identity
	logger   *zap.Logger
	now      func() time.Time

	view          View
	logs          []models.WorkLog
	reportLogs    []models.WorkLog
	pendingDelete string
}

// New starts on no view; call Navigate to load one. now must return the
// current time in the employee's timezone.
func New(repo store.Repository, identity session.Identity, logger *zap.Logger, now func() time.Time) *Dashboard {
	return &Dashboard{
		repo:     repo,
		identity: identity,
		logger:   logger.With(zap.String("employee_id", identity.ID)),
		now:      now,
	}
}

func (d *Dashboard) View() View {
	return d.view
}

func (d *Dashboard) Identity() session.Identity {
	return d.identity
}

// Logs is the list as last fetched, with local additions and removals.
func (d *Dashboard) Logs() []models.WorkLog {
	return d.logs
}

// Navigate switches view. Entering the list fetches the employee's logs;
// entering reports fetches the logs the report is computed from.
func (d *Dashboard) Navigate(ctx context.Context, v View) {
	d.view = v
	switch v {
	case ViewList:
		d.logs = d.fetch(ctx, "Error fetching work logs")
	case ViewReports:
		d.reportLogs = d.fetch(ctx, "Error fetching logs for reports")
	}
}

func (d *Dashboard) fetch(ctx context.Context, msg string) []models.WorkLog {
	logs, err := d.repo.ListWorkLogs(ctx, d.identity.ID)
	if err != nil {
		d.logger.Error(msg, zap.Error(err))
		return nil
	}
	return logs
}

// AddLog inserts a log for the signed-in employee. On success the created
// row is put at the head of the list if the list is showing, and the view
// switches to the list. On failure nothing changes.
func (d *Dashboard) AddLog(ctx context.Context, in models.NewWorkLog) (*models.WorkLog, error) {
	created, err := d.repo.InsertWorkLog(ctx, d.identity.ID, in)
	if err != nil {
		d.logger.Error("Error adding work log", zap.Error(err))
		return nil, fmt.Errorf("add work log: %w", err)
	}

	if d.view == ViewList {
		d.logs = append([]models.WorkLog{*created}, d.logs...)
	} else {
		d.Navigate(ctx, ViewList)
	}
	return created, nil
}

// RequestDelete stages id until ConfirmDelete or CancelDelete.
func (d *Dashboard) RequestDelete(id string) {
	d.pendingDelete = id
}

// PendingDelete returns the staged id, if any.
func (d *Dashboard) PendingDelete() (string, bool) {
	return d.pendingDelete, d.pendingDelete != ""
}

// CancelDelete drops the staged id without touching the store.
func (d *Dashboard) CancelDelete() {
	d.pendingDelete = ""
}

// ConfirmDelete deletes the staged log. The stage is cleared whether or not
// the delete succeeds; the list only changes on success.
func (d *Dashboard) ConfirmDelete(ctx context.Context) error {
	id, ok := d.PendingDelete()
	if !ok {
		return nil
	}
	d.pendingDelete = ""

	if err := d.repo.DeleteWorkLog(ctx, id); err != nil {
		d.logger.Error("Error deleting work log", zap.String("work_log_id", id), zap.Error(err))
		return fmt.Errorf("delete work log: %w", err)
	}

	kept := make([]models.WorkLog, 0, len(d.logs))
	for _, l := range d.logs {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	d.logs = kept
	return nil
}

// Report aggregates the logs fetched on entering the reports view.
func (d *Dashboard) Report() reports.Stats {
	return reports.Compute(d.reportLogs, d.identity.Salary, d.now())
}
