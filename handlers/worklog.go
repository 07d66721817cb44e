package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"worklog/config"
	"worklog/dashboard"
	"worklog/dates"
	"worklog/drafting"
	"worklog/export"
	"worklog/middleware"
	"worklog/models"
	"worklog/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	addFailedMessage    = "Failed to add work log. Please try again."
	deleteFailedMessage = "Failed to delete work log. Please try again."
)

type WorkLogHandler struct {
	config    *config.Config
	repo      store.Repository
	drafter   drafting.Drafter
	templates map[string]*template.Template
	logger    *zap.Logger
}

func NewWorkLogHandler(cfg *config.Config, repo store.Repository, drafter drafting.Drafter, templates map[string]*template.Template, logger *zap.Logger) *WorkLogHandler {
	return &WorkLogHandler{
		config:    cfg,
		repo:      repo,
		drafter:   drafter,
		templates: templates,
		logger:    logger,
	}
}

// dashboardFor returns nil when the request carries no identity; routes are
// mounted behind middleware.RequireSession so that only happens in tests.
func (h *WorkLogHandler) dashboardFor(r *http.Request) *dashboard.Dashboard {
	identity := middleware.GetIdentityFromContext(r.Context())
	if identity == nil {
		return nil
	}
	return dashboard.New(h.repo, *identity, h.logger, h.config.Now)
}

func (h *WorkLogHandler) pageData(r *http.Request, d *dashboard.Dashboard) map[string]interface{} {
	identity := d.Identity()
	return map[string]interface{}{
		"Identity": &identity,
		"View":     d.View(),
		"Title":    d.View().Title(),
		"Error":    r.URL.Query().Get("error"),
		"Success":  r.URL.Query().Get("success"),
	}
}

func (h *WorkLogHandler) renderList(w http.ResponseWriter, r *http.Request, d *dashboard.Dashboard, errMsg string) {
	data := h.pageData(r, d)
	data["Logs"] = d.Logs()
	if id, ok := d.PendingDelete(); ok {
		data["PendingDelete"] = id
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	render(w, h.logger, h.templates["dashboard"], data)
}

func (h *WorkLogHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d := h.dashboardFor(r)
	if d == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	d.Navigate(r.Context(), dashboard.ViewList)
	h.renderList(w, r, d, "")
}

func (h *WorkLogHandler) NewLogPage(w http.ResponseWriter, r *http.Request) {
	d := h.dashboardFor(r)
	if d == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	d.Navigate(r.Context(), dashboard.ViewForm)
	h.renderForm(w, r, d, dates.Of(h.config.Now()).String(), "", "", "")
}

func (h *WorkLogHandler) renderForm(w http.ResponseWriter, r *http.Request, d *dashboard.Dashboard, date, hours, description, errMsg string) {
	data := h.pageData(r, d)
	data["Date"] = date
	data["Hours"] = hours
	data["Description"] = description
	if errMsg != "" {
		data["Error"] = errMsg
	}
	render(w, h.logger, h.templates["log-form"], data)
}

// CreateLog handles both buttons of the entry form: "suggest" replaces the
// description with a drafted one and shows the form again, "save" inserts.
func (h *WorkLogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	d := h.dashboardFor(r)
	if d == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/logs/new?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	date := r.FormValue("date")
	hours := r.FormValue("hours")
	description := r.FormValue("description")

	d.Navigate(r.Context(), dashboard.ViewForm)

	if r.FormValue("action") == "suggest" {
		description = h.drafter.Draft(r.Context(), description)
		h.renderForm(w, r, d, date, hours, description, "")
		return
	}

	in, err := models.ParseNewWorkLog(date, hours, description)
	if err != nil {
		h.renderForm(w, r, d, date, hours, description, validationMessage(err))
		return
	}

	if _, err := d.AddLog(r.Context(), in); err != nil {
		h.renderForm(w, r, d, date, hours, description, addFailedMessage)
		return
	}

	http.Redirect(w, r, "/?success=Work+log+added.", http.StatusSeeOther)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidDate):
		return "Please pick a valid date."
	case errors.Is(err, models.ErrInvalidHours):
		return "Hours must be a number of zero or more."
	case errors.Is(err, models.ErrEmptyDescription):
		return "Please enter a description."
	default:
		return addFailedMessage
	}
}

// DeleteConfirmPage shows the list with the confirmation dialog open for
// the log in the URL. Nothing is deleted until the dialog is submitted.
func (h *WorkLogHandler) DeleteConfirmPage(w http.ResponseWriter, r *http.Request) {
	d := h.dashboardFor(r)
	if d == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	d.Navigate(r.Context(), dashboard.ViewList)
	d.RequestDelete(chi.URLParam(r, "id"))
	h.renderList(w, r, d, "")
}

func (h *WorkLogHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	d := h.dashboardFor(r)
	if d == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	if r.FormValue("action") != "confirm" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	d.Navigate(r.Context(), dashboard.ViewList)
	d.RequestDelete(chi.URLParam(r, "id"))
	if err := d.ConfirmDelete(r.Context()); err != nil {
		h.renderList(w, r, d, deleteFailedMessage)
		return
	}

	http.Redirect(w, r, "/?success=Work+log+deleted.", http.StatusSeeOther)
}

func (h *WorkLogHandler) Reports(w http.ResponseWriter, r *http.Request) {
	d := h.dashboardFor(r)
	if d == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	d.Navigate(r.Context(), dashboard.ViewReports)
	data := h.pageData(r, d)
	data["Stats"] = d.Report()
	render(w, h.logger, h.templates["reports"], data)
}

var (
	errInvalidMonth = errors.New("invalid month")
	errInvalidYear  = errors.New("invalid year")
)

// exportMonth reads the month and year query parameters, falling back to
// the current month for either one that is missing.
func (h *WorkLogHandler) exportMonth(r *http.Request) (int, time.Month, error) {
	now := h.config.Now()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, errInvalidMonth
		}
		month = time.Month(m)
	}
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 2000 || y > 2100 {
			return 0, 0, errInvalidYear
		}
		year = y
	}
	return year, month, nil
}

func (h *WorkLogHandler) exportLogs(w http.ResponseWriter, r *http.Request) ([]models.WorkLog, int, time.Month, bool) {
	identity := middleware.GetIdentityFromContext(r.Context())
	if identity == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil, 0, 0, false
	}

	year, month, err := h.exportMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, 0, 0, false
	}

	logs, err := h.repo.ListWorkLogs(r.Context(), identity.ID)
	if err != nil {
		h.logger.Error("Error fetching logs for export", zap.String("employee_id", identity.ID), zap.Error(err))
		http.Error(w, "Failed to export work logs", http.StatusInternalServerError)
		return nil, 0, 0, false
	}

	return export.Month(logs, year, month, h.config.Location), year, month, true
}

func attachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
}

func (h *WorkLogHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	logs, year, month, ok := h.exportLogs(w, r)
	if !ok {
		return
	}

	attachment(w, "text/csv", export.Filename(year, month, "csv"))
	if err := export.WriteCSV(w, logs); err != nil {
		h.logger.Error("Error writing CSV export", zap.Error(err))
	}
}

func (h *WorkLogHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	logs, year, month, ok := h.exportLogs(w, r)
	if !ok {
		return
	}

	attachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", export.Filename(year, month, "xlsx"))
	if err := export.WriteXLSX(w, logs); err != nil {
		h.logger.Error("Error writing XLSX export", zap.Error(err))
	}
}
