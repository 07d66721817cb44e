package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"worklog/dates"
	"worklog/reports"

	"go.uber.org/zap"
)

// FuncMap is the set of helpers the page templates use. currency is the
// symbol salary estimates are shown with.
func FuncMap(currency string) template.FuncMap {
	return template.FuncMap{
		"longDate": func(d dates.Date) string {
			return d.Format("Jan 2, 2006")
		},
		"rawHours": func(h float64) string {
			return strconv.FormatFloat(h, 'f', -1, 64)
		},
		"hours": reports.FormatHours,
		"money": func(e reports.Estimate) string {
			return e.Text(currency)
		},
	}
}

func render(w http.ResponseWriter, logger *zap.Logger, t *template.Template, data map[string]interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		logger.Error("Error rendering template", zap.Error(err))
	}
}
