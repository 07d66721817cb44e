// Package export writes an employee's logs for one month as CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"worklog/dates"
	"worklog/models"

	"github.com/xuri/excelize/v2"
)

const sheet = "Work Logs"

var header = []string{"Date", "Hours", "Status", "Description"}

// Month keeps the logs dated inside the given month, oldest first.
func Month(logs []models.WorkLog, year int, month time.Month, loc *time.Location) []models.WorkLog {
	window := dates.MonthOf(year, month, loc)

	var out []models.WorkLog
	for _, l := range logs {
		if window.ContainsDate(l.Date) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Filename is e.g. worklog_2024_01.csv.
func Filename(year int, month time.Month, ext string) string {
	return fmt.Sprintf("worklog_%d_%02d.%s", year, int(month), ext)
}

func row(l models.WorkLog) []string {
	return []string{
		l.Date.String(),
		strconv.FormatFloat(l.HoursLogged, 'f', 2, 64),
		l.Status.Label(),
		l.TaskDescription,
	}
}

func WriteCSV(w io.Writer, logs []models.WorkLog) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, l := range logs {
		if err := writer.Write(row(l)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// sheetWriter keeps the first excelize error and skips writes after it.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (s *sheetWriter) set(col, row int, value interface{}) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = fmt.Errorf("error naming cell: %w", err)
		return
	}
	if hours, ok := value.(float64); ok {
		err = s.f.SetCellFloat(sheet, cell, hours, 2, 64)
	} else {
		err = s.f.SetCellValue(sheet, cell, value)
	}
	if err != nil {
		s.err = fmt.Errorf("error writing cell %s: %w", cell, err)
	}
}

func WriteXLSX(w io.Writer, logs []models.WorkLog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	sw := &sheetWriter{f: f}
	for i, h := range header {
		sw.set(i+1, 1, h)
	}

	var total float64
	for i, l := range logs {
		r := i + 2
		sw.set(1, r, l.Date.String())
		sw.set(2, r, l.HoursLogged)
		sw.set(3, r, l.Status.Label())
		sw.set(4, r, l.TaskDescription)
		total += l.HoursLogged
	}

	totalRow := len(logs) + 2
	sw.set(1, totalRow, "Total")
	sw.set(2, totalRow, total)
	if sw.err != nil {
		return sw.err
	}

	if err := f.SetColWidth(sheet, "D", "D", 60); err != nil {
		return fmt.Errorf("error sizing columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}
