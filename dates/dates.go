// Package dates holds the calendar arithmetic behind the reports: a
// zone-less calendar Date and the week and month windows it is compared
// against.
//
// Work log dates are calendar days with no time component. To compare them
// against a window they are anchored at local midnight in the window's
// location, never at UTC midnight, so a day is never attributed to its
// neighbour by a zone offset.
package dates

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout is the wire and storage format of a Date.
const Layout = "2006-01-02"

// lastMilli is the final millisecond of a day, the inclusive end of a window.
const lastMilli = 999 * int(time.Millisecond)

var ErrInvalid = errors.New("invalid date")

// Date is a calendar day formatted as YYYY-MM-DD.
type Date string

// Parse validates s and returns it as a Date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return Date(t.Format(Layout)), nil
}

// Of returns the calendar day of t in t's own location.
func Of(t time.Time) Date {
	return Date(t.Format(Layout))
}

func (d Date) String() string {
	return string(d)
}

// Midnight returns 00:00:00.000 of d in loc.
func (d Date) Midnight(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, string(d))
	}
	return t, nil
}

// Format renders d with the given time layout, or returns d unchanged if it
// does not parse.
func (d Date) Format(layout string) string {
	t, err := time.Parse(Layout, string(d))
	if err != nil {
		return string(d)
	}
	return t.Format(layout)
}

// Scan accepts what the postgres and sqlite drivers hand back for a DATE
// column: a time.Time at midnight, or the textual form.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = Of(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalid, src)
	}
}

func (d *Date) scanText(s string) error {
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

// Range is an inclusive window of instants.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether Start <= t <= End.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ContainsDate anchors d at midnight in the window's location and checks
// inclusion. Unparsable dates are never contained.
func (r Range) ContainsDate(d Date) bool {
	t, err := d.Midnight(r.Start.Location())
	if err != nil {
		return false
	}
	return r.Contains(t)
}

// Week returns the Monday-based week containing t: Monday 00:00:00.000
// through Sunday 23:59:59.999 in t's location. A Sunday belongs to the week
// that started six days earlier.
func Week(t time.Time) Range {
	y, m, d := t.Date()
	loc := t.Location()

	sinceMonday := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		sinceMonday = 6
	}

	start := time.Date(y, m, d-sinceMonday, 0, 0, 0, 0, loc)
	sy, sm, sd := start.Date()
	end := time.Date(sy, sm, sd+6, 23, 59, 59, lastMilli, loc)
	return Range{Start: start, End: end}
}

// Month returns the first day 00:00:00.000 through the last day
// 23:59:59.999 of t's month in t's location.
func Month(t time.Time) Range {
	y, m, _ := t.Date()
	loc := t.Location()
	return Range{
		Start: time.Date(y, m, 1, 0, 0, 0, 0, loc),
		End:   time.Date(y, m+1, 0, 23, 59, 59, lastMilli, loc),
	}
}

// MonthOf returns the window of the given month and year in loc.
func MonthOf(year int, month time.Month, loc *time.Location) Range {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, loc))
}
