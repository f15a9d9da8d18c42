// Package calendar owns the civil-date primitive used by the cycle engine.
//
// Ownership boundary:
// - "YYYY-MM-DD" parsing and formatting
// - whole-day arithmetic between dates
package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrParse = errors.New("calendar: invalid date")

const layout = "2006-01-02"

// Date is a single civil calendar day. No timezone is attached; two dates
// compare and subtract purely by calendar position.
type Date struct {
	t time.Time
}

// New builds a date from its components, normalizing out-of-range values
// the way time.Date does.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse reads a "YYYY-MM-DD" date string.
func Parse(raw string) (Date, error) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrParse, raw)
	}
	return Date{t: t}, nil
}

// Today returns the current calendar day in local time.
func Today() Date {
	now := time.Now()
	return New(now.Year(), now.Month(), now.Day())
}

func (d Date) String() string {
	return d.t.Format(layout)
}

// AddDays returns the date n whole days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the signed count of whole days from d to other.
// Dates are pinned to UTC midnights, so the division is exact. Computed
// over Unix seconds rather than time.Time.Sub, whose Duration result
// saturates at roughly ±292 years.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / 86400)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) IsZero() bool { return d.t.IsZero() }
