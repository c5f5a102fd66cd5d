package util

import (
	"errors"
	"time"
)

const Layout = "2006-01-02"

// NYSE full-day closures. Listed options expire on business days, so this
// is enough to map expiration dates to trading maturities.
var NYSE = []string{"2024-01-01", "2024-01-15", "2024-02-19", "2024-03-29", "2024-05-27", "2024-06-19", "2024-07-04", "2024-09-02", "2024-11-28", "2024-12-25", "2025-01-01", "2025-01-20", "2025-02-17", "2025-04-18", "2025-05-26", "2025-06-19", "2025-07-04", "2025-09-01", "2025-11-27", "2025-12-25", "2026-01-01", "2026-01-19", "2026-02-16", "2026-04-03", "2026-05-25", "2026-06-19", "2026-07-03", "2026-09-07", "2026-11-26", "2026-12-25"}

// Convert holidays from string to time.Time format
func Hols(s []string) ([]time.Time, error) {
	h := make([]time.Time, len(s))
	var err error
	var d time.Time
	for i, v := range s {
		d, err = time.Parse(Layout, v)
		if err != nil {
			return nil, err
		}
		h[i] = d
	}
	return h, err
}

func IsHol(d time.Time, hols []time.Time) bool {
	if hols == nil {
		return false
	}
	for _, v := range hols {
		if d.Equal(v) {
			return true
		}
	}
	return false
}

func IsWeekday(d time.Time) bool {
	if d.Weekday() > 0 && d.Weekday() < 6 {
		return true
	}
	return false
}

func AdjustFollowing(d time.Time, hols []time.Time) time.Time {
	for {
		if IsHol(d, hols) || !IsWeekday(d) {
			d = d.AddDate(0, 0, 1)
		} else {
			return d
		}
	}
}

// Return a list of business days from (and including) a start date to (and including) an end date according to a holiday calendar
func ListBusinessDates(start time.Time, end time.Time, hols []time.Time) ([]time.Time, error) {
	if end.Before(start) {
		err := errors.New("end date must be later than start date")
		return nil, err
	}
	var out = []time.Time{start}
	for {
		start = AdjustFollowing(start.AddDate(0, 0, 1), hols)
		if start.After(end) {
			return out, nil
		}
		out = append(out, start)
	}
}

// YearFraction is the ACT/365 day-count fraction between two dates.
func YearFraction(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24.0 / 365.0
}

// TradingYearFraction counts business days between two dates on the NYSE
// calendar and scales by 252, the convention used for short-dated expiries.
func TradingYearFraction(start, end time.Time) (float64, error) {
	hols, err := Hols(NYSE)
	if err != nil {
		return 0, err
	}
	days, err := ListBusinessDates(start, end, hols)
	if err != nil {
		return 0, err
	}
	return float64(len(days)-1) / 252.0, nil
}
