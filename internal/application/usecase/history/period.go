// Package history holds listing helpers shared by the sales and expense history use cases.
package history

import (
	"time"
)

// Period narrows a history listing.
type Period string

const (
	PeriodAll   Period = ""
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// IsValid checks if the period is supported.
func (p Period) IsValid() bool {
	switch p {
	case PeriodAll, PeriodDay, PeriodMonth:
		return true
	}
	return false
}

// Bounds returns the instants covering the period that contains now, in loc.
// PeriodAll has no bounds.
func (p Period) Bounds(now time.Time, loc *time.Location) (from, to *time.Time) {
	local := now.In(loc)
	var start, end time.Time
	switch p {
	case PeriodDay:
		start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	case PeriodMonth:
		start = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	default:
		return nil, nil
	}
	return &start, &end
}

// NormalizePage applies pagination defaults and limits.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// TotalPages returns the number of pages needed for total items.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
