// Package valueobject contains domain value objects for the barbershop backend.
package valueobject

import (
	"fmt"
	"time"
)

// RangeKind identifies the shape of a DateRangeSelector.
type RangeKind string

const (
	RangeAll    RangeKind = "all"
	RangeMonth  RangeKind = "month"
	RangeYear   RangeKind = "year"
	RangeCustom RangeKind = "custom"
)

// IsValid checks if the kind is a known range kind.
func (k RangeKind) IsValid() bool {
	switch k {
	case RangeAll, RangeMonth, RangeYear, RangeCustom:
		return true
	}
	return false
}

// DateRangeSelector chooses which transactions a report covers.
// Month and Year are calendar periods interpreted in the report location;
// Custom bounds are absolute instants used as given.
type DateRangeSelector struct {
	Kind  RangeKind
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time
}

// AllTime selects every transaction.
func AllTime() DateRangeSelector {
	return DateRangeSelector{Kind: RangeAll}
}

// ForMonth selects one calendar month.
func ForMonth(year int, month time.Month) DateRangeSelector {
	return DateRangeSelector{Kind: RangeMonth, Year: year, Month: month}
}

// ForYear selects one calendar year.
func ForYear(year int) DateRangeSelector {
	return DateRangeSelector{Kind: RangeYear, Year: year}
}

// Custom selects the closed interval [start, end].
func Custom(start, end time.Time) DateRangeSelector {
	return DateRangeSelector{Kind: RangeCustom, Start: start, End: end}
}

// Interval is a closed time interval.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether start <= t <= end.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// IsEmpty reports whether the interval admits no instant.
func (i Interval) IsEmpty() bool {
	return i.Start.After(i.End)
}

// Resolve turns the selector into a closed interval in loc.
// The boolean is false for RangeAll, which applies no bounds.
func (s DateRangeSelector) Resolve(loc *time.Location) (Interval, bool) {
	if loc == nil {
		loc = time.UTC
	}

	switch s.Kind {
	case RangeMonth:
		start := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, loc)
		return Interval{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}, true
	case RangeYear:
		start := time.Date(s.Year, time.January, 1, 0, 0, 0, 0, loc)
		return Interval{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}, true
	case RangeCustom:
		return Interval{Start: s.Start, End: s.End}, true
	default:
		return Interval{}, false
	}
}

// Key returns a stable identifier suitable for cache keys.
func (s DateRangeSelector) Key() string {
	switch s.Kind {
	case RangeMonth:
		return fmt.Sprintf("month:%04d-%02d", s.Year, int(s.Month))
	case RangeYear:
		return fmt.Sprintf("year:%04d", s.Year)
	case RangeCustom:
		return fmt.Sprintf("custom:%d:%d", s.Start.UnixNano(), s.End.UnixNano())
	default:
		return string(RangeAll)
	}
}

// Label returns a human-readable description of the selected range.
func (s DateRangeSelector) Label(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	switch s.Kind {
	case RangeMonth:
		return fmt.Sprintf("%s %d", s.Month, s.Year)
	case RangeYear:
		return fmt.Sprintf("%d", s.Year)
	case RangeCustom:
		return fmt.Sprintf("%s to %s", s.Start.In(loc).Format("2006-01-02"), s.End.In(loc).Format("2006-01-02"))
	default:
		return "All time"
	}
}
