// Package report contains the reporting use cases: range filtering,
// period aggregation and the outputs built on top of them.
package report

import (
	"time"

	domainerror "github.com/barbershop/backend/internal/domain/error"
)

// Granularity is the bucketing resolution of a report.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// IsValid checks if the granularity is supported.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityMonth, GranularityYear:
		return true
	}
	return false
}

// ParseGranularity parses a query value. Empty means monthly.
func ParseGranularity(value string) (Granularity, error) {
	if value == "" {
		return GranularityMonth, nil
	}
	g := Granularity(value)
	if !g.IsValid() {
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidGranularity,
			domainerror.ErrInvalidGranularity.Error(),
			domainerror.ErrInvalidGranularity,
		)
	}
	return g, nil
}

// PeriodStart returns the first instant of the period containing t, in loc.
func PeriodStart(t time.Time, granularity Granularity, loc *time.Location) time.Time {
	local := t.In(loc)
	switch granularity {
	case GranularityYear:
		return time.Date(local.Year(), time.January, 1, 0, 0, 0, 0, loc)
	case GranularityMonth:
		return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	}
}

// NextPeriod returns the start of the period following start.
func NextPeriod(start time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityYear:
		return start.AddDate(1, 0, 0)
	case GranularityMonth:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

// PeriodKey returns the fixed-width bucket key for a period start.
// Formats: day "2025-01-05", month "2025-01", year "2025".
func PeriodKey(start time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityYear:
		return start.Format("2006")
	case GranularityMonth:
		return start.Format("2006-01")
	default:
		return start.Format("2006-01-02")
	}
}

// PeriodLabel returns a display label for a period start.
// Formats: day "Jan 5", month "Jan 2025", year "2025".
func PeriodLabel(start time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityYear:
		return start.Format("2006")
	case GranularityMonth:
		return start.Format("Jan 2006")
	default:
		return start.Format("Jan 2")
	}
}

// PeriodInfo describes one period of a continuous series.
type PeriodInfo struct {
	Key         string
	Label       string
	PeriodStart time.Time
}

// GeneratePeriodSeries lists every period touching [from, to] so charts have no gaps.
func GeneratePeriodSeries(from, to time.Time, granularity Granularity, loc *time.Location) []PeriodInfo {
	var periods []PeriodInfo
	for current := PeriodStart(from, granularity, loc); !current.After(to); current = NextPeriod(current, granularity) {
		periods = append(periods, PeriodInfo{
			Key:         PeriodKey(current, granularity),
			Label:       PeriodLabel(current, granularity),
			PeriodStart: current,
		})
	}
	return periods
}

// FillSeries merges summaries into a continuous series over [from, to].
// Periods without data get zero-valued summaries.
func FillSeries(summaries []PeriodSummary, from, to time.Time, granularity Granularity, loc *time.Location) []PeriodSummary {
	byKey := make(map[string]PeriodSummary, len(summaries))
	for _, s := range summaries {
		byKey[s.Period] = s
	}

	series := GeneratePeriodSeries(from, to, granularity, loc)
	filled := make([]PeriodSummary, 0, len(series))
	for _, p := range series {
		if s, ok := byKey[p.Key]; ok {
			filled = append(filled, s)
			continue
		}
		filled = append(filled, emptySummary(p))
	}
	return filled
}
