package report

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/domain/valueobject"
)

func TestParseSelector(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

	t.Run("defaults to the current month", func(t *testing.T) {
		got, err := ParseSelector(SelectorInput{}, now, time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Kind != valueobject.RangeMonth || got.Year != 2025 || got.Month != time.March {
			t.Errorf("unexpected selector %+v", got)
		}
	})

	t.Run("current month follows the location", func(t *testing.T) {
		lagos, err := time.LoadLocation("Africa/Lagos")
		if err != nil {
			t.Fatalf("failed to load location: %v", err)
		}
		lateUTC := time.Date(2025, time.March, 31, 23, 30, 0, 0, time.UTC)
		got, _ := ParseSelector(SelectorInput{Range: "month"}, lateUTC, lagos)
		if got.Month != time.April {
			t.Errorf("expected April in Lagos, got %s", got.Month)
		}
	})

	t.Run("explicit month", func(t *testing.T) {
		got, err := ParseSelector(SelectorInput{Range: "month", Month: "2024-11"}, now, time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Year != 2024 || got.Month != time.November {
			t.Errorf("unexpected selector %+v", got)
		}
	})

	t.Run("year defaults and parses", func(t *testing.T) {
		got, _ := ParseSelector(SelectorInput{Range: "year"}, now, time.UTC)
		if got.Kind != valueobject.RangeYear || got.Year != 2025 {
			t.Errorf("unexpected selector %+v", got)
		}
		got, _ = ParseSelector(SelectorInput{Range: "year", Year: "2023"}, now, time.UTC)
		if got.Year != 2023 {
			t.Errorf("expected 2023, got %d", got.Year)
		}
	})

	t.Run("all", func(t *testing.T) {
		got, _ := ParseSelector(SelectorInput{Range: "all"}, now, time.UTC)
		if got.Kind != valueobject.RangeAll {
			t.Errorf("expected all, got %s", got.Kind)
		}
	})

	t.Run("custom date end covers the whole day", func(t *testing.T) {
		got, err := ParseSelector(SelectorInput{Range: "custom", StartDate: "2025-01-01", EndDate: "2025-01-31"}, now, time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantEnd := time.Date(2025, time.January, 31, 23, 59, 59, 999999999, time.UTC)
		if !got.End.Equal(wantEnd) {
			t.Errorf("expected end %s, got %s", wantEnd, got.End)
		}
		if !got.Start.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %s", got.Start)
		}
	})

	t.Run("custom RFC 3339 is used as given", func(t *testing.T) {
		got, err := ParseSelector(SelectorInput{Range: "custom", StartDate: "2025-01-01T08:00:00Z", EndDate: "2025-01-01T18:00:00Z"}, now, time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.End.Equal(time.Date(2025, time.January, 1, 18, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end %s", got.End)
		}
	})

	errorCases := []struct {
		name  string
		input SelectorInput
		code  domainerror.ReportErrorCode
	}{
		{"unknown range", SelectorInput{Range: "week"}, domainerror.ErrCodeInvalidRange},
		{"bad month", SelectorInput{Range: "month", Month: "2025-13"}, domainerror.ErrCodeInvalidMonth},
		{"bad year", SelectorInput{Range: "year", Year: "25"}, domainerror.ErrCodeInvalidYear},
		{"missing end", SelectorInput{Range: "custom", StartDate: "2025-01-01"}, domainerror.ErrCodeMissingCustomDates},
		{"bad date", SelectorInput{Range: "custom", StartDate: "01/02/2025", EndDate: "2025-01-31"}, domainerror.ErrCodeInvalidDateFormat},
		{"start after end", SelectorInput{Range: "custom", StartDate: "2025-02-01", EndDate: "2025-01-31"}, domainerror.ErrCodeInvalidDateRange},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSelector(tc.input, now, time.UTC)
			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) {
				t.Fatalf("expected ReportError, got %v", err)
			}
			if reportErr.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, reportErr.Code)
			}
		})
	}
}

func TestParseGranularity(t *testing.T) {
	if g, err := ParseGranularity(""); err != nil || g != GranularityMonth {
		t.Errorf("expected month default, got %s, %v", g, err)
	}
	if g, err := ParseGranularity("day"); err != nil || g != GranularityDay {
		t.Errorf("expected day, got %s, %v", g, err)
	}
	if _, err := ParseGranularity("weekly"); !errors.Is(err, domainerror.ErrInvalidGranularity) {
		t.Errorf("expected ErrInvalidGranularity, got %v", err)
	}
}
