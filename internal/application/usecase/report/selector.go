package report

import (
	"strconv"
	"time"

	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/domain/valueobject"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// SelectorInput holds raw range parameters as received from a client.
type SelectorInput struct {
	Range     string
	Month     string
	Year      string
	StartDate string
	EndDate   string
}

// ParseSelector builds a DateRangeSelector from raw parameters.
// Range defaults to month; month and year default to the period containing now in loc.
// Custom ranges need both dates. A YYYY-MM-DD end date covers that whole day;
// RFC 3339 values are used as given.
func ParseSelector(input SelectorInput, now time.Time, loc *time.Location) (valueobject.DateRangeSelector, error) {
	kind := valueobject.RangeKind(input.Range)
	if input.Range == "" {
		kind = valueobject.RangeMonth
	}
	if !kind.IsValid() {
		return valueobject.DateRangeSelector{}, newReportValidationError(domainerror.ErrCodeInvalidRange, domainerror.ErrInvalidRange)
	}

	localNow := now.In(loc)

	switch kind {
	case valueobject.RangeAll:
		return valueobject.AllTime(), nil

	case valueobject.RangeMonth:
		if input.Month == "" {
			return valueobject.ForMonth(localNow.Year(), localNow.Month()), nil
		}
		year, month, err := ParseMonth(input.Month)
		if err != nil {
			return valueobject.DateRangeSelector{}, err
		}
		return valueobject.ForMonth(year, month), nil

	case valueobject.RangeYear:
		if input.Year == "" {
			return valueobject.ForYear(localNow.Year()), nil
		}
		year, err := strconv.Atoi(input.Year)
		if err != nil || len(input.Year) != 4 || year < 1 {
			return valueobject.DateRangeSelector{}, newReportValidationError(domainerror.ErrCodeInvalidYear, domainerror.ErrInvalidYear)
		}
		return valueobject.ForYear(year), nil
	}

	if input.StartDate == "" || input.EndDate == "" {
		return valueobject.DateRangeSelector{}, newReportValidationError(domainerror.ErrCodeMissingCustomDates, domainerror.ErrMissingCustomDates)
	}
	start, err := parseBound(input.StartDate, loc, false)
	if err != nil {
		return valueobject.DateRangeSelector{}, err
	}
	end, err := parseBound(input.EndDate, loc, true)
	if err != nil {
		return valueobject.DateRangeSelector{}, err
	}
	if start.After(end) {
		return valueobject.DateRangeSelector{}, newReportValidationError(domainerror.ErrCodeInvalidDateRange, domainerror.ErrInvalidDateRange)
	}
	return valueobject.Custom(start, end), nil
}

// ParseMonth parses a YYYY-MM month key.
func ParseMonth(value string) (int, time.Month, error) {
	t, err := time.Parse(monthLayout, value)
	if err != nil {
		return 0, 0, newReportValidationError(domainerror.ErrCodeInvalidMonth, domainerror.ErrInvalidMonth)
	}
	return t.Year(), t.Month(), nil
}

func parseBound(value string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		if endOfDay {
			return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, newReportValidationError(domainerror.ErrCodeInvalidDateFormat, domainerror.ErrInvalidDateFormat)
}

func newReportValidationError(code domainerror.ReportErrorCode, err error) *domainerror.ReportError {
	return domainerror.NewReportError(code, err.Error(), err)
}
