// Package error defines domain-specific errors for the barbershop backend.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidRange is returned when the range kind is not all, month, year or custom.
	ErrInvalidRange = errors.New("range must be: all, month, year, or custom")

	// ErrInvalidMonth is returned when a month selector is not YYYY-MM.
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidGranularity is returned when granularity is not valid.
	ErrInvalidGranularity = errors.New("granularity must be: day, month, or year")

	// ErrMissingCustomDates is returned when a custom range lacks a bound.
	ErrMissingCustomDates = errors.New("start_date and end_date are required for a custom range")

	// ErrInvalidDateFormat is returned when a date is neither YYYY-MM-DD nor RFC 3339.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD or RFC 3339")

	// ErrInvalidYear is returned when a year selector is not a four digit year.
	ErrInvalidYear = errors.New("invalid year, expected YYYY")

	// ErrInvalidRecipient is returned when a digest recipient address is malformed.
	ErrInvalidRecipient = errors.New("invalid recipient email")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRange       ReportErrorCode = "RPT-010001"
	ErrCodeInvalidMonth       ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateRange   ReportErrorCode = "RPT-010003"
	ErrCodeInvalidGranularity ReportErrorCode = "RPT-010004"
	ErrCodeMissingCustomDates ReportErrorCode = "RPT-010005"
	ErrCodeInvalidDateFormat  ReportErrorCode = "RPT-010006"
	ErrCodeInvalidYear        ReportErrorCode = "RPT-010007"
	ErrCodeInvalidRecipient   ReportErrorCode = "RPT-010008"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
