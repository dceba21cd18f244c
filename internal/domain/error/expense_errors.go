package error

import "errors"

// Expense domain errors.
var (
	// ErrInvalidExpenseCategory is returned when the category is unknown.
	ErrInvalidExpenseCategory = errors.New("category must be: supplies, utilities, maintenance, fuel, electricity, or other")

	// ErrInvalidExpenseAmount is returned when the amount is negative or malformed.
	ErrInvalidExpenseAmount = errors.New("amount must be a non-negative number")

	// ErrExpenseDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrExpenseDescriptionTooLong = errors.New("description too long")

	// ErrInvalidExpenseDate is returned when the expense date cannot be parsed.
	ErrInvalidExpenseDate = errors.New("invalid expense date")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseCategory    ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount      ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseDescriptionTooLong ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseDate        ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseListPeriod  ExpenseErrorCode = "EXP-010005"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternalError ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
