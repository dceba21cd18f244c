package error

import "errors"

// Service record domain errors.
var (
	// ErrMissingServiceFields is returned when a required service field is empty.
	ErrMissingServiceFields = errors.New("customer name, phone, service type and barber are required")

	// ErrInvalidServiceAmount is returned when the amount paid is negative or malformed.
	ErrInvalidServiceAmount = errors.New("amount paid must be a non-negative number")

	// ErrInvalidPaymentMethod is returned when the payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("payment method must be: cash, card, or transfer")

	// ErrServiceFieldTooLong is returned when a text field exceeds its maximum length.
	ErrServiceFieldTooLong = errors.New("field too long")

	// ErrInvalidServiceDate is returned when the service date cannot be parsed.
	ErrInvalidServiceDate = errors.New("invalid service date")
)

// ServiceErrorCode defines error codes for service record errors.
// Format: SVC-XXYYYY where XX is category and YYYY is specific error.
type ServiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingServiceFields ServiceErrorCode = "SVC-010001"
	ErrCodeInvalidServiceAmount ServiceErrorCode = "SVC-010002"
	ErrCodeInvalidPaymentMethod ServiceErrorCode = "SVC-010003"
	ErrCodeServiceFieldTooLong  ServiceErrorCode = "SVC-010004"
	ErrCodeInvalidServiceDate   ServiceErrorCode = "SVC-010005"
	ErrCodeInvalidListPeriod    ServiceErrorCode = "SVC-010006"

	// Internal errors (99XXXX)
	ErrCodeServiceInternalError ServiceErrorCode = "SVC-990001"
)

// ServiceError represents a service record error with code and message.
type ServiceError struct {
	Code    ServiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError with the given code and message.
func NewServiceError(code ServiceErrorCode, message string, err error) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
