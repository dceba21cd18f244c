package error

import "errors"

// Customer domain errors.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerPhoneExists is returned when a phone number is already registered.
	ErrCustomerPhoneExists = errors.New("customer with this phone already exists")
)

// CustomerErrorCode defines error codes for customer errors.
// Format: CUS-XXYYYY where XX is category and YYYY is specific error.
type CustomerErrorCode string

const (
	ErrCodeCustomerNotFound    CustomerErrorCode = "CUS-010001"
	ErrCodeCustomerPhoneExists CustomerErrorCode = "CUS-010002"

	ErrCodeCustomerInternalError CustomerErrorCode = "CUS-990001"
)

// CustomerError represents a customer error with code and message.
type CustomerError struct {
	Code    CustomerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CustomerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CustomerError) Unwrap() error {
	return e.Err
}

// NewCustomerError creates a new CustomerError with the given code and message.
func NewCustomerError(code CustomerErrorCode, message string, err error) *CustomerError {
	return &CustomerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
