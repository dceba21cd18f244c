package error

import "errors"

// ErrInvalidListPeriod is returned when a history listing period is not day or month.
var ErrInvalidListPeriod = errors.New("period must be: day or month")

// CommonErrorCode defines error codes shared by every endpoint.
type CommonErrorCode string

const (
	ErrCodeInvalidRequest  CommonErrorCode = "API-010001"
	ErrCodeRateLimited     CommonErrorCode = "API-020001"
	ErrCodeInternalFailure CommonErrorCode = "API-990001"
)
