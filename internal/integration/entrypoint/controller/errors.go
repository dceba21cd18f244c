package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

// respondError maps domain errors to HTTP responses.
// Codes in the 01 category are client errors, except for email delivery
// codes which never stem from the request. Anything else is a server error.
func respondError(ctx *gin.Context, err error) {
	var (
		reportErr   *domainerror.ReportError
		serviceErr  *domainerror.ServiceError
		expenseErr  *domainerror.ExpenseError
		customerErr *domainerror.CustomerError
		emailErr    *domainerror.EmailError
	)

	var code, message string
	switch {
	case errors.As(err, &reportErr):
		code, message = string(reportErr.Code), reportErr.Message
	case errors.As(err, &serviceErr):
		code, message = string(serviceErr.Code), serviceErr.Message
	case errors.As(err, &expenseErr):
		code, message = string(expenseErr.Code), expenseErr.Message
	case errors.As(err, &customerErr):
		code, message = string(customerErr.Code), customerErr.Message
	case errors.As(err, &emailErr):
		code, message = string(emailErr.Code), emailErr.Message
	}

	status := statusForCode(code)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"code", code,
			"error", err,
		)
		if code == "" {
			code = string(domainerror.ErrCodeInternalFailure)
		}
		message = "An internal error occurred"
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func statusForCode(code string) int {
	switch code {
	case string(domainerror.ErrCodeCustomerPhoneExists):
		return http.StatusConflict
	case string(domainerror.ErrCodeCustomerNotFound):
		return http.StatusNotFound
	}
	if strings.HasPrefix(code, "EMAIL-") {
		return http.StatusInternalServerError
	}
	if _, rest, ok := strings.Cut(code, "-"); ok && strings.HasPrefix(rest, "01") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondBindError reports a malformed request body.
func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeInvalidRequest),
		Details: err.Error(),
	})
}

// parseRecordDate parses an optional YYYY-MM-DD or RFC 3339 value.
// Date-only values are the start of that day in loc.
func parseRecordDate(value string, loc *time.Location) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, true
	}
	return nil, false
}
