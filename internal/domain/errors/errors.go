// Package errors defines the error taxonomy the API maps onto HTTP responses.
package errors

import (
	"net/http"

	"farmlink/internal/errors"
)

// AppError is an error that knows how it is presented to API clients
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is the value type behind every predefined AppError
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches on the error code, so a copy made by WithDetails still satisfies errors.Is
// against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage annotates e for logs without changing what the client sees
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy of e carrying client visible details
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

//nolint:gochecknoglobals
var (
	ErrUnauthenticated = NewBaseError(http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid credentials", "")
	ErrForbidden       = NewBaseError(http.StatusForbidden, "FORBIDDEN", "access denied", "")

	ErrBadRequest      = NewBaseError(http.StatusBadRequest, "BAD_REQUEST", "bad request", "")
	ErrInvalidArgument = NewBaseError(http.StatusUnprocessableEntity, "INVALID_ARGUMENT", "invalid argument", "")
	ErrTokenTooShort   = NewBaseError(http.StatusUnprocessableEntity, "TOKEN_TOO_SHORT", "notification token is too short", "")

	ErrDeliveryNotFound  = NewBaseError(http.StatusNotFound, "DELIVERY_NOT_FOUND", "delivery not found", "")
	ErrInvalidTransition = NewBaseError(http.StatusUnprocessableEntity, "INVALID_TRANSITION", "milestone can only advance one step at a time", "")

	ErrUnavailable   = NewBaseError(http.StatusServiceUnavailable, "UNAVAILABLE", "dependency temporarily unavailable", "")
	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "")
)

// DatabaseExecuteError hides a storage failure behind a generic 500
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
