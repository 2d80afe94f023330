// Package errors defines the application error taxonomy. Errors carry an
// HTTP status and a stable business code so the delivery layer can map any
// failure to a consistent response without inspecting error strings.
package errors

import (
	"net/http"

	"ecobin/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Disposal pipeline errors. Validation and lookup failures are cheap,
	// short-circuit immediately and never mutate state.
	ErrInvalidRequest = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST",
		"Missing or malformed request parameters",
		"",
	)

	ErrUnknownUser = NewBaseError(
		http.StatusForbidden,
		"UNKNOWN_USER",
		"Unknown user. Please register your RFID.",
		"",
	)

	ErrInvalidBin = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BIN",
		"Unknown bin identifier",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Image payload could not be decoded",
		"",
	)

	ErrDetectionFailed = NewBaseError(
		http.StatusInternalServerError,
		"DETECTION_FAILED",
		"Object detection failed",
		"",
	)

	// ErrPersistenceFailed is the only fatal disposal outcome: the atomic
	// write was rolled back and the caller should retry the whole request.
	ErrPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"Failed to record the disposal event",
		"",
	)

	// Account errors.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Username already exists",
		"",
	)

	ErrRFIDTaken = NewBaseError(
		http.StatusBadRequest,
		"RFID_TAKEN",
		"RFID tag already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Bin administration errors.
	ErrBinNotFound = NewBaseError(
		http.StatusNotFound,
		"BIN_NOT_FOUND",
		"Bin not found",
		"",
	)

	// Validation-related errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
