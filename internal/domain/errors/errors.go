package errors

import (
	"net/http"

	"hyperlocal/internal/errors"
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

// Predefined error types
var (
	ErrRecipientNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPIENT_NOT_FOUND",
		"Recipient not found",
		"",
	)

	ErrEmptyAudienceScope = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_AUDIENCE_SCOPE",
		"At least one locality or a town is required",
		"",
	)

	ErrNotificationCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_CREATION_FAILED",
		"Failed to record notification",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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

// DependencyError reports that an infrastructure dependency (directory, store,
// channel transport) could not be reached.
type DependencyError struct {
	Dependency string
	err        error
}

// NewDependencyError wraps err as a failure of the named dependency.
func NewDependencyError(dependency string, err error) *DependencyError {
	return &DependencyError{Dependency: dependency, err: err}
}

// Error implements the error interface
func (e *DependencyError) Error() string {
	return "dependency " + e.Dependency + " unavailable: " + e.err.Error()
}

// Unwrap exposes the underlying cause.
func (e *DependencyError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DependencyError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DependencyError) ErrorCode() string {
	return "DEPENDENCY_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *DependencyError) Message() string {
	return "A required service is temporarily unavailable"
}

// Details returns detailed error information
func (e *DependencyError) Details() string {
	return e.Dependency
}

// PersistenceError reports that a write to the notification or request-state store failed.
type PersistenceError struct {
	Operation string
	err       error
}

// NewPersistenceError wraps err as a failed store write.
func NewPersistenceError(operation string, err error) *PersistenceError {
	return &PersistenceError{Operation: operation, err: err}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return e.Operation + ": " + e.err.Error()
}

// Unwrap exposes the underlying cause.
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// IsDependencyError reports whether err is or wraps a DependencyError.
func IsDependencyError(err error) bool {
	var depErr *DependencyError

	return errors.As(err, &depErr)
}
