package apperrors

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by repositories and services. Every specific error
// below wraps exactly one of these so callers can branch with errors.Is.
var (
	ErrValidationFailed      = errors.New("validation failed")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrResourceNotFound      = errors.New("resource not found")
	ErrStorageFailure        = errors.New("storage failure")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrInvalidFormat      = errors.New("invalid token format")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Student errors
var (
	ErrStudentNotFound      = fmt.Errorf("student %w", ErrResourceNotFound)
	ErrStudentAlreadyExists = fmt.Errorf("student with this roll number or email: %w", ErrResourceAlreadyExists)
)

// Admin (CDC) errors
var (
	ErrAdminNotFound      = fmt.Errorf("admin %w", ErrResourceNotFound)
	ErrAdminAlreadyExists = fmt.Errorf("admin with this name: %w", ErrResourceAlreadyExists)
)

// Company errors
var (
	ErrCompanyNotFound      = fmt.Errorf("company %w", ErrResourceNotFound)
	ErrCompanyAlreadyExists = fmt.Errorf("company with this email: %w", ErrResourceAlreadyExists)
)

// Drive, mock and application errors
var (
	ErrDriveNotFound            = fmt.Errorf("recruitment drive %w", ErrResourceNotFound)
	ErrMockNotFound             = fmt.Errorf("mock session %w", ErrResourceNotFound)
	ErrApplicationNotFound      = fmt.Errorf("application %w", ErrResourceNotFound)
	ErrApplicationAlreadyExists = fmt.Errorf("application to this drive: %w", ErrResourceAlreadyExists)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError reports a missing or malformed input field.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// StorageFailure wraps an opaque persistence fault with the operation that hit it.
func StorageFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageFailure, op, err)
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
