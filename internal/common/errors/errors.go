package errors

import (
	"fmt"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"

	// Giveaway errors
	ErrCodeAlreadyJoined ErrorCode = "ALREADY_JOINED"
	ErrCodePostFailure   ErrorCode = "POST_FAILURE"

	// Store errors
	ErrCodeDatabase ErrorCode = "DATABASE_ERROR"
)

// AppError is a typed application error carrying a code, a user-safe
// message and an optional cause.
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsValidation reports whether the error is a form-input problem.
func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation
}

// IsInternal reports whether the error should be logged as a fault rather
// than shown verbatim to the user.
func (e *AppError) IsInternal() bool {
	return e.Code == ErrCodeInternal || e.Code == ErrCodeDatabase || e.Code == ErrCodePostFailure
}

// WithDetail attaches structured context to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a cause to a new AppError.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// NewValidationError creates a validation error for a single form field.
func NewValidationError(field, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("Validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// NewForbiddenError creates an authorization error.
func NewForbiddenError(reason string) *AppError {
	return New(ErrCodeForbidden, fmt.Sprintf("Forbidden: %s", reason)).
		WithDetail("reason", reason)
}

// NewPostFailureError creates an error for a failed outbound platform post.
func NewPostFailureError(err error) *AppError {
	return Wrap(err, ErrCodePostFailure, "Failed to post message to the platform")
}

// NewDatabaseError creates an error for a failed store operation.
func NewDatabaseError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeDatabase, fmt.Sprintf("Database operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// AsAppError casts err to AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
