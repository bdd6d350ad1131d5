// Package errors defines the application error taxonomy shared by the
// service and HTTP layers. Every manager operation returns either a plain
// error (treated as internal) or an *AppError carrying one of the codes
// below; the HTTP boundary maps codes to status codes in one place.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes an application error.
type ErrorCode string

const (
	// ErrCodeValidation indicates missing or malformed input.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeForbidden indicates the principal is authenticated but not
	// authorized for the target resource.
	ErrCodeForbidden ErrorCode = "forbidden"
	// ErrCodeNotFound indicates the target row is absent or an update/delete
	// affected zero rows.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a uniqueness or business-rule violation,
	// e.g. a duplicate bid.
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeForeignKey indicates a referential-integrity violation.
	ErrCodeForeignKey ErrorCode = "foreign_key"
	// ErrCodeUnavailable indicates a storage timeout or connection failure;
	// the operation is retryable.
	ErrCodeUnavailable ErrorCode = "unavailable"
	// ErrCodeInternal indicates an unexpected fault.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeCanceled indicates the request was canceled by the caller.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError is a structured application error with a code, a caller-safe
// message, and an optional wrapped cause. It supports errors.Is / errors.As.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	// Field names the offending input field for validation errors.
	Field string
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Validation creates a validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationField creates a validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Forbidden creates a forbidden error.
func Forbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// NotFound creates a not-found error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a not-found error with a formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Unavailable creates a retryable unavailable error.
func Unavailable(message string) *AppError {
	return &AppError{Code: ErrCodeUnavailable, Message: message}
}

// Internal creates an internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with a code and message, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with a code and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation reports whether err carries the validation code.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsForbidden reports whether err carries the forbidden code.
func IsForbidden(err error) bool { return isCode(err, ErrCodeForbidden) }

// IsNotFound reports whether err carries the not-found code.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsConflict reports whether err carries the conflict code.
func IsConflict(err error) bool { return isCode(err, ErrCodeConflict) }

// IsForeignKey reports whether err carries the foreign-key code.
func IsForeignKey(err error) bool { return isCode(err, ErrCodeForeignKey) }

// IsUnavailable reports whether err carries the unavailable code.
func IsUnavailable(err error) bool { return isCode(err, ErrCodeUnavailable) }

// IsInternal reports whether err carries the internal code.
func IsInternal(err error) bool { return isCode(err, ErrCodeInternal) }

// GetCode returns the ErrorCode from err, or empty string when err is not an
// AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
