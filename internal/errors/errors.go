// Package errors provides standardized domain errors with codes for the
// ShelfSpace API.
//
// Usage:
//
//	// In services - return typed errors
//	if len(profile.Shelves) >= domain.MaxShelvesPerUser {
//	    return errors.QuotaExceeded("shelf quota exceeded")
//	}
//
//	// At the boundary - check with errors.As
//	var domainErr *errors.Error
//	if errors.As(err, &domainErr) {
//	    status := domainErr.HTTPStatus()
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code is a machine-readable error code sent to clients in the "error" field
// of error responses.
type Code string

// Error codes used throughout the application.
const (
	CodeNotFound         Code = "NOT_FOUND"
	CodeQuotaExceeded    Code = "SHELF_QUOTA_EXCEEDED"
	CodeInvalidData      Code = "INVALID_DATA"
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeAccessDenied     Code = "ACCESS_DENIED"
	CodeMethodNotAllowed Code = "METHOD_NOT_ALLOWED"
	CodeTooManyRequests  Code = "TOO_MANY_REQUESTS"
	CodeInternal         Code = "INTERNAL_SERVER_ERROR"
)

// HTTPStatus returns the HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeQuotaExceeded:
		return http.StatusConflict
	case CodeInvalidData:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeAccessDenied:
		return http.StatusForbidden
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithDetails returns a copy of the error carrying additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound      = &Error{Code: CodeNotFound, Message: "resource was not found"}
	ErrQuotaExceeded = &Error{Code: CodeQuotaExceeded, Message: "quota exceeded"}
	ErrInvalidData   = &Error{Code: CodeInvalidData, Message: "invalid request data"}
	ErrUnauthorized  = &Error{Code: CodeUnauthorized, Message: "unauthorized"}
	ErrAccessDenied  = &Error{Code: CodeAccessDenied, Message: "access denied"}
	ErrInternal      = &Error{Code: CodeInternal, Message: "internal server error"}
)

// NotFound creates a not found error. Ownership mismatches use this too, so a
// caller cannot distinguish another user's resource from a missing one.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// QuotaExceeded creates a quota exceeded error.
func QuotaExceeded(msg string) *Error {
	return &Error{Code: CodeQuotaExceeded, Message: msg}
}

// InvalidData creates an invalid data error.
func InvalidData(msg string) *Error {
	return &Error{Code: CodeInvalidData, Message: msg}
}

// InvalidDataWithDetails creates an invalid data error with per-field details.
func InvalidDataWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeInvalidData, Message: msg, Details: details}
}

// Unauthorized creates an unauthorized error.
func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

// AccessDenied creates an access denied error.
func AccessDenied(msg string) *Error {
	return &Error{Code: CodeAccessDenied, Message: msg}
}

// MethodNotAllowed creates a method not allowed error.
func MethodNotAllowed(msg string) *Error {
	return &Error{Code: CodeMethodNotAllowed, Message: msg}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Internalf creates an internal error with formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}
