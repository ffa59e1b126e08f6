// Package errors provides structured error types for the Gridframe layout engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and dev server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: configuration or input validation failures
//   - UNRESOLVED_*: a required breakpoint-mapped value had no entry at or
//     below the current breakpoint
//   - LINE_NOT_FOUND: a declared span line does not exist in the template
//     built for the current breakpoint
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidColumns, "column count must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidColumns) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "failed to load theme %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration and input validation errors
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidToken      Code = "INVALID_TOKEN"
	ErrCodeInvalidBreakpoint Code = "INVALID_BREAKPOINT"
	ErrCodeInvalidColumns    Code = "INVALID_COLUMNS"
	ErrCodeInvalidRegion     Code = "INVALID_REGION"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"

	// Resolution errors: required structural values with no entry at or
	// below the current breakpoint
	ErrCodeUnresolvedGap     Code = "UNRESOLVED_GAP"
	ErrCodeUnresolvedColumns Code = "UNRESOLVED_COLUMNS"

	// Template errors
	ErrCodeLineNotFound Code = "LINE_NOT_FOUND"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var lnf *LineNotFoundError
	if errors.As(err, &lnf) {
		return ErrCodeLineNotFound
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// LineNotFoundError reports a declared span line that does not exist in the
// grid template built for the current breakpoint. It carries the full list
// of valid line names so callers can surface an actionable diagnostic
// (e.g. "content-8" declared while the current breakpoint only has 4 columns,
// so valid names stop at "content-4").
type LineNotFoundError struct {
	Line    string   // the offending line name
	Valid   []string // all line names valid for the current breakpoint
	Columns int      // column count the template was built for
}

// Error implements the error interface.
func (e *LineNotFoundError) Error() string {
	return fmt.Sprintf("line %q not found in template for %d column(s); valid lines: %s",
		e.Line, e.Columns, strings.Join(e.Valid, ", "))
}

// ErrorCode returns the error code for this error type.
func (e *LineNotFoundError) ErrorCode() Code {
	return ErrCodeLineNotFound
}
