// Package errors provides structured error types for techradar.
//
// The layout engine distinguishes three kinds of failure:
//   - Configuration errors (INVALID_CONFIG, INVALID_SPLIT_MODE): fatal,
//     raised before any layout work begins.
//   - Entry errors (INVALID_ENTRY): recoverable, the offending entry is
//     skipped and an [EntryError] diagnostic is reported.
//   - Unsupported requests (UNSUPPORTED): a feature the engine does not
//     implement, such as a zoomed single-quadrant view.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "need at least 2 quadrants, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Abort without producing output
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidEntry     Code = "INVALID_ENTRY"
	ErrCodeInvalidSplitMode Code = "INVALID_SPLIT_MODE"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// It unwraps the error chain looking for an *Error or *EntryError with a
// matching code.
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
	var ee *EntryError
	if errors.As(err, &ee) {
		return ee.Code()
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

// EntryError describes a single entry that was skipped during layout.
// It never aborts a layout pass.
type EntryError struct {
	Index    int    // Position of the entry in the caller's list
	Quadrant int    // Quadrant index as given
	Ring     int    // Ring index as given
	Label    string // Entry label
	Reason   string // Why the entry was skipped
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("ignored entry[%d] %q: %s", e.Index, e.Label, e.Reason)
}

// Code returns the error code for this error type.
func (e *EntryError) Code() Code {
	return ErrCodeInvalidEntry
}
