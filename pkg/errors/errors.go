// Package errors provides structured error types for critpath.
//
// Every failure the scheduling engine can report is identified by a
// machine-readable [Code], so callers (CLI, HTTP API, tests) can branch on
// the kind of failure without parsing messages.
//
// # Error Codes
//
// Codes fall into the groups reported by [KindOf]:
//   - [KindInput] (INVALID_SIZE, DURATION_COUNT_MISMATCH, INVALID_FORMAT, ...):
//     the request was malformed and no graph was built.
//   - [KindStructural] (CYCLE_DETECTED): the input was well formed but no
//     valid schedule exists.
//   - [KindNotFound] (FILE_NOT_FOUND) and [KindInternal] (INTERNAL_ERROR):
//     raised by the import/export and transport layers.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSize, "size must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidSize) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input shape errors
	ErrCodeInvalidSize           Code = "INVALID_SIZE"
	ErrCodeDurationCountMismatch Code = "DURATION_COUNT_MISMATCH"
	ErrCodeInvalidDuration       Code = "INVALID_DURATION"
	ErrCodeMissingActivities     Code = "MISSING_ACTIVITIES"
	ErrCodeOutOfRangeReference   Code = "OUT_OF_RANGE_REFERENCE"
	ErrCodeMalformedActivity     Code = "MALFORMED_ACTIVITY"
	ErrCodeInvalidMatrix         Code = "INVALID_MATRIX"

	// Structural errors
	ErrCodeCycleDetected Code = "CYCLE_DETECTED"

	// Boundary errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
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
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the first *Error in err's chain,
// without the code prefix, followed by its cause when it has one. Other
// errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Kind groups error codes by what the caller can do about them.
type Kind int

const (
	KindUnknown    Kind = iota // not a coded error
	KindInput                  // malformed input; no graph was built
	KindStructural             // well-formed input with no valid schedule
	KindNotFound               // a named file does not exist
	KindInternal               // a bug or an environment failure
)

// Kind returns the group the code belongs to.
func (c Code) Kind() Kind {
	switch c {
	case ErrCodeInvalidSize,
		ErrCodeDurationCountMismatch,
		ErrCodeInvalidDuration,
		ErrCodeMissingActivities,
		ErrCodeOutOfRangeReference,
		ErrCodeMalformedActivity,
		ErrCodeInvalidMatrix,
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat:
		return KindInput
	case ErrCodeCycleDetected:
		return KindStructural
	case ErrCodeFileNotFound:
		return KindNotFound
	case ErrCodeInternal:
		return KindInternal
	}
	return KindUnknown
}

// KindOf returns the kind of err's code, or KindUnknown for uncoded errors.
func KindOf(err error) Kind {
	return GetCode(err).Kind()
}

// IsValidation reports whether err is an input error. Cycle errors are
// structural and return false.
func IsValidation(err error) bool {
	return KindOf(err) == KindInput
}
