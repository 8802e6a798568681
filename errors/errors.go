// Package errors defines the error taxonomy of freshfetch. Every failure is
// wrapped into a FetchError at the point where it is detected and carried
// unchanged to main, which reports it and exits.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of a failure.
type ErrorCode string

const (
	// ErrScript is a syntax or runtime failure inside the Lua interpreter.
	ErrScript ErrorCode = "SCRIPT"
	// ErrScriptOutput means a template ran but left __freshfetch__ unset or
	// set to something other than a string.
	ErrScriptOutput ErrorCode = "SCRIPT_OUTPUT"
	// ErrRead is an override template that exists but cannot be read.
	ErrRead ErrorCode = "IO_READ"
	// ErrCommand is a subprocess that failed to launch or printed non-UTF-8.
	ErrCommand ErrorCode = "COMMAND"
	// ErrEnv is a mandatory environment variable that is not set.
	ErrEnv ErrorCode = "ENV"

	ErrPublish ErrorCode = "PUBLISH"
	ErrProbe   ErrorCode = "PROBE"
	ErrGraph   ErrorCode = "GRAPH"
	ErrConfig  ErrorCode = "CONFIG"
	ErrUnknown ErrorCode = "UNKNOWN"
)

// FetchError is a categorised error. Subject names the guilty script,
// command, path or variable.
type FetchError struct {
	Code    ErrorCode
	Message string
	Subject string
	Wrapped error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FetchError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a FetchError with the same code.
func (e *FetchError) Is(target error) bool {
	var targetErr *FetchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithSubject sets the subject and returns the error for chaining.
func (e *FetchError) WithSubject(subject string) *FetchError {
	e.Subject = subject
	return e
}

// New creates a new FetchError with the given code and message
func New(code ErrorCode, message string) *FetchError {
	return &FetchError{Code: code, Message: message}
}

// Newf creates a new FetchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FetchError {
	return &FetchError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *FetchError {
	if err == nil {
		return nil
	}
	return &FetchError{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FetchError {
	if err == nil {
		return nil
	}
	return &FetchError{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// GetCode returns the code of the first FetchError in err's chain, or
// ErrUnknown.
func GetCode(err error) ErrorCode {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ErrUnknown
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
