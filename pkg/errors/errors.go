package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Packing errors
	ErrOutputCreate ErrorCode = "OUTPUT_CREATE"
	ErrOutputWrite  ErrorCode = "OUTPUT_WRITE"
	ErrWalk         ErrorCode = "WALK"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrEncoding     ErrorCode = "ENCODING"
)

// CodepackError represents a structured error with code and details
type CodepackError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CodepackError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CodepackError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CodepackError) Is(target error) bool {
	var targetErr *CodepackError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CodepackError with the given code and message
func New(code ErrorCode, message string) *CodepackError {
	return &CodepackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CodepackError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CodepackError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a CodepackError
func Wrap(err error, code ErrorCode, message string) *CodepackError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CodepackError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CodepackError) WithDetail(key string, value interface{}) *CodepackError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cpErr *CodepackError
	if errors.As(err, &cpErr) {
		return cpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CodepackError
func GetErrorCode(err error) ErrorCode {
	var cpErr *CodepackError
	if errors.As(err, &cpErr) {
		return cpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CodepackError
func GetErrorDetails(err error) map[string]interface{} {
	var cpErr *CodepackError
	if errors.As(err, &cpErr) {
		return cpErr.Details
	}
	return nil
}
