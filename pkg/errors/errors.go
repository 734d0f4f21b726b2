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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Path errors
	ErrPathMismatch ErrorCode = "PATH_MISMATCH"

	// Reader errors
	ErrCharset ErrorCode = "CHARSET"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// NpathsError represents a structured error with code and details
type NpathsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NpathsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NpathsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NpathsError) Is(target error) bool {
	var targetErr *NpathsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NpathsError with the given code and message
func New(code ErrorCode, message string) *NpathsError {
	return &NpathsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NpathsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NpathsError {
	return &NpathsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NpathsError
func Wrap(err error, code ErrorCode, message string) *NpathsError {
	if err == nil {
		return nil
	}
	return &NpathsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NpathsError {
	if err == nil {
		return nil
	}
	return &NpathsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NpathsError) WithDetail(key string, value interface{}) *NpathsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *NpathsError) WithDetails(details map[string]interface{}) *NpathsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var npErr *NpathsError
	if errors.As(err, &npErr) {
		return npErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NpathsError
func GetErrorCode(err error) ErrorCode {
	var npErr *NpathsError
	if errors.As(err, &npErr) {
		return npErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a NpathsError
func GetErrorDetails(err error) map[string]interface{} {
	var npErr *NpathsError
	if errors.As(err, &npErr) {
		return npErr.Details
	}
	return nil
}
