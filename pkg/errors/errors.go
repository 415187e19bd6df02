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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Run lifecycle errors
	ErrRunCommitted    ErrorCode = "RUN_COMMITTED"
	ErrRunNotCommitted ErrorCode = "RUN_NOT_COMMITTED"

	// Scan errors
	ErrScanFailed ErrorCode = "SCAN_FAILED"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// MigrationError represents a structured error with code and details
type MigrationError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MigrationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MigrationError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MigrationError) Is(target error) bool {
	var targetErr *MigrationError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MigrationError with the given code and message
func New(code ErrorCode, message string) *MigrationError {
	return &MigrationError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MigrationError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MigrationError {
	return &MigrationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MigrationError
func Wrap(err error, code ErrorCode, message string) *MigrationError {
	if err == nil {
		return nil
	}
	return &MigrationError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MigrationError {
	if err == nil {
		return nil
	}
	return &MigrationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MigrationError) WithDetail(key string, value interface{}) *MigrationError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var merr *MigrationError
	if errors.As(err, &merr) {
		return merr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MigrationError
func GetErrorCode(err error) ErrorCode {
	var merr *MigrationError
	if errors.As(err, &merr) {
		return merr.Code
	}
	return ErrUnknown
}
