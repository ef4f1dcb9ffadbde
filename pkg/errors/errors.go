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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Manifest errors
	ErrManifestRead    ErrorCode = "MANIFEST_READ"
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Pipeline errors
	ErrProcessing ErrorCode = "PROCESSING"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileRead     ErrorCode = "FILE_READ"

	// Archive errors
	ErrArchiveWrite ErrorCode = "ARCHIVE_WRITE"
)

// ExtpackError represents a structured error with code and details
type ExtpackError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ExtpackError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ExtpackError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ExtpackError) Is(target error) bool {
	var targetErr *ExtpackError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ExtpackError with the given code and message
func New(code ErrorCode, message string) *ExtpackError {
	return &ExtpackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ExtpackError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ExtpackError {
	return &ExtpackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ExtpackError
func Wrap(err error, code ErrorCode, message string) *ExtpackError {
	if err == nil {
		return nil
	}
	return &ExtpackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ExtpackError {
	if err == nil {
		return nil
	}
	return &ExtpackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ExtpackError) WithDetail(key string, value interface{}) *ExtpackError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var extpackErr *ExtpackError
	if errors.As(err, &extpackErr) {
		return extpackErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ExtpackError
func GetErrorCode(err error) ErrorCode {
	var extpackErr *ExtpackError
	if errors.As(err, &extpackErr) {
		return extpackErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ExtpackError
func GetErrorDetails(err error) map[string]interface{} {
	var extpackErr *ExtpackError
	if errors.As(err, &extpackErr) {
		return extpackErr.Details
	}
	return nil
}
