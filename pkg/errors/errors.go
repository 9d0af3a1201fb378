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

	// Linking errors
	ErrSourceMissing ErrorCode = "SOURCE_MISSING"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrBackupMove    ErrorCode = "BACKUP_MOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrFilesystem    ErrorCode = "FILESYSTEM"

	// Theme errors
	ErrInvalidColor     ErrorCode = "INVALID_COLOR"
	ErrPaletteMissing   ErrorCode = "PALETTE_MISSING"
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrOverrideParse    ErrorCode = "OVERRIDE_PARSE"

	// External collaborators
	ErrToolMissing ErrorCode = "TOOL_MISSING"
)

// IdaError represents a structured error with code and details
type IdaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *IdaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *IdaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *IdaError) Is(target error) bool {
	var targetErr *IdaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new IdaError with the given code and message
func New(code ErrorCode, message string) *IdaError {
	return &IdaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new IdaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *IdaError {
	return &IdaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an IdaError
func Wrap(err error, code ErrorCode, message string) *IdaError {
	if err == nil {
		return nil
	}
	return &IdaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *IdaError {
	if err == nil {
		return nil
	}
	return &IdaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *IdaError) WithDetail(key string, value interface{}) *IdaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var idaErr *IdaError
	if errors.As(err, &idaErr) {
		return idaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an IdaError
func GetErrorCode(err error) ErrorCode {
	var idaErr *IdaError
	if errors.As(err, &idaErr) {
		return idaErr.Code
	}
	return ErrUnknown
}
