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

	// Option normalization errors
	ErrMissingOptionValue ErrorCode = "MISSING_OPTION_VALUE"
	ErrConflictingOption  ErrorCode = "CONFLICTING_OPTION"

	// Configure errors
	ErrMissingComponent         ErrorCode = "MISSING_COMPONENT"
	ErrCannotConfigure          ErrorCode = "CANNOT_CONFIGURE"
	ErrNonInteractiveMenuConfig ErrorCode = "NON_INTERACTIVE_MENUCONFIG"
	ErrNoTargetResolved         ErrorCode = "NO_TARGET_RESOLVED"
	ErrAlreadyConfigured        ErrorCode = "ALREADY_CONFIGURED"
	ErrWorkdirLocked            ErrorCode = "WORKDIR_LOCKED"

	// Manifest and settings errors
	ErrManifestLoad  ErrorCode = "MANIFEST_LOAD"
	ErrManifestValid ErrorCode = "MANIFEST_INVALID"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"

	// Component store errors
	ErrComponentNotFound ErrorCode = "COMPONENT_NOT_FOUND"
	ErrIndexLoad         ErrorCode = "INDEX_LOAD"
	ErrPullFailed        ErrorCode = "PULL_FAILED"

	// Prompt errors
	ErrNotInteractive ErrorCode = "NOT_INTERACTIVE"
	ErrPromptFailed   ErrorCode = "PROMPT_FAILED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// UnikitError represents a structured error with code and details
type UnikitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UnikitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *UnikitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *UnikitError) Is(target error) bool {
	var targetErr *UnikitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UnikitError with the given code and message
func New(code ErrorCode, message string) *UnikitError {
	return &UnikitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UnikitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UnikitError {
	return &UnikitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a UnikitError
func Wrap(err error, code ErrorCode, message string) *UnikitError {
	if err == nil {
		return nil
	}
	return &UnikitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *UnikitError {
	if err == nil {
		return nil
	}
	return &UnikitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *UnikitError) WithDetail(key string, value interface{}) *UnikitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var uerr *UnikitError
	if errors.As(err, &uerr) {
		return uerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not
// a UnikitError
func GetErrorCode(err error) ErrorCode {
	var uerr *UnikitError
	if errors.As(err, &uerr) {
		return uerr.Code
	}
	return ErrUnknown
}

// MissingComponent builds the distinguished recoverable error raised when
// a declared component is absent from the local store. The component name
// travels in the error details so the caller can pull it and retry.
func MissingComponent(name string) *UnikitError {
	return Newf(ErrMissingComponent, "component %s is not present in the local store", name).
		WithDetail("component", name)
}

// ComponentName extracts the component name from a MISSING_COMPONENT error.
// Returns an empty string for any other error.
func ComponentName(err error) string {
	var uerr *UnikitError
	if !errors.As(err, &uerr) || uerr.Code != ErrMissingComponent {
		return ""
	}
	if name, ok := uerr.Details["component"].(string); ok {
		return name
	}
	return ""
}
