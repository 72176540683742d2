package errors

import (
	"fmt"
)

// LexError is the structured error type for LexSearch.
// It provides rich context for error handling, logging, and user presentation.
type LexError struct {
	// Code is the unique error code (e.g., "ERR_201_INVALID_QUERY").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Validation, Collaborator, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Field is the offending request field for validation errors.
	Field string

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Retryable indicates if the operation can be retried.
	Retryable bool
}

// Error implements the error interface.
func (e *LexError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LexError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with LexError.
func (e *LexError) Is(target error) bool {
	if t, ok := target.(*LexError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *LexError) WithDetail(key, value string) *LexError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new LexError with the given code and message.
// Category, severity, and retryable flag are derived from the code.
func New(code string, message string, cause error) *LexError {
	return &LexError{
		Code:      code,
		Message:   message,
		Category:  categoryFromCode(code),
		Severity:  severityFromCode(code),
		Cause:     cause,
		Retryable: isRetryableCode(code),
	}
}

// Wrap creates a LexError from an existing error.
// The error's message becomes the LexError message.
func Wrap(code string, err error) *LexError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// Validation creates a request validation error carrying the offending field.
func Validation(code, field, message string) *LexError {
	e := New(code, message, nil)
	e.Field = field
	return e
}

// Collaborator creates a degradable collaborator failure.
func Collaborator(code, message string, cause error) *LexError {
	return New(code, message, cause)
}

// Cache creates a cache store failure (treated as a miss by callers).
func Cache(code, message string, cause error) *LexError {
	return New(code, message, cause)
}

// Internal creates an internal pipeline error.
func Internal(message string, cause error) *LexError {
	return New(ErrCodePipeline, message, cause)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *LexError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IsValidation checks if an error is a request validation error.
func IsValidation(err error) bool {
	if le, ok := err.(*LexError); ok {
		return le.Category == CategoryValidation
	}
	return false
}

// IsRetryable checks if an error is retryable.
// Returns true if the error is a LexError with Retryable flag set.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if le, ok := err.(*LexError); ok {
		return le.Retryable
	}
	return false
}

// IsFatal checks if an error has fatal severity.
// Fatal errors abort the current request.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if le, ok := err.(*LexError); ok {
		return le.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a LexError.
// Returns empty string if not a LexError.
func GetCode(err error) string {
	if le, ok := err.(*LexError); ok {
		return le.Code
	}
	return ""
}

// GetField extracts the offending field from a validation error.
// Returns empty string if not a LexError or no field is set.
func GetField(err error) string {
	if le, ok := err.(*LexError); ok {
		return le.Field
	}
	return ""
}
