// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents invalid caller input. It is reported
// before any fetch is dispatched and maps to a client-error response.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// SourceError represents a failure talking to the external news source
type SourceError struct {
	Category  string
	Message   string
	Retryable bool
}

// Error implements the error interface
func (e *SourceError) Error() string {
	return fmt.Sprintf("source error for category '%s': %s", e.Category, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsSource checks if an error is a SourceError
func IsSource(err error) bool {
	var sourceErr *SourceError
	return errors.As(err, &sourceErr)
}

// IsRetryable checks if an error is a SourceError marked retryable
func IsRetryable(err error) bool {
	var sourceErr *SourceError
	if errors.As(err, &sourceErr) {
		return sourceErr.Retryable
	}
	return false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
