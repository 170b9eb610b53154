// Package errors provides a lightweight structured error type (DoclinkError)
// for category-based classification across the CLI and the rewrite pass.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a doclink error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Input boundary errors
	CategoryClasspath  ErrorCategory = "classpath"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Processing errors
	CategoryRewrite ErrorCategory = "rewrite"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryDaemon   ErrorCategory = "daemon"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// DoclinkError is a structured error with category, severity, and context
type DoclinkError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DoclinkError
type ContextFields map[string]any

// Error implements the error interface
func (e *DoclinkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DoclinkError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DoclinkError) WithContext(key string, value any) *DoclinkError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DoclinkError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DoclinkError {
	return &DoclinkError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DoclinkError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DoclinkError {
	return &DoclinkError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// FatalConfig creates a fatal configuration error. The rewrite pass cannot
// proceed past one of these.
func FatalConfig(message string) *DoclinkError {
	return &DoclinkError{
		Category: CategoryConfig,
		Severity: SeverityFatal,
		Message:  message,
	}
}

// ValidationError creates a new validation error
func ValidationError(message string) *DoclinkError {
	return &DoclinkError{
		Category: CategoryValidation,
		Severity: SeverityWarning,
		Message:  message,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if de, ok := err.(*DoclinkError); ok {
		return de.Category == category
	}
	return false
}

// IsFatal checks if an error carries fatal severity
func IsFatal(err error) bool {
	if de, ok := err.(*DoclinkError); ok {
		return de.Severity == SeverityFatal
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a DoclinkError
func GetCategory(err error) ErrorCategory {
	if de, ok := err.(*DoclinkError); ok {
		return de.Category
	}
	return CategoryInternal
}
