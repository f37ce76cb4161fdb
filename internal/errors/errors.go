// Package errors provides shared error types for the correlation packages.
package errors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates an entity was not found in a lookup table or on disk.
type NotFoundError struct {
	Source     string // "component library", "data directory"
	EntityType string // "component", "file"
	Identifier string // component name or file path
	Suggestion string // optional closest match
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("not found in %s: %s", e.Source, e.Identifier)
	if e.EntityType != "" {
		msg = fmt.Sprintf("%s not found in %s: %s", e.EntityType, e.Source, e.Identifier)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// NewNotFoundError creates a NotFoundError for a component lookup.
func NewNotFoundError(source, identifier string) *NotFoundError {
	return &NotFoundError{
		Source:     source,
		EntityType: "component",
		Identifier: identifier,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ConvergenceError indicates an iterative solver did not reach its tolerance.
type ConvergenceError struct {
	Method     string  // solver or correlation name
	Iterations int     // iterations spent
	Residual   float64 // last residual, if known
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s did not converge after %d iterations (residual %.3g)", e.Method, e.Iterations, e.Residual)
}

// NewConvergenceError creates a ConvergenceError.
func NewConvergenceError(method string, iterations int, residual float64) *ConvergenceError {
	return &ConvergenceError{
		Method:     method,
		Iterations: iterations,
		Residual:   residual,
	}
}

// IsNotFound returns true if the error is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation returns true if the error is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConvergence returns true if the error is or wraps a ConvergenceError.
func IsConvergence(err error) bool {
	var target *ConvergenceError
	return errors.As(err, &target)
}

// Error classes reported by Class.
const (
	ClassValidation  = "validation"
	ClassConvergence = "convergence"
	ClassNotFound    = "not_found"
	ClassInternal    = "internal"
)

// Class names the kind of err for logs, spans and metric labels. It
// returns "" for nil.
func Class(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return ClassValidation
	case IsConvergence(err):
		return ClassConvergence
	case IsNotFound(err):
		return ClassNotFound
	default:
		return ClassInternal
	}
}
