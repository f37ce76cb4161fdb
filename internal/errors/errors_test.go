package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		expected string
	}{
		{
			name: "with entity type",
			err: &NotFoundError{
				Source:     "component library",
				EntityType: "component",
				Identifier: "C99",
			},
			expected: "component not found in component library: C99",
		},
		{
			name: "without entity type",
			err: &NotFoundError{
				Source:     "data directory",
				Identifier: "CASE.PRT",
			},
			expected: "not found in data directory: CASE.PRT",
		},
		{
			name: "with suggestion",
			err: &NotFoundError{
				Source:     "component library",
				EntityType: "component",
				Identifier: "methan",
				Suggestion: "METHANE",
			},
			expected: `component not found in component library: methan (did you mean "METHANE"?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("NotFoundError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("component library", "C99")

	if err.Source != "component library" {
		t.Errorf("Source = %q, want %q", err.Source, "component library")
	}
	if err.EntityType != "component" {
		t.Errorf("EntityType = %q, want %q", err.EntityType, "component")
	}
	if err.Identifier != "C99" {
		t.Errorf("Identifier = %q, want %q", err.Identifier, "C99")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name: "with field and value",
			err: &ValidationError{
				Field:   "api",
				Value:   "120",
				Message: "must be less than or equal to 100",
			},
			expected: `validation failed for api="120": must be less than or equal to 100`,
		},
		{
			name: "with field only",
			err: &ValidationError{
				Field:   "p",
				Message: "is required",
			},
			expected: "validation failed for p: is required",
		},
		{
			name: "message only",
			err: &ValidationError{
				Message: "inert fractions sum above 1",
			},
			expected: "validation failed: inert fractions sum above 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvergenceError_Error(t *testing.T) {
	err := NewConvergenceError("brent", 100, 1e-3)
	want := "brent did not converge after 100 iterations (residual 0.001)"
	if got := err.Error(); got != want {
		t.Errorf("ConvergenceError.Error() = %q, want %q", got, want)
	}
}

func TestIsHelpers(t *testing.T) {
	notFound := NewNotFoundError("component library", "X")
	validation := NewValidationError("sg", "0", "must be greater than 0")
	convergence := NewConvergenceError("newton", 50, 0.1)
	plain := errors.New("plain")

	tests := []struct {
		name            string
		err             error
		wantNotFound    bool
		wantValidation  bool
		wantConvergence bool
	}{
		{"not found", notFound, true, false, false},
		{"validation", validation, false, true, false},
		{"convergence", convergence, false, false, true},
		{"wrapped validation", fmt.Errorf("gas_z_factor failed: %w", validation), false, true, false},
		{"wrapped convergence", fmt.Errorf("solve: %w", convergence), false, false, true},
		{"plain", plain, false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.wantNotFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.wantNotFound)
			}
			if got := IsValidation(tt.err); got != tt.wantValidation {
				t.Errorf("IsValidation() = %v, want %v", got, tt.wantValidation)
			}
			if got := IsConvergence(tt.err); got != tt.wantConvergence {
				t.Errorf("IsConvergence() = %v, want %v", got, tt.wantConvergence)
			}
		})
	}
}

func TestClass(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{NewValidationError("sg", "-1", "must be positive"), ClassValidation},
		{fmt.Errorf("oil_bubble_point failed: %w", NewConvergenceError("brent", 50, 0.1)), ClassConvergence},
		{NewNotFoundError("component library", "XYZ"), ClassNotFound},
		{errors.New("boom"), ClassInternal},
	}
	for _, tt := range tests {
		if got := Class(tt.err); got != tt.want {
			t.Errorf("Class(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
