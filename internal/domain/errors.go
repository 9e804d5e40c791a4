// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and mapped to HTTP status codes by
// the adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates input validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrIntegrity indicates an unexpected persistence-layer constraint
	// violation. Surfaced to the caller, never swallowed.
	ErrIntegrity = errors.New("integrity violation")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     int64
}

// Error returns the caller-facing message. It deliberately omits the id:
// the message is the API error detail ("Question not found").
func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides field-level context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IntegrityError provides context for persistence constraint violations.
type IntegrityError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("integrity violation in %s: %v", e.Op, e.Cause)
	}

	return "integrity violation in " + e.Op
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}

// NewIntegrityError creates an integrity error wrapping the storage cause.
func NewIntegrityError(op string, cause error) error {
	return &IntegrityError{Op: op, Cause: cause}
}

// UnavailableError provides context for dependency failures.
type UnavailableError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: dependency unavailable: %v", e.Op, e.Cause)
	}

	return e.Op + ": dependency unavailable"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error wrapping the cause.
func NewUnavailableError(op string, cause error) error {
	return &UnavailableError{Op: op, Cause: cause}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsIntegrity checks if an error is an integrity error.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
