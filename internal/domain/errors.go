package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrValidation          = errors.New("validation error")
	ErrConflict            = errors.New("conflict")
	ErrPersistence         = errors.New("persistence failure")
	ErrUntrackedAttribute  = errors.New("untracked attribute")
	ErrNonMonotonicVersion = fmt.Errorf("non-monotonic version: %w", ErrConflict)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UntrackedAttributeError is returned when an attribute is requested that the
// record type never declared as tracked.
type UntrackedAttributeError struct {
	Attribute string
	Type      string
}

func (e *UntrackedAttributeError) Error() string {
	return fmt.Sprintf("attribute %q is not audited on type %q", e.Attribute, e.Type)
}

func (e *UntrackedAttributeError) Unwrap() error { return ErrUntrackedAttribute }

// PersistenceError wraps a failure of the backing store while appending an
// entry or allocating a version. Nothing from the failed unit of work is visible.
type PersistenceError struct {
	Op    string
	Owner Owner
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist audit entry (%s %s): %s: %v", e.Owner.Type, e.Owner.ID, e.Op, e.Err)
}

// Unwrap exposes both ErrPersistence and the underlying cause, so callers can
// match either errors.Is(err, ErrPersistence) or the specific store error.
func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Err} }
