package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("tag", "required")

	if got := err.Error(); got != "validation: tag — required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "name", Message: "required"},
		{Field: "attributes", Message: "at least one attribute required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestUntrackedAttributeError(t *testing.T) {
	t.Parallel()

	var err error = &UntrackedAttributeError{Attribute: "unknownField", Type: "Invoice"}

	if !errors.Is(err, ErrUntrackedAttribute) {
		t.Fatal("errors.Is(err, ErrUntrackedAttribute) = false")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknownField") || !strings.Contains(msg, "Invoice") {
		t.Errorf("Error() = %q, want attribute and type named", msg)
	}

	var target *UntrackedAttributeError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &target) || target.Attribute != "unknownField" {
		t.Errorf("errors.As failed: %v", target)
	}
}

func TestPersistenceError_MatchesBothCauses(t *testing.T) {
	t.Parallel()

	owner := Owner{Type: "Invoice", ID: uuid.New()}
	err := &PersistenceError{Op: "insert entry", Owner: owner, Err: ErrConflict}

	if !errors.Is(err, ErrPersistence) {
		t.Error("errors.Is(err, ErrPersistence) = false")
	}
	if !errors.Is(err, ErrConflict) {
		t.Error("errors.Is(err, ErrConflict) = false")
	}
	if !strings.Contains(err.Error(), owner.ID.String()) {
		t.Errorf("Error() = %q, want owner id", err.Error())
	}
}

func TestNonMonotonicVersion_IsConflict(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrNonMonotonicVersion, ErrConflict) {
		t.Fatal("ErrNonMonotonicVersion should wrap ErrConflict")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
		ErrConflict, ErrPersistence, ErrUntrackedAttribute,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
