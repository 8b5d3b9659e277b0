package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

// OwnerEntries returns the stored history of owner, oldest first. Unlike
// Entries it needs no registered type, so the caller picks the ordering.
func (s *Service) OwnerEntries(ctx context.Context, owner domain.Owner, filter domain.EntryFilter) ([]domain.AuditEntry, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}
	if filter.Limit < 0 {
		return nil, domain.NewValidationError("limit", "must be >= 0")
	}

	entries, err := s.entries.List(ctx, owner, filter)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}

// OwnerChanges diffs the two most recent entries of owner.
func (s *Service) OwnerChanges(ctx context.Context, owner domain.Owner, byVersion bool, opts ...domain.DiffOption) (domain.Diff, error) {
	entries, err := s.OwnerEntries(ctx, owner, domain.EntryFilter{ByVersion: byVersion, Limit: 2})
	if err != nil {
		return nil, err
	}
	if len(entries) < 2 {
		return domain.Diff{}, nil
	}
	return domain.DiffSnapshots(entries[0].Snapshot, entries[1].Snapshot, opts...), nil
}

// OwnerLastChange finds the most recent transition of attr in owner's history.
// Returns nil when attr never changed.
func (s *Service) OwnerLastChange(ctx context.Context, owner domain.Owner, byVersion bool, attr string) (*domain.Change, error) {
	if strings.TrimSpace(attr) == "" {
		return nil, domain.NewValidationError("attribute", "required")
	}
	entries, err := s.OwnerEntries(ctx, owner, domain.EntryFilter{ByVersion: byVersion})
	if err != nil {
		return nil, err
	}

	change, ok := domain.LastChange(entries, attr)
	if !ok {
		return nil, nil
	}
	return &change, nil
}

func validateOwner(owner domain.Owner) error {
	var errs []domain.FieldError
	if strings.TrimSpace(owner.Type) == "" {
		errs = append(errs, domain.FieldError{Field: "owner_type", Message: "required"})
	}
	if owner.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
