package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

// LatestEntry returns the newest entry of rec: the highest version when the
// type is versioned, the most recently inserted otherwise. Returns nil when
// rec has no history.
func (s *Service) LatestEntry(ctx context.Context, rec domain.Trackable) (*domain.AuditEntry, error) {
	cfg, err := s.typeOf(rec)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.Latest(ctx, domain.OwnerOf(rec, cfg), cfg.Versioning.Enabled())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest audit entry: %w", err)
	}
	return &entry, nil
}

// Entries returns the whole history of rec, oldest first.
func (s *Service) Entries(ctx context.Context, rec domain.Trackable) ([]domain.AuditEntry, error) {
	cfg, err := s.typeOf(rec)
	if err != nil {
		return nil, err
	}
	return s.history(ctx, cfg, domain.OwnerOf(rec, cfg), 0)
}
