package audit

import (
	"context"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

// LastChangeOf finds the most recent transition of attr in rec's history.
// Returns nil when the attribute never changed. The walk reads the whole
// history and is linear in its length.
func (s *Service) LastChangeOf(ctx context.Context, rec domain.Trackable, attr string) (*domain.Change, error) {
	cfg, err := s.typeOf(rec)
	if err != nil {
		return nil, err
	}
	if !cfg.Tracks(attr) {
		return nil, &domain.UntrackedAttributeError{Attribute: attr, Type: cfg.Name}
	}

	entries, err := s.history(ctx, cfg, domain.OwnerOf(rec, cfg), 0)
	if err != nil {
		return nil, err
	}

	change, ok := domain.LastChange(entries, attr)
	if !ok {
		return nil, nil
	}
	return &change, nil
}
