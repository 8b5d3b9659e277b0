package audit

import (
	"context"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

// AuditedChanges diffs the two most recent entries of rec. The result is
// empty when rec has fewer than two entries.
func (s *Service) AuditedChanges(ctx context.Context, rec domain.Trackable, opts ...domain.DiffOption) (domain.Diff, error) {
	cfg, err := s.typeOf(rec)
	if err != nil {
		return nil, err
	}

	recent, err := s.history(ctx, cfg, domain.OwnerOf(rec, cfg), 2)
	if err != nil {
		return nil, err
	}
	if len(recent) < 2 {
		return domain.Diff{}, nil
	}

	return domain.DiffSnapshots(recent[0].Snapshot, recent[1].Snapshot, opts...), nil
}
