package audit

import (
	"context"
	"fmt"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

// nextVersion allocates the version of the next entry of owner.
// It must run inside a transaction that holds the owner lock, so the
// read-max and the following insert are atomic with respect to other writers.
func (s *Service) nextVersion(ctx context.Context, cfg domain.TypeConfig, rec domain.Trackable, owner domain.Owner) (int64, error) {
	current, err := s.entries.MaxVersion(ctx, owner)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "read max version", Owner: owner, Err: err}
	}

	switch cfg.Versioning {
	case domain.VersioningAutoIncrement:
		return current + 1, nil

	case domain.VersioningDerived:
		deriver, ok := rec.(domain.VersionDeriver)
		if !ok {
			return 0, domain.NewValidationError("versioning",
				fmt.Sprintf("type %q derives versions but %T does not implement NextAuditVersion", cfg.Name, rec))
		}
		next := deriver.NextAuditVersion()
		if next <= current {
			return 0, &domain.PersistenceError{
				Op:    "allocate version",
				Owner: owner,
				Err:   fmt.Errorf("derived version %d does not exceed %d: %w", next, current, domain.ErrNonMonotonicVersion),
			}
		}
		return next, nil
	}

	return 0, fmt.Errorf("versioning mode %q does not allocate versions", cfg.Versioning)
}
