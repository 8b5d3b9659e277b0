package audit

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

// TagLatestWith sets the tag of rec's latest entry. When rec has no entries
// yet, a new entry carrying the tag is created instead.
// Returns the tagged entry.
func (s *Service) TagLatestWith(ctx context.Context, rec domain.Trackable, tag string) (*domain.AuditEntry, error) {
	if errs := validateTag(tag); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	tag = strings.TrimSpace(tag)

	cfg, err := s.typeOf(rec)
	if err != nil {
		return nil, err
	}
	owner := domain.OwnerOf(rec, cfg)

	var (
		tagged  *domain.AuditEntry
		created bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.lock(txCtx, owner); err != nil {
			return err
		}

		latest, err := s.entries.Latest(txCtx, owner, cfg.Versioning.Enabled())
		switch {
		case errors.Is(err, domain.ErrNotFound):
			candidate, buildErr := s.buildEntry(txCtx, rec, cfg, SnapshotInput{Tag: &tag})
			if buildErr != nil {
				return buildErr
			}
			tagged, err = s.appendEntry(txCtx, cfg, rec, candidate)
			created = err == nil
			return err
		case err != nil:
			return &domain.PersistenceError{Op: "load latest entry", Owner: owner, Err: err}
		}

		if err := s.entries.SetTag(txCtx, latest.ID, tag); err != nil {
			return &domain.PersistenceError{Op: "tag entry", Owner: owner, Err: err}
		}
		latest.Tag = &tag
		tagged = &latest
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.logAppended(ctx, *tagged)
	}
	s.log.InfoContext(ctx, "audit entry tagged",
		append(ownerAttrs(owner),
			slog.String("entry_id", tagged.ID.String()),
			slog.String("tag", tag),
			slog.Bool("created", created),
			requestAttr(ctx),
		)...)

	return tagged, nil
}
