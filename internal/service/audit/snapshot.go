package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/snaptrail/internal/domain"
	"github.com/heartmarshall/snaptrail/pkg/ctxutil"
)

// Snapshot captures the tracked attributes of rec and appends them as a new
// audit entry. When the content equals the latest entry nothing is written
// and Snapshot returns (nil, nil).
func (s *Service) Snapshot(ctx context.Context, rec domain.Trackable, input SnapshotInput) (*domain.AuditEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.typeOf(rec)
	if err != nil {
		return nil, err
	}

	candidate, err := s.buildEntry(ctx, rec, cfg, input)
	if err != nil {
		return nil, err
	}

	var saved *domain.AuditEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.lock(txCtx, candidate.Owner); err != nil {
			return err
		}

		same, err := s.sameAsLatest(txCtx, cfg, candidate)
		if err != nil {
			return err
		}
		if same {
			return nil
		}

		saved, err = s.appendEntry(txCtx, cfg, rec, candidate)
		return err
	})
	if err != nil {
		return nil, err
	}

	if saved == nil {
		s.log.DebugContext(ctx, "snapshot unchanged, discarded",
			append(ownerAttrs(candidate.Owner), requestAttr(ctx))...)
		return nil, nil
	}

	s.logAppended(ctx, *saved)
	return saved, nil
}

// OnCreated records the state of a freshly created record.
func (s *Service) OnCreated(ctx context.Context, rec domain.Trackable) (*domain.AuditEntry, error) {
	return s.Snapshot(ctx, rec, SnapshotInput{Action: domain.ActionCreate})
}

// OnUpdated records the state of an updated record.
func (s *Service) OnUpdated(ctx context.Context, rec domain.Trackable) (*domain.AuditEntry, error) {
	return s.Snapshot(ctx, rec, SnapshotInput{Action: domain.ActionUpdate})
}

// buildEntry assembles an unversioned candidate entry for rec.
func (s *Service) buildEntry(ctx context.Context, rec domain.Trackable, cfg domain.TypeConfig, input SnapshotInput) (domain.AuditEntry, error) {
	if cfg.Versioning == domain.VersioningDerived {
		if _, ok := rec.(domain.VersionDeriver); !ok {
			return domain.AuditEntry{}, domain.NewValidationError("versioning",
				fmt.Sprintf("type %q derives versions but %T does not implement NextAuditVersion", cfg.Name, rec))
		}
	}

	snap, err := domain.BuildSnapshot(rec, cfg)
	if err != nil {
		return domain.AuditEntry{}, err
	}

	return domain.AuditEntry{
		ID:       uuid.New(),
		Owner:    domain.OwnerOf(rec, cfg),
		Snapshot: snap,
		Action:   s.resolveAction(rec, input.Action),
		Tag:      resolveTag(rec, input.Tag),
		Actor:    resolveActor(ctx, rec),
	}, nil
}

// lock serializes writers of one owner until the transaction ends.
func (s *Service) lock(ctx context.Context, owner domain.Owner) error {
	if err := s.entries.LockOwner(ctx, owner); err != nil {
		return &domain.PersistenceError{Op: "lock owner", Owner: owner, Err: err}
	}
	return nil
}

// sameAsLatest reports whether candidate carries the same content as the
// latest persisted entry. Keys of the stored snapshot that the type no
// longer tracks are ignored.
func (s *Service) sameAsLatest(ctx context.Context, cfg domain.TypeConfig, candidate domain.AuditEntry) (bool, error) {
	prev, err := s.entries.Latest(ctx, candidate.Owner, cfg.Versioning.Enabled())
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, &domain.PersistenceError{Op: "load latest entry", Owner: candidate.Owner, Err: err}
	}
	return prev.Snapshot.Restrict(cfg.Attributes).Equal(candidate.Snapshot), nil
}

// appendEntry stamps the version (if any) and persists candidate.
// It must run inside a transaction that holds the owner lock.
func (s *Service) appendEntry(ctx context.Context, cfg domain.TypeConfig, rec domain.Trackable, candidate domain.AuditEntry) (*domain.AuditEntry, error) {
	if cfg.Versioning.Enabled() {
		v, err := s.nextVersion(ctx, cfg, rec, candidate.Owner)
		if err != nil {
			return nil, err
		}
		candidate.Version = &v
	}
	candidate.CreatedAt = s.now().UTC()

	created, err := s.entries.Create(ctx, candidate)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "append entry", Owner: candidate.Owner, Err: err}
	}
	return &created, nil
}

func (s *Service) logAppended(ctx context.Context, e domain.AuditEntry) {
	attrs := append(ownerAttrs(e.Owner),
		slog.String("entry_id", e.ID.String()),
		slog.String("action", e.Action.String()),
		requestAttr(ctx),
	)
	if e.Version != nil {
		attrs = append(attrs, slog.Int64("version", *e.Version))
	}
	s.log.InfoContext(ctx, "audit entry appended", attrs...)
}

// ---------------------------------------------------------------------------
// Metadata resolution
// ---------------------------------------------------------------------------

// resolveAction: record override, then the caller's action, then the default.
func (s *Service) resolveAction(rec domain.Trackable, requested domain.Action) domain.Action {
	if p, ok := rec.(domain.ActionProvider); ok {
		if a := strings.TrimSpace(p.AuditAction()); a != "" {
			return domain.Action(a)
		}
	}
	if a := strings.TrimSpace(string(requested)); a != "" {
		return domain.Action(a)
	}
	return s.defaultAction
}

// resolveTag: the caller's tag, then the record's.
func resolveTag(rec domain.Trackable, requested *string) *string {
	if requested != nil {
		tag := strings.TrimSpace(*requested)
		return &tag
	}
	if p, ok := rec.(domain.TagProvider); ok {
		if tag := strings.TrimSpace(p.AuditTag()); tag != "" {
			return &tag
		}
	}
	return nil
}

// resolveActor: the record's actor, then the one carried on ctx.
func resolveActor(ctx context.Context, rec domain.Trackable) *string {
	if p, ok := rec.(domain.ActorProvider); ok {
		if actor := strings.TrimSpace(p.AuditActor()); actor != "" {
			return &actor
		}
	}
	if actor, ok := ctxutil.ActorFromCtx(ctx); ok {
		return &actor
	}
	return nil
}
