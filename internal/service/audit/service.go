// Package audit records attribute-level snapshots of trackable records and
// answers questions about their history.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/snaptrail/internal/config"
	"github.com/heartmarshall/snaptrail/internal/domain"
	"github.com/heartmarshall/snaptrail/pkg/ctxutil"
)

type entryRepo interface {
	Create(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error)
	Latest(ctx context.Context, owner domain.Owner, byVersion bool) (domain.AuditEntry, error)
	List(ctx context.Context, owner domain.Owner, filter domain.EntryFilter) ([]domain.AuditEntry, error)
	MaxVersion(ctx context.Context, owner domain.Owner) (int64, error)
	SetTag(ctx context.Context, id uuid.UUID, tag string) error
	LockOwner(ctx context.Context, owner domain.Owner) error
}

type typeRegistry interface {
	Lookup(name string) (domain.TypeConfig, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the auditor: it snapshots records, tags entries and walks history.
type Service struct {
	log           *slog.Logger
	types         typeRegistry
	entries       entryRepo
	tx            txManager
	defaultAction domain.Action
	now           func() time.Time
}

// NewService creates a new audit service.
func NewService(
	logger *slog.Logger,
	types typeRegistry,
	entries entryRepo,
	tx txManager,
	cfg config.AuditConfig,
) *Service {
	action := domain.Action(strings.TrimSpace(cfg.DefaultAction))
	if action == "" {
		action = domain.ActionUpdate
	}
	return &Service{
		log:           logger.With("service", "audit"),
		types:         types,
		entries:       entries,
		tx:            tx,
		defaultAction: action,
		now:           time.Now,
	}
}

// typeOf resolves the registered configuration of rec's type.
func (s *Service) typeOf(rec domain.Trackable) (domain.TypeConfig, error) {
	cfg, err := s.types.Lookup(rec.AuditType())
	if err != nil {
		return domain.TypeConfig{}, fmt.Errorf("audited type %q: %w", rec.AuditType(), err)
	}
	return cfg, nil
}

// history returns every entry of rec's owner, oldest first, in the order that
// defines "latest" for its versioning mode.
func (s *Service) history(ctx context.Context, cfg domain.TypeConfig, owner domain.Owner, limit int) ([]domain.AuditEntry, error) {
	entries, err := s.entries.List(ctx, owner, domain.EntryFilter{
		ByVersion: cfg.Versioning.Enabled(),
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}

func ownerAttrs(owner domain.Owner) []any {
	return []any{
		slog.String("owner_type", owner.Type),
		slog.String("owner_id", owner.ID.String()),
	}
}

func requestAttr(ctx context.Context) slog.Attr {
	return slog.String("request_id", ctxutil.RequestIDFromCtx(ctx))
}
