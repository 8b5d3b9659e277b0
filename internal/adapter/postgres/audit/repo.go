// Package audit implements the audit entry store using PostgreSQL.
// Entries are append-only; the tag column is the only one ever updated.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/snaptrail/internal/adapter/postgres"
	"github.com/heartmarshall/snaptrail/internal/domain"
)

const table = "audit_entries"

var columns = []string{
	"id", "seq", "owner_type", "owner_id", "snapshot",
	"action", "version", "tag", "actor", "created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides audit entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// entryRow mirrors one audit_entries row.
type entryRow struct {
	ID        uuid.UUID `db:"id"`
	Seq       int64     `db:"seq"`
	OwnerType string    `db:"owner_type"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Snapshot  []byte    `db:"snapshot"`
	Action    string    `db:"action"`
	Version   *int64    `db:"version"`
	Tag       *string   `db:"tag"`
	Actor     *string   `db:"actor"`
	CreatedAt time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns it as persisted.
func (r *Repo) Create(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	snapshotJSON, err := json.Marshal(entry.Snapshot)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit_entry marshal snapshot: %w", err)
	}

	query, args, err := psql.Insert(table).
		Columns("id", "owner_type", "owner_id", "snapshot", "action", "version", "tag", "actor", "created_at").
		Values(
			entry.ID, entry.Owner.Type, entry.Owner.ID, string(snapshotJSON),
			string(entry.Action), entry.Version, entry.Tag, entry.Actor, entry.CreatedAt,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("build insert audit_entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return domain.AuditEntry{}, postgres.MapError(err, "audit_entry", entry.ID)
	}

	return toDomainEntry(row)
}

// SetTag overwrites the tag of an existing entry.
func (r *Repo) SetTag(ctx context.Context, id uuid.UUID, tag string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Update(table).
		Set("tag", tag).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update audit_entry tag: %w", err)
	}

	tagResult, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "audit_entry", id)
	}
	if tagResult.RowsAffected() == 0 {
		return fmt.Errorf("audit_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// LockOwner takes a transaction-scoped advisory lock on owner, serializing
// concurrent writers of the same record until the transaction ends.
// It must run inside TxManager.RunInTx.
func (r *Repo) LockOwner(ctx context.Context, owner domain.Owner) error {
	tx, ok := postgres.TxFromCtx(ctx)
	if !ok {
		return errors.New("lock audit owner: no transaction in context")
	}

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, owner.LockKey()); err != nil {
		return postgres.MapError(err, "audit_owner", owner.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Latest returns the newest entry of owner: highest version when byVersion,
// most recently inserted otherwise. Returns domain.ErrNotFound when empty.
func (r *Repo) Latest(ctx context.Context, owner domain.Owner, byVersion bool) (domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := selectByOwner(owner).
		OrderBy(orderDesc(byVersion)...).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("build select latest audit_entry: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.AuditEntry{}, fmt.Errorf("audit_entry of %s %s: %w", owner.Type, owner.ID, domain.ErrNotFound)
		}
		return domain.AuditEntry{}, postgres.MapError(err, "audit_owner", owner.ID)
	}

	return toDomainEntry(row)
}

// List returns the entries of owner oldest first. Every call reads the
// store, so callers always observe version order as persisted.
func (r *Repo) List(ctx context.Context, owner domain.Owner, filter domain.EntryFilter) ([]domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	// Newest first so Limit keeps the tail of the history; reversed below.
	b := selectByOwner(owner).OrderBy(orderDesc(filter.ByVersion)...)
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select audit_entries: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "audit_owner", owner.ID)
	}

	entries := make([]domain.AuditEntry, len(rows))
	for i, row := range rows {
		e, err := toDomainEntry(row)
		if err != nil {
			return nil, err
		}
		entries[len(rows)-1-i] = e
	}
	return entries, nil
}

// MaxVersion returns the highest version stored for owner, or 0.
func (r *Repo) MaxVersion(ctx context.Context, owner domain.Owner) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Select("COALESCE(MAX(version), 0)").
		From(table).
		Where(sq.Eq{"owner_type": owner.Type}).
		Where(sq.Eq{"owner_id": owner.ID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build select max version: %w", err)
	}

	var v int64
	if err := q.QueryRow(ctx, query, args...).Scan(&v); err != nil {
		return 0, postgres.MapError(err, "audit_owner", owner.ID)
	}
	return v, nil
}

// Count returns the number of entries stored for owner.
func (r *Repo) Count(ctx context.Context, owner domain.Owner) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Select("count(*)").
		From(table).
		Where(sq.Eq{"owner_type": owner.Type}).
		Where(sq.Eq{"owner_id": owner.ID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count audit_entries: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "audit_owner", owner.ID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func selectByOwner(owner domain.Owner) sq.SelectBuilder {
	return psql.Select(columns...).
		From(table).
		Where(sq.Eq{"owner_type": owner.Type}).
		Where(sq.Eq{"owner_id": owner.ID})
}

func orderDesc(byVersion bool) []string {
	if byVersion {
		return []string{"version DESC NULLS LAST", "seq DESC"}
	}
	return []string{"seq DESC"}
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

func toDomainEntry(row entryRow) (domain.AuditEntry, error) {
	entry := domain.AuditEntry{
		ID:        row.ID,
		Owner:     domain.Owner{Type: row.OwnerType, ID: row.OwnerID},
		Action:    domain.Action(row.Action),
		Version:   row.Version,
		Tag:       row.Tag,
		Actor:     row.Actor,
		CreatedAt: row.CreatedAt,
	}

	if len(row.Snapshot) > 0 {
		if err := json.Unmarshal(row.Snapshot, &entry.Snapshot); err != nil {
			return domain.AuditEntry{}, fmt.Errorf("audit_entry %s unmarshal snapshot: %w", row.ID, err)
		}
	}

	return entry, nil
}
