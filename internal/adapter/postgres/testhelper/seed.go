package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewOwner returns an owner with a unique type tag, so tests sharing the
// container never see each other's entries.
func NewOwner(prefix string) domain.Owner {
	return domain.Owner{Type: prefix + "-" + uniqueSuffix(), ID: uuid.New()}
}

// SeedEntries inserts one "update" entry per snapshot, oldest first, with
// staggered timestamps. versioned entries get versions 1..n.
// Returns the entries as inserted.
func SeedEntries(t *testing.T, pool *pgxpool.Pool, owner domain.Owner, versioned bool, snaps ...domain.Snapshot) []domain.AuditEntry {
	t.Helper()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	out := make([]domain.AuditEntry, 0, len(snaps))
	for i, s := range snaps {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("testhelper: SeedEntries marshal snapshot %d: %v", i, err)
		}

		entry := domain.AuditEntry{
			ID:        uuid.New(),
			Owner:     owner,
			Snapshot:  s,
			Action:    domain.ActionUpdate,
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		}
		if versioned {
			v := int64(i + 1)
			entry.Version = &v
		}

		_, err = pool.Exec(ctx,
			`INSERT INTO audit_entries (id, owner_type, owner_id, snapshot, action, version, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			entry.ID, owner.Type, owner.ID, string(data), string(entry.Action), entry.Version, entry.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedEntries insert %d: %v", i, err)
		}
		out = append(out, entry)
	}
	return out
}

// CountEntries returns the number of stored entries of owner.
func CountEntries(t *testing.T, pool *pgxpool.Pool, owner domain.Owner) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM audit_entries WHERE owner_type = $1 AND owner_id = $2`,
		owner.Type, owner.ID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountEntries: %v", err)
	}
	return n
}
