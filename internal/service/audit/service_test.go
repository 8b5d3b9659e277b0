package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/snaptrail/internal/config"
	"github.com/heartmarshall/snaptrail/internal/domain"
)

//go:generate moq -out entry_repo_mock_test.go -pkg audit . entryRepo
//go:generate moq -out type_registry_mock_test.go -pkg audit . typeRegistry
//go:generate moq -out tx_manager_mock_test.go -pkg audit . txManager

// ---------------------------------------------------------------------------
// Test records
// ---------------------------------------------------------------------------

// invoice is a plain trackable record with no optional capabilities.
type invoice struct {
	id     uuid.UUID
	status string
	amount int
	note   *string
}

func (r *invoice) AuditType() string  { return "Invoice" }
func (r *invoice) AuditID() uuid.UUID { return r.id }

func (r *invoice) TrackedValue(attr string) (any, bool) {
	switch attr {
	case "status":
		return r.status, true
	case "amount":
		return r.amount, true
	case "note":
		return r.note, true
	}
	return nil, false
}

// contract implements every optional capability.
type contract struct {
	id      uuid.UUID
	title   string
	actor   string
	action  string
	tag     string
	version int64
}

func (r *contract) AuditType() string       { return "Contract" }
func (r *contract) AuditID() uuid.UUID      { return r.id }
func (r *contract) AuditActor() string      { return r.actor }
func (r *contract) AuditAction() string     { return r.action }
func (r *contract) AuditTag() string        { return r.tag }
func (r *contract) NextAuditVersion() int64 { return r.version }

func (r *contract) TrackedValue(attr string) (any, bool) {
	if attr == "title" {
		return r.title, true
	}
	return nil, false
}

// draft is declared with derived versioning but cannot derive versions.
type draft struct{ invoice }

func (r *draft) AuditType() string { return "Draft" }

func testRegistry() *domain.Registry {
	r := domain.NewRegistry()
	r.MustRegister(domain.TypeDecl{
		Name:       "Invoice",
		OwnerType:  "invoices",
		Attributes: []string{"status", "amount", "note"},
		Versioning: domain.VersioningAutoIncrement,
	})
	r.MustRegister(domain.TypeDecl{
		Name:       "Contract",
		Attributes: []string{"title"},
		Versioning: domain.VersioningDerived,
	})
	r.MustRegister(domain.TypeDecl{
		Name:       "Draft",
		Attributes: []string{"status"},
		Versioning: domain.VersioningDerived,
	})
	return r
}

// ---------------------------------------------------------------------------
// In-memory entry store built on entryRepoMock
// ---------------------------------------------------------------------------

type memStore struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (m *memStore) ofOwner(owner domain.Owner) []domain.AuditEntry {
	var out []domain.AuditEntry
	for _, e := range m.entries {
		if e.Owner == owner {
			out = append(out, e)
		}
	}
	return out
}

func (m *memStore) snapshot(owner domain.Owner) []domain.AuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ofOwner(owner)
}

func versionOf(e domain.AuditEntry) int64 {
	if e.Version == nil {
		return 0
	}
	return *e.Version
}

func ordered(entries []domain.AuditEntry, byVersion bool) []domain.AuditEntry {
	out := append([]domain.AuditEntry(nil), entries...)
	if byVersion {
		sort.SliceStable(out, func(i, j int) bool { return versionOf(out[i]) < versionOf(out[j]) })
	}
	return out
}

// memoryRepo returns an entryRepoMock backed by an in-memory store.
func memoryRepo() (*entryRepoMock, *memStore) {
	store := &memStore{}
	repo := &entryRepoMock{
		LockOwnerFunc: func(ctx context.Context, owner domain.Owner) error {
			return nil
		},
		CreateFunc: func(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			if entry.Version != nil {
				for _, e := range store.ofOwner(entry.Owner) {
					if e.Version != nil && *e.Version == *entry.Version {
						return domain.AuditEntry{}, fmt.Errorf("audit_entry %s: %w", entry.ID, domain.ErrConflict)
					}
				}
			}
			store.entries = append(store.entries, entry)
			return entry, nil
		},
		LatestFunc: func(ctx context.Context, owner domain.Owner, byVersion bool) (domain.AuditEntry, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			all := ordered(store.ofOwner(owner), byVersion)
			if len(all) == 0 {
				return domain.AuditEntry{}, domain.ErrNotFound
			}
			return all[len(all)-1], nil
		},
		ListFunc: func(ctx context.Context, owner domain.Owner, filter domain.EntryFilter) ([]domain.AuditEntry, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			all := ordered(store.ofOwner(owner), filter.ByVersion)
			if filter.Limit > 0 && len(all) > filter.Limit {
				all = all[len(all)-filter.Limit:]
			}
			return all, nil
		},
		MaxVersionFunc: func(ctx context.Context, owner domain.Owner) (int64, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			var highest int64
			for _, e := range store.ofOwner(owner) {
				if v := versionOf(e); v > highest {
					highest = v
				}
			}
			return highest, nil
		},
		SetTagFunc: func(ctx context.Context, id uuid.UUID, tag string) error {
			store.mu.Lock()
			defer store.mu.Unlock()
			for i := range store.entries {
				if store.entries[i].ID == id {
					store.entries[i].Tag = &tag
					return nil
				}
			}
			return domain.ErrNotFound
		},
	}
	return repo, store
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func newTestService(t *testing.T, repo *entryRepoMock, tx *txManagerMock) *Service {
	t.Helper()
	svc := NewService(slog.Default(), testRegistry(), repo, tx, config.AuditConfig{DefaultAction: "update"})
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc
}

func seed(store *memStore, owner domain.Owner, snaps ...domain.Snapshot) []domain.AuditEntry {
	store.mu.Lock()
	defer store.mu.Unlock()
	for i, s := range snaps {
		v := int64(i + 1)
		store.entries = append(store.entries, domain.AuditEntry{
			ID:       uuid.New(),
			Owner:    owner,
			Snapshot: s,
			Action:   domain.ActionUpdate,
			Version:  &v,
		})
	}
	return store.ofOwner(owner)
}

func snapOf(kv ...any) domain.Snapshot {
	var s domain.Snapshot
	for i := 0; i+1 < len(kv); i += 2 {
		s.Set(kv[i].(string), kv[i+1])
	}
	return s
}

func invoiceOwner(r *invoice) domain.Owner {
	return domain.Owner{Type: "invoices", ID: r.id}
}
