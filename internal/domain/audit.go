package domain

import (
	"time"

	"github.com/google/uuid"
)

// Owner identifies the record an audit entry belongs to. Type is the
// polymorphic owner tag, not necessarily the registered type name.
type Owner struct {
	Type string
	ID   uuid.UUID
}

// LockKey is the string used to serialize writers of one owner.
func (o Owner) LockKey() string {
	return o.Type + ":" + o.ID.String()
}

// AuditEntry is one persisted snapshot plus its metadata.
// Only Tag may change after the entry is persisted.
type AuditEntry struct {
	ID        uuid.UUID
	Owner     Owner
	Snapshot  Snapshot
	Action    Action
	Version   *int64
	Tag       *string
	Actor     *string
	CreatedAt time.Time
}

// Change is the before/after pair of a single attribute.
type Change struct {
	Old  any
	New  any
	Kind ChangeKind
}
