package domain

import "github.com/google/uuid"

// Trackable is implemented by every record whose attributes are audited.
// AuditType must match the name the type was registered under.
type Trackable interface {
	AuditType() string
	AuditID() uuid.UUID
	// TrackedValue returns the current value of a tracked attribute.
	// ok is false when the record does not know the attribute.
	TrackedValue(attr string) (value any, ok bool)
}

// ActorProvider is implemented by records that know who is changing them.
type ActorProvider interface {
	AuditActor() string
}

// ActionProvider overrides the action label of the next entry.
type ActionProvider interface {
	AuditAction() string
}

// TagProvider supplies a tag for the next entry.
type TagProvider interface {
	AuditTag() string
}

// VersionDeriver computes the version of the next entry for types declared
// with VersioningDerived.
type VersionDeriver interface {
	NextAuditVersion() int64
}

// BuildSnapshot reads every tracked attribute of cfg from rec, in declaration order.
// It never mutates rec.
func BuildSnapshot(rec Trackable, cfg TypeConfig) (Snapshot, error) {
	var s Snapshot
	for _, attr := range cfg.Attributes {
		v, ok := rec.TrackedValue(attr)
		if !ok {
			return Snapshot{}, &UntrackedAttributeError{Attribute: attr, Type: cfg.Name}
		}
		s.Set(attr, v)
	}
	return s, nil
}

// OwnerOf returns the owner reference of rec under cfg.
func OwnerOf(rec Trackable, cfg TypeConfig) Owner {
	return Owner{Type: cfg.OwnerType, ID: rec.AuditID()}
}
