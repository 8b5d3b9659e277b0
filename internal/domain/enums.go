package domain

// Action labels the lifecycle event that produced an audit entry.
// It is free text; the constants below are the labels the engine emits itself.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

func (a Action) String() string { return string(a) }

// VersioningMode selects how audit entries of a record type are versioned.
type VersioningMode string

const (
	// VersioningInherit takes the mode of the parent type (Disabled at the root).
	VersioningInherit       VersioningMode = ""
	VersioningDisabled      VersioningMode = "disabled"
	VersioningAutoIncrement VersioningMode = "auto_increment"
	VersioningDerived       VersioningMode = "derived"
)

func (m VersioningMode) String() string { return string(m) }

func (m VersioningMode) IsValid() bool {
	switch m {
	case VersioningInherit, VersioningDisabled, VersioningAutoIncrement, VersioningDerived:
		return true
	}
	return false
}

// Enabled reports whether entries carry a version number.
func (m VersioningMode) Enabled() bool {
	return m == VersioningAutoIncrement || m == VersioningDerived
}

// ChangeKind classifies one attribute of a Diff.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeChanged ChangeKind = "changed"
	ChangeRemoved ChangeKind = "removed"
)

func (k ChangeKind) String() string { return string(k) }
