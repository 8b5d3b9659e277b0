package domain

// EntryFilter selects the part of an owner's history to read.
type EntryFilter struct {
	// ByVersion orders by version (unversioned entries first), then by
	// insertion. Otherwise entries are ordered by insertion only.
	ByVersion bool
	// Limit keeps only the newest Limit entries. Zero means all.
	Limit int
}
