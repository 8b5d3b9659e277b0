package domain

// LastChange walks entries (oldest first) from the newest adjacent pair
// backwards and returns the first change of attr. ok is false when there are
// fewer than two entries or attr never changed.
//
// The scan is linear in the history length.
func LastChange(entries []AuditEntry, attr string) (change Change, ok bool) {
	for i := len(entries) - 1; i > 0; i-- {
		d := DiffSnapshots(entries[i-1].Snapshot, entries[i].Snapshot, Only(attr))
		if c, found := d[attr]; found {
			return c, true
		}
	}
	return Change{}, false
}
