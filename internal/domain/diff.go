package domain

import "slices"

// Diff maps attribute name to its change between two snapshots.
type Diff map[string]Change

// Attributes returns the changed attribute names, sorted.
func (d Diff) Attributes() []string {
	out := make([]string, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Formatter rewrites a value for presentation in a Diff (e.g. redaction).
type Formatter func(attr string, v any) any

// DiffOption configures DiffSnapshots.
type DiffOption func(*diffOptions)

type diffOptions struct {
	only      map[string]struct{}
	except    map[string]struct{}
	formatter Formatter
}

// Only restricts the diff to the given attributes.
func Only(attrs ...string) DiffOption {
	return func(o *diffOptions) {
		if o.only == nil {
			o.only = make(map[string]struct{}, len(attrs))
		}
		for _, a := range attrs {
			o.only[a] = struct{}{}
		}
	}
}

// Except drops the given attributes from the diff.
func Except(attrs ...string) DiffOption {
	return func(o *diffOptions) {
		if o.except == nil {
			o.except = make(map[string]struct{}, len(attrs))
		}
		for _, a := range attrs {
			o.except[a] = struct{}{}
		}
	}
}

// WithFormatter applies f to the old and new values placed in the diff.
// Comparison always uses the raw values.
func WithFormatter(f Formatter) DiffOption {
	return func(o *diffOptions) { o.formatter = f }
}

func (o *diffOptions) include(attr string) bool {
	if o.only != nil {
		if _, ok := o.only[attr]; !ok {
			return false
		}
	}
	_, excluded := o.except[attr]
	return !excluded
}

func (o *diffOptions) format(attr string, v any) any {
	if o.formatter == nil || v == nil {
		return v
	}
	return o.formatter(attr, v)
}

// DiffSnapshots computes the changes from older to newer. Attributes equal in
// both are omitted; attributes only in newer are added, only in older removed.
func DiffSnapshots(older, newer Snapshot, opts ...DiffOption) Diff {
	var o diffOptions
	for _, opt := range opts {
		opt(&o)
	}

	diff := make(Diff)
	for _, attr := range newer.keys {
		if !o.include(attr) {
			continue
		}
		nv := newer.values[attr]
		ov, existed := older.values[attr]
		switch {
		case !existed:
			diff[attr] = Change{New: o.format(attr, nv), Kind: ChangeAdded}
		case !ValuesEqual(ov, nv):
			diff[attr] = Change{Old: o.format(attr, ov), New: o.format(attr, nv), Kind: ChangeChanged}
		}
	}
	for _, attr := range older.keys {
		if !o.include(attr) || newer.Has(attr) {
			continue
		}
		diff[attr] = Change{Old: o.format(attr, older.values[attr]), Kind: ChangeRemoved}
	}
	return diff
}
