package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Snapshot is an ordered mapping from tracked attribute name to value.
// The zero value is an empty snapshot ready to use.
type Snapshot struct {
	keys   []string
	values map[string]any
}

// NewSnapshot builds a Snapshot from keys in order, taking values from m.
// Keys missing from m are stored as nil.
func NewSnapshot(keys []string, m map[string]any) Snapshot {
	var s Snapshot
	for _, k := range keys {
		s.Set(k, m[k])
	}
	return s
}

// Set assigns v to key, appending key if it is new.
func (s *Snapshot) Set(key string, v any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// Get returns the value stored under key.
func (s Snapshot) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s Snapshot) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of keys.
func (s Snapshot) Len() int { return len(s.keys) }

// Keys returns the keys in insertion order.
func (s Snapshot) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Map returns an unordered copy of the snapshot.
func (s Snapshot) Map() map[string]any {
	out := make(map[string]any, len(s.keys))
	for _, k := range s.keys {
		out[k] = s.values[k]
	}
	return out
}

// Restrict returns a snapshot holding only the given keys, in s's order.
func (s Snapshot) Restrict(keys []string) Snapshot {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}
	var out Snapshot
	for _, k := range s.keys {
		if _, ok := allowed[k]; ok {
			out.Set(k, s.values[k])
		}
	}
	return out
}

// Equal reports whether both snapshots have the same size and every key maps
// to an equal value in both. Key order is not significant.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, k := range s.keys {
		ov, ok := other.values[k]
		if !ok || !ValuesEqual(s.values[k], ov) {
			return false
		}
	}
	return true
}

func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, s.values[k])
	}
	b.WriteByte('}')
	return b.String()
}

// ValuesEqual compares two snapshot values in the shape they take after a
// reload from storage, so a value built in memory equals its stored form
// (int 1 and int64 1, a struct and the object it encodes to, a nil pointer
// and nil, time.Time and its RFC 3339 string). Values that cannot be encoded
// fall back to reflect.DeepEqual.
func ValuesEqual(a, b any) bool {
	ca, errA := canonicalJSON(a)
	cb, errB := canonicalJSON(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return bytes.Equal(ca, cb)
}

// canonicalJSON encodes v, decodes it the way UnmarshalJSON does and encodes
// the result again. Objects come out with sorted keys whatever their source.
func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeNumbers(decoded))
}

// MarshalJSON encodes the snapshot as a JSON object with keys in order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, fmt.Errorf("snapshot attribute %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping its key order. Integral numbers
// decode to int64, other numbers to float64.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if tok == nil {
		*s = Snapshot{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("snapshot: expected object, got %v", tok)
	}

	var out Snapshot
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("snapshot: expected string key, got %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("snapshot attribute %q: %w", key, err)
		}
		out.Set(key, normalizeNumbers(v))
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	*s = out
	return nil
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, inner := range t {
			t[k] = normalizeNumbers(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = normalizeNumbers(inner)
		}
		return t
	default:
		return v
	}
}
