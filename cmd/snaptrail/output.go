package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var validFormats = []string{formatText, formatJSON, formatYAML}

// entryView is the printable form of an audit entry.
type entryView struct {
	ID        string       `json:"id"                 yaml:"id"`
	OwnerType string       `json:"owner_type"         yaml:"owner_type"`
	OwnerID   string       `json:"owner_id"           yaml:"owner_id"`
	Action    string       `json:"action"             yaml:"action"`
	Version   *int64       `json:"version,omitempty"  yaml:"version,omitempty"`
	Tag       *string      `json:"tag,omitempty"      yaml:"tag,omitempty"`
	Actor     *string      `json:"actor,omitempty"    yaml:"actor,omitempty"`
	CreatedAt time.Time    `json:"created_at"         yaml:"created_at"`
	Snapshot  snapshotView `json:"snapshot"           yaml:"snapshot"`
	Changes   []changeView `json:"changes,omitempty"  yaml:"changes,omitempty"`
}

// changeView is one attribute of a diff.
type changeView struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Kind      string `json:"kind"      yaml:"kind"`
	Old       any    `json:"old"       yaml:"old"`
	New       any    `json:"new"       yaml:"new"`
}

// snapshotView keeps the snapshot's key order in JSON and YAML output.
type snapshotView struct {
	domain.Snapshot
}

// MarshalYAML emits the snapshot as a mapping in stored key order.
func (v snapshotView) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range v.Keys() {
		val, _ := v.Get(key)

		var valNode yaml.Node
		if err := valNode.Encode(val); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&valNode,
		)
	}
	return node, nil
}

func newEntryView(e domain.AuditEntry, changes domain.Diff) entryView {
	v := entryView{
		ID:        e.ID.String(),
		OwnerType: e.Owner.Type,
		OwnerID:   e.Owner.ID.String(),
		Action:    e.Action.String(),
		Version:   e.Version,
		Tag:       e.Tag,
		Actor:     e.Actor,
		CreatedAt: e.CreatedAt.UTC(),
		Snapshot:  snapshotView{e.Snapshot},
	}
	if changes != nil {
		v.Changes = newChangeViews(changes)
	}
	return v
}

// newChangeViews flattens d sorted by attribute name.
func newChangeViews(d domain.Diff) []changeView {
	out := make([]changeView, 0, len(d))
	for _, attr := range d.Attributes() {
		c := d[attr]
		out = append(out, changeView{Attribute: attr, Kind: c.Kind.String(), Old: c.Old, New: c.New})
	}
	return out
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// ---------------------------------------------------------------------------
// Text rendering
// ---------------------------------------------------------------------------

func writeEntriesText(w io.Writer, entries []entryView) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No audit entries found.")
		return
	}
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeEntryText(w, e)
	}
}

func writeEntryText(w io.Writer, e entryView) {
	fmt.Fprintf(w, "entry %s\n", e.ID)
	fmt.Fprintf(w, "  owner:   %s/%s\n", e.OwnerType, e.OwnerID)
	fmt.Fprintf(w, "  action:  %s\n", e.Action)
	if e.Version != nil {
		fmt.Fprintf(w, "  version: %d\n", *e.Version)
	}
	if e.Tag != nil {
		fmt.Fprintf(w, "  tag:     %s\n", *e.Tag)
	}
	if e.Actor != nil {
		fmt.Fprintf(w, "  actor:   %s\n", *e.Actor)
	}
	fmt.Fprintf(w, "  created: %s\n", e.CreatedAt.Format(time.RFC3339Nano))

	fmt.Fprintln(w, "  snapshot:")
	for _, key := range e.Snapshot.Keys() {
		val, _ := e.Snapshot.Get(key)
		fmt.Fprintf(w, "    %s: %s\n", key, formatValue(val))
	}

	if len(e.Changes) > 0 {
		fmt.Fprintln(w, "  changes:")
		for _, c := range e.Changes {
			fmt.Fprintf(w, "    %s\n", formatChange(c))
		}
	}
}

func writeChangesText(w io.Writer, changes []changeView) {
	if len(changes) == 0 {
		fmt.Fprintln(w, "No changes.")
		return
	}
	for _, c := range changes {
		fmt.Fprintln(w, formatChange(c))
	}
}

func formatChange(c changeView) string {
	switch domain.ChangeKind(c.Kind) {
	case domain.ChangeAdded:
		return fmt.Sprintf("+ %s: %s", c.Attribute, formatValue(c.New))
	case domain.ChangeRemoved:
		return fmt.Sprintf("- %s: %s", c.Attribute, formatValue(c.Old))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Attribute, formatValue(c.Old), formatValue(c.New))
	}
}

// formatValue renders v as compact JSON so strings stay quoted and nil reads null.
func formatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
