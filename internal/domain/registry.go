package domain

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// TypeDecl declares a trackable record type.
type TypeDecl struct {
	Name string
	// Parent names an already registered type whose attributes and
	// versioning mode are inherited.
	Parent string
	// OwnerType is the owner tag stored on entries. Defaults to Name.
	OwnerType  string
	Attributes []string
	Versioning VersioningMode
}

// TypeConfig is the resolved, immutable configuration of a registered type.
type TypeConfig struct {
	Name       string
	OwnerType  string
	Attributes []string
	Versioning VersioningMode
}

// Tracks reports whether attr is one of the type's tracked attributes.
func (c TypeConfig) Tracks(attr string) bool {
	return slices.Contains(c.Attributes, attr)
}

// Registry holds the configuration of every trackable type.
// Types are registered once at startup and only read afterwards.
type Registry struct {
	mu    sync.RWMutex
	types map[string]TypeConfig
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]TypeConfig)}
}

// Register validates decl, resolves inheritance against its parent and stores
// the resulting TypeConfig. A parent must be registered before its subtypes.
func (r *Registry) Register(decl TypeDecl) (TypeConfig, error) {
	if err := decl.validate(); err != nil {
		return TypeConfig{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.TrimSpace(decl.Name)
	if _, ok := r.types[name]; ok {
		return TypeConfig{}, fmt.Errorf("type %q: %w", name, ErrAlreadyExists)
	}

	cfg := TypeConfig{
		Name:       name,
		OwnerType:  strings.TrimSpace(decl.OwnerType),
		Attributes: dedupe(decl.Attributes),
		Versioning: decl.Versioning,
	}

	if decl.Parent != "" {
		parent, ok := r.types[decl.Parent]
		if !ok {
			return TypeConfig{}, fmt.Errorf("parent type %q of %q: %w", decl.Parent, name, ErrNotFound)
		}
		// Own attributes come first, inherited ones are appended.
		cfg.Attributes = dedupe(append(cfg.Attributes, parent.Attributes...))
		if cfg.Versioning == VersioningInherit {
			cfg.Versioning = parent.Versioning
		}
	}
	if cfg.Versioning == VersioningInherit {
		cfg.Versioning = VersioningDisabled
	}
	if cfg.OwnerType == "" {
		cfg.OwnerType = name
	}

	r.types[name] = cfg
	return cfg.clone(), nil
}

// MustRegister is like Register but panics on error. Meant for package init.
func (r *Registry) MustRegister(decl TypeDecl) TypeConfig {
	cfg, err := r.Register(decl)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Lookup returns the configuration registered under name.
func (r *Registry) Lookup(name string) (TypeConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.types[name]
	if !ok {
		return TypeConfig{}, fmt.Errorf("type %q: %w", name, ErrNotFound)
	}
	return cfg.clone(), nil
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (d TypeDecl) validate() error {
	var errs []FieldError

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if len(d.Attributes) == 0 && d.Parent == "" {
		errs = append(errs, FieldError{Field: "attributes", Message: "at least one attribute required"})
	}
	for i, a := range d.Attributes {
		if strings.TrimSpace(a) == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("attributes[%d]", i), Message: "required"})
		}
	}
	if !d.Versioning.IsValid() {
		errs = append(errs, FieldError{Field: "versioning", Message: fmt.Sprintf("unknown mode %q", d.Versioning)})
	}
	if d.Parent != "" && d.Parent == d.Name {
		errs = append(errs, FieldError{Field: "parent", Message: "type cannot inherit from itself"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func (c TypeConfig) clone() TypeConfig {
	c.Attributes = slices.Clone(c.Attributes)
	return c
}

// dedupe keeps the first occurrence of every attribute.
func dedupe(attrs []string) []string {
	seen := make(map[string]struct{}, len(attrs))
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		a = strings.TrimSpace(a)
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
