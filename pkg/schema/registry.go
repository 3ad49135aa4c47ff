package schema

import (
	"fmt"
	"sort"
)

// ErrUnknownForm is wrapped by Form lookups that miss. It indicates a
// schema/registry mismatch and must surface as a hard failure.
var ErrUnknownForm = fmt.Errorf("schema: unknown form type")

// Registry holds form definitions and the shared special sections referenced
// by conditional sections. Populate it once at startup; lookups are read-only
// and safe for concurrent use.
type Registry struct {
	forms   map[string]FormDefinition
	special map[string][]FieldDefinition
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		forms:   make(map[string]FormDefinition),
		special: make(map[string][]FieldDefinition),
	}
}

// Register adds a form definition. Duplicate names are configuration errors.
func (r *Registry) Register(def FormDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("schema: form name is required")
	}
	if _, exists := r.forms[def.Name]; exists {
		return fmt.Errorf("schema: form %q already registered", def.Name)
	}
	r.forms[def.Name] = def
	return nil
}

// RegisterSpecial adds a named shared section used by conditional sections.
func (r *Registry) RegisterSpecial(name string, fields []FieldDefinition) error {
	if name == "" {
		return fmt.Errorf("schema: special section name is required")
	}
	if _, exists := r.special[name]; exists {
		return fmt.Errorf("schema: special section %q already registered", name)
	}
	r.special[name] = fields
	return nil
}

// Form returns the named form definition or fails with ErrUnknownForm.
func (r *Registry) Form(name string) (FormDefinition, error) {
	def, ok := r.forms[name]
	if !ok {
		return FormDefinition{}, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return def, nil
}

// Special returns the fields of a named shared section.
func (r *Registry) Special(name string) ([]FieldDefinition, bool) {
	fields, ok := r.special[name]
	return fields, ok
}

// Forms returns the sorted list of registered form names.
func (r *Registry) Forms() []string {
	names := make([]string, 0, len(r.forms))
	for name := range r.forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a form is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.forms[name]
	return ok
}
