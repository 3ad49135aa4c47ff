package prompt

import (
	"fmt"
	"sort"
)

// ErrUnknownTemplate is wrapped by Registry lookups that miss.
var ErrUnknownTemplate = fmt.Errorf("prompt: unknown template type")

// Webhook carries the metadata attached to delivery payloads for a
// document type. Template names the downstream document file when one
// exists; some document types have none.
type Webhook struct {
	Type     string
	Template string
}

// Definition binds a document type to its compiled prompt template and
// webhook metadata.
type Definition struct {
	Type     string
	Title    string
	Template *Template
	Webhook  Webhook
}

// Registry holds prompt templates keyed by document type. Populate it once
// at startup; lookups are read-only and safe for concurrent use.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a template definition. Duplicate types are configuration
// errors.
func (r *Registry) Register(def Definition) error {
	if def.Type == "" {
		return fmt.Errorf("prompt: template type is required")
	}
	if def.Template == nil {
		return fmt.Errorf("prompt: template %q has no compiled template", def.Type)
	}
	if _, exists := r.defs[def.Type]; exists {
		return fmt.Errorf("prompt: template %q already registered", def.Type)
	}
	r.defs[def.Type] = def
	return nil
}

// Template returns the named definition or fails with ErrUnknownTemplate.
func (r *Registry) Template(docType string) (Definition, error) {
	def, ok := r.defs[docType]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, docType)
	}
	return def, nil
}

// Types returns the sorted list of registered document types.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.defs))
	for t := range r.defs {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Has reports whether a document type is registered.
func (r *Registry) Has(docType string) bool {
	_, ok := r.defs[docType]
	return ok
}
