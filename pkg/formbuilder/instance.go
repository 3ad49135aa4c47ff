package formbuilder

import (
	"github.com/goliatone/go-lettergen/pkg/prompt"
	"github.com/goliatone/go-lettergen/pkg/schema"
	"github.com/goliatone/go-lettergen/pkg/visibility"
)

// Option is one materialized choice inside a select, radio or checkbox group.
// The option list is resolved at build time; instances never hold references
// back into the static data registry.
type Option struct {
	ID       string
	Value    string
	Label    string
	Checked  bool
	Disabled bool
}

// FieldInstance is one renderable field produced by the builder. ID is unique
// within the form.
type FieldInstance struct {
	ID          string
	Kind        schema.FieldKind
	Label       string
	Required    bool
	Placeholder string
	Rows        int
	Min         string
	Step        string
	// Name is the shared group name for radio inputs.
	Name string
	// Value holds the resolved default ("today"/"now" resolved against the
	// clock exactly once at build time).
	Value   string
	Options []Option
	// Prefix namespaces the per-option identifiers of checkbox groups.
	Prefix string
	// Group names the conditional group this field belongs to; empty for
	// always-visible fields.
	Group string
}

// SectionInstance is one rendered section.
type SectionInstance struct {
	Title string
	// ClientCharges carries the read-only display of the client's recorded
	// charges for charges-selector sections.
	ClientCharges string
	Fields        []FieldInstance
}

// FormInstance is the builder output: ordered sections plus the visibility
// rules extracted from the schema's trigger fields.
type FormInstance struct {
	Type     string
	Sections []SectionInstance
	Rules    *visibility.RuleSet
}

// Fields returns every field instance in display order.
func (f *FormInstance) Fields() []FieldInstance {
	var out []FieldInstance
	for _, section := range f.Sections {
		out = append(out, section.Fields...)
	}
	return out
}

// Field looks up a field instance by id.
func (f *FormInstance) Field(id string) (FieldInstance, bool) {
	for _, section := range f.Sections {
		for _, field := range section.Fields {
			if field.ID == id {
				return field, true
			}
		}
	}
	return FieldInstance{}, false
}

// VisibleValues returns a copy of bag without the entries belonging to
// fields hidden under the given trigger state. Collection preserves hidden
// values; this is the opt-in filter for callers that only want what the
// current state shows. Keys that match no field or option id (seeded client
// data, derived tokens) pass through untouched.
func (f *FormInstance) VisibleValues(state visibility.State, bag prompt.DataBag) prompt.DataBag {
	shown := visibility.NewEngine(f.Rules).Visible(state)

	groupOf := make(map[string]string)
	for _, field := range f.Fields() {
		groupOf[field.ID] = field.Group
		for _, opt := range field.Options {
			groupOf[opt.ID] = field.Group
		}
	}

	out := make(prompt.DataBag, len(bag))
	for key, value := range bag {
		if group, known := groupOf[key]; known && group != "" && !shown[group] {
			continue
		}
		out[key] = value
	}
	return out
}

// RequiredFields returns the ids of fields marked required, in display order.
func (f *FormInstance) RequiredFields() []string {
	var out []string
	for _, field := range f.Fields() {
		if field.Required {
			out = append(out, field.ID)
		}
	}
	return out
}
