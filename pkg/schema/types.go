// Package schema defines the declarative form definitions interpreted by the
// form builder: ordered sections of typed fields, nested conditional
// sub-fields, and named references into the static data registry. Definitions
// are loaded once and treated as immutable afterwards.
package schema

// FieldKind enumerates the supported field types. The builder switches
// exhaustively over this set; adding a kind is a compile-visible change.
type FieldKind string

const (
	KindText                FieldKind = "text"
	KindDate                FieldKind = "date"
	KindTime                FieldKind = "time"
	KindNumber              FieldKind = "number"
	KindTel                 FieldKind = "tel"
	KindEmail               FieldKind = "email"
	KindTextarea            FieldKind = "textarea"
	KindSelect              FieldKind = "select"
	KindCheckbox            FieldKind = "checkbox"
	KindCheckboxGroup       FieldKind = "checkbox-group"
	KindRadioGroup          FieldKind = "radio-group"
	KindCheckboxConditional FieldKind = "checkbox-conditional"
)

// Valid reports whether the kind is one of the supported field types.
func (k FieldKind) Valid() bool {
	switch k {
	case KindText, KindDate, KindTime, KindNumber, KindTel, KindEmail,
		KindTextarea, KindSelect, KindCheckbox, KindCheckboxGroup,
		KindRadioGroup, KindCheckboxConditional:
		return true
	}
	return false
}

// Discrete reports whether the kind has a discrete value domain, which is the
// precondition for carrying a Conditional map.
func (k FieldKind) Discrete() bool {
	switch k {
	case KindSelect, KindRadioGroup, KindCheckbox, KindCheckboxConditional:
		return true
	}
	return false
}

// Default values "today" and "now" resolve against the clock at build time;
// any other non-empty string is used literally.
const (
	DefaultToday = "today"
	DefaultNow   = "now"
)

// Options is either a named reference into the static data registry or an
// inline literal list. Exactly one of Ref and Values is set.
type Options struct {
	Ref    string
	Values []OptionValue
}

// IsZero reports whether no options were declared.
func (o Options) IsZero() bool {
	return o.Ref == "" && len(o.Values) == 0
}

// OptionValue is one inline option.
type OptionValue struct {
	ID    string `yaml:"id"`
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// FieldDefinition describes a single input. IDs must be unique within a
// rendered form instance; the builder enforces this.
type FieldDefinition struct {
	Kind        FieldKind
	ID          string
	// Name is the shared group name for radio groups.
	Name        string
	Label       string
	Required    bool
	Placeholder string
	Rows        int
	Min         string
	Step        string
	// Default is "today", "now", or a literal value.
	Default string
	Options   Options
	OptionKey string
	LabelKey  string
	// Prefix namespaces generated per-option identifiers in checkbox groups.
	Prefix string
	// DisplayFull shows the option label instead of its value in checkbox
	// groups (used for ADVO condition text).
	DisplayFull bool
	// Conditional maps a trigger value to the sub-fields revealed when this
	// field takes that value. Only meaningful on kinds with discrete value
	// domains.
	Conditional map[string][]FieldDefinition
	// ConditionalID and ConditionalOptions configure checkbox-conditional
	// fields: the group revealed while the checkbox is checked.
	ConditionalID      string
	ConditionalOptions Options
}

// SectionKind enumerates section layouts.
type SectionKind string

const (
	SectionPlain       SectionKind = "plain"
	SectionCharges     SectionKind = "charges-selector"
	SectionConditional SectionKind = "conditional-section"
)

// SectionDefinition is one ordered block of a form. Order is display order.
type SectionDefinition struct {
	Title string
	Kind  SectionKind
	// Fields applies to plain sections.
	Fields []FieldDefinition
	// IncludeClientCharges merges the client's recorded charges into a
	// charges-selector section.
	IncludeClientCharges bool
	// AdditionalFields trail the generated charge groups in a
	// charges-selector section.
	AdditionalFields []FieldDefinition
	// Trigger and Content apply to conditional sections: Content maps a
	// trigger value to the name of a shared special section.
	Trigger *FieldDefinition
	Content map[string]string
}

// FormDefinition is a named ordered list of sections.
type FormDefinition struct {
	Name     string
	Sections []SectionDefinition
}
