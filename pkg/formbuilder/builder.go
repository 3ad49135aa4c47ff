// Package formbuilder interprets form definitions against the static data
// registry, producing flattened field instances with materialized option
// lists, resolved defaults, and the visibility rules attached to trigger
// fields. The builder never mutates its inputs; schemas and tables remain
// shared read-only state.
package formbuilder

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-lettergen/internal/clock"
	"github.com/goliatone/go-lettergen/pkg/schema"
	"github.com/goliatone/go-lettergen/pkg/staticdata"
	"github.com/goliatone/go-lettergen/pkg/visibility"
)

// Builder turns form definitions into form instances.
type Builder struct {
	schemas *schema.Registry
	tables  *staticdata.Registry
	clock   clock.Clock
}

// BuilderOption configures the builder.
type BuilderOption func(*Builder)

// WithSchemas overrides the schema registry (defaults to the built-in forms).
func WithSchemas(reg *schema.Registry) BuilderOption {
	return func(b *Builder) {
		if reg != nil {
			b.schemas = reg
		}
	}
}

// WithStaticData overrides the static data registry.
func WithStaticData(reg *staticdata.Registry) BuilderOption {
	return func(b *Builder) {
		if reg != nil {
			b.tables = reg
		}
	}
}

// WithClock injects the time source used to resolve "today"/"now" defaults.
func WithClock(c clock.Clock) BuilderOption {
	return func(b *Builder) {
		if c != nil {
			b.clock = c
		}
	}
}

// New constructs a Builder, applying defaults for anything not injected.
func New(options ...BuilderOption) *Builder {
	b := &Builder{
		schemas: schema.Default(),
		tables:  staticdata.Default(),
		clock:   clock.System(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// BuildOption customises a single build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	clientCharges string
}

// WithClientCharges supplies the client's recorded charges for display in
// charges-selector sections. The charges come from the caller, not the schema.
func WithClientCharges(charges string) BuildOption {
	return func(cfg *buildConfig) {
		cfg.clientCharges = charges
	}
}

// Build materializes the named form. Unknown form types fail with
// schema.ErrUnknownForm.
func (b *Builder) Build(formType string, opts ...BuildOption) (*FormInstance, error) {
	def, err := b.schemas.Form(formType)
	if err != nil {
		return nil, err
	}

	cfg := buildConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	st := &buildState{
		builder: b,
		used:    make(map[string]struct{}),
		rules:   visibility.NewRuleSet(),
	}

	form := &FormInstance{Type: formType, Rules: st.rules}
	for i, section := range def.Sections {
		built, err := st.buildSection(section, cfg)
		if err != nil {
			return nil, fmt.Errorf("formbuilder: form %q section %d (%s): %w", formType, i, section.Title, err)
		}
		form.Sections = append(form.Sections, built)
	}
	return form, nil
}

type buildState struct {
	builder *Builder
	used    map[string]struct{}
	rules   *visibility.RuleSet
}

func (st *buildState) buildSection(def schema.SectionDefinition, cfg buildConfig) (SectionInstance, error) {
	section := SectionInstance{Title: def.Title}

	switch def.Kind {
	case schema.SectionCharges:
		if def.IncludeClientCharges {
			section.ClientCharges = cfg.clientCharges
		}
		for _, category := range st.builder.tables.ChargeCategories() {
			field, err := st.chargeGroup(category)
			if err != nil {
				return SectionInstance{}, err
			}
			section.Fields = append(section.Fields, field)
		}
		if err := st.buildFields(def.AdditionalFields, "", &section); err != nil {
			return SectionInstance{}, err
		}

	case schema.SectionConditional:
		if def.Trigger == nil {
			return SectionInstance{}, fmt.Errorf("conditional section has no trigger field")
		}
		if err := st.buildFields([]schema.FieldDefinition{*def.Trigger}, "", &section); err != nil {
			return SectionInstance{}, err
		}
		if len(def.Content) > 0 {
			if err := st.buildConditionalContent(*def.Trigger, def.Content, "", &section); err != nil {
				return SectionInstance{}, err
			}
		}

	default:
		if err := st.buildFields(def.Fields, "", &section); err != nil {
			return SectionInstance{}, err
		}
	}

	return section, nil
}

// buildFields appends instances for the definitions, including the flattened
// contents of any conditional branches. group names the conditional group the
// definitions themselves live in.
func (st *buildState) buildFields(defs []schema.FieldDefinition, group string, section *SectionInstance) error {
	for _, def := range defs {
		instance, err := st.buildField(def, group)
		if err != nil {
			return err
		}
		section.Fields = append(section.Fields, instance)

		switch {
		case def.Kind == schema.KindCheckboxConditional:
			if err := st.buildCheckboxConditional(def, group, section); err != nil {
				return err
			}
		case len(def.Conditional) > 0:
			if err := st.buildConditionalBranches(def, group, section); err != nil {
				return err
			}
		}
	}
	return nil
}

func (st *buildState) buildConditionalBranches(def schema.FieldDefinition, owner string, section *SectionInstance) error {
	groups := make(map[string]string, len(def.Conditional))
	for _, value := range sortedKeys(def.Conditional) {
		gid := groupID(def.ID, value)
		groups[value] = gid
		if err := st.buildFields(def.Conditional[value], gid, section); err != nil {
			return err
		}
	}
	st.rules.Add(visibility.Trigger{
		ID:       def.ID,
		Checkbox: def.Kind == schema.KindCheckbox,
		Groups:   groups,
		Owner:    owner,
	})
	return nil
}

func (st *buildState) buildCheckboxConditional(def schema.FieldDefinition, owner string, section *SectionInstance) error {
	if def.ConditionalID == "" {
		return fmt.Errorf("checkbox-conditional field %q has no conditional id", def.ID)
	}
	options, err := st.resolveOptions(schema.FieldDefinition{
		Kind:    schema.KindCheckboxGroup,
		Options: def.ConditionalOptions,
		Prefix:  def.ConditionalID + "_",
	})
	if err != nil {
		return err
	}
	groupField := FieldInstance{
		ID:      def.ConditionalID,
		Kind:    schema.KindCheckboxGroup,
		Options: options,
		Prefix:  def.ConditionalID + "_",
		Group:   def.ConditionalID,
	}
	if err := st.claimID(groupField.ID); err != nil {
		return err
	}
	section.Fields = append(section.Fields, groupField)

	st.rules.Add(visibility.Trigger{
		ID:       def.ID,
		Checkbox: true,
		Groups:   map[string]string{visibility.CheckedKey: def.ConditionalID},
		Owner:    owner,
	})
	return nil
}

// buildConditionalContent expands a conditional section's special content.
// Distinct content names materialize once each; trigger values sharing a
// content name share the group, which keeps field ids unique while both values
// reveal the same fields.
func (st *buildState) buildConditionalContent(trigger schema.FieldDefinition, content map[string]string, owner string, section *SectionInstance) error {
	groups := make(map[string]string, len(content))
	built := make(map[string]string)

	for _, value := range sortedKeys(content) {
		name := content[value]
		if gid, done := built[name]; done {
			groups[value] = gid
			continue
		}
		fields, ok := st.builder.schemas.Special(name)
		if !ok {
			return fmt.Errorf("conditional section references unknown special section %q", name)
		}
		gid := groupID(trigger.ID, name)
		built[name] = gid
		groups[value] = gid
		if err := st.buildFields(fields, gid, section); err != nil {
			return err
		}
	}

	st.rules.Add(visibility.Trigger{
		ID:     trigger.ID,
		Groups: groups,
		Owner:  owner,
	})
	return nil
}

func (st *buildState) buildField(def schema.FieldDefinition, group string) (FieldInstance, error) {
	if !def.Kind.Valid() {
		return FieldInstance{}, fmt.Errorf("field %q has unknown kind %q", def.ID, def.Kind)
	}
	id := def.ID
	if id == "" && def.Kind == schema.KindRadioGroup {
		id = def.Name
	}
	if err := st.claimID(id); err != nil {
		return FieldInstance{}, err
	}

	instance := FieldInstance{
		ID:          id,
		Kind:        def.Kind,
		Label:       def.Label,
		Required:    def.Required,
		Placeholder: def.Placeholder,
		Rows:        def.Rows,
		Min:         def.Min,
		Step:        def.Step,
		Name:        def.Name,
		Value:       st.resolveDefault(def.Default),
		Prefix:      def.Prefix,
		Group:       group,
	}

	switch def.Kind {
	case schema.KindSelect, schema.KindRadioGroup, schema.KindCheckboxGroup:
		options, err := st.resolveOptions(def)
		if err != nil {
			return FieldInstance{}, err
		}
		instance.Options = options
	}
	return instance, nil
}

func (st *buildState) chargeGroup(category staticdata.ChargeCategory) (FieldInstance, error) {
	id := "charges_" + category.Name
	if err := st.claimID(id); err != nil {
		return FieldInstance{}, err
	}
	options := make([]Option, 0, len(category.Charges))
	for _, charge := range category.Charges {
		options = append(options, Option{
			ID:    "charge_" + charge.ID,
			Value: charge.Value,
			Label: charge.Value,
		})
	}
	return FieldInstance{
		ID:      id,
		Kind:    schema.KindCheckboxGroup,
		Label:   category.Label,
		Prefix:  "charge_",
		Options: options,
	}, nil
}

func (st *buildState) resolveOptions(def schema.FieldDefinition) ([]Option, error) {
	var entries []staticdata.Entry
	if def.Options.Ref != "" {
		table, err := st.builder.tables.Table(def.Options.Ref)
		if err != nil {
			return nil, err
		}
		entries = table
	} else {
		for _, v := range def.Options.Values {
			entries = append(entries, staticdata.Entry{ID: v.ID, Value: v.Value, Label: v.Label})
		}
	}

	prefix := def.Prefix
	if prefix == "" && def.Kind == schema.KindRadioGroup {
		prefix = def.Name + "_"
	}

	options := make([]Option, 0, len(entries))
	for _, entry := range entries {
		value := entry.Key(def.OptionKey)
		label := entry.Text()
		if def.LabelKey != "" {
			label = entry.Key(def.LabelKey)
		} else if def.DisplayFull {
			label = entry.Text()
		} else if def.OptionKey == "" && entry.Label == "" {
			label = entry.Value
		}

		id := entry.ID
		if id == "" && prefix != "" {
			id = optionID(prefix, value)
		}
		options = append(options, Option{
			ID:       id,
			Value:    value,
			Label:    label,
			Checked:  entry.Mandatory,
			Disabled: entry.Mandatory,
		})
	}
	return options, nil
}

func (st *buildState) resolveDefault(value string) string {
	switch value {
	case "":
		return ""
	case schema.DefaultToday:
		return st.builder.clock.Today()
	case schema.DefaultNow:
		return st.builder.clock.Now()
	default:
		return value
	}
}

func (st *buildState) claimID(id string) error {
	if id == "" {
		return fmt.Errorf("field is missing an id")
	}
	if _, exists := st.used[id]; exists {
		return fmt.Errorf("duplicate field id %q", id)
	}
	st.used[id] = struct{}{}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
