package schema

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS parses YAML form definition documents from the provided filesystem
// and registers them. Documents can define forms and shared special sections;
// duplicate names fail so misconfigured overlays surface at startup.
func (r *Registry) LoadFS(fsys fs.FS) error {
	if fsys == nil {
		return nil
	}

	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}

		var doc schemaDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("schema: parse %s: %w", path, err)
		}

		for name, form := range doc.Forms {
			def, err := form.toDefinition(strings.TrimSpace(name))
			if err != nil {
				return fmt.Errorf("schema: file %s: %w", path, err)
			}
			if err := r.Register(def); err != nil {
				return err
			}
		}
		for name, section := range doc.Special {
			fields, err := fieldDefinitions(section.Fields)
			if err != nil {
				return fmt.Errorf("schema: file %s: %w", path, err)
			}
			if err := r.RegisterSpecial(strings.TrimSpace(name), fields); err != nil {
				return err
			}
		}
		return nil
	})
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

type schemaDocument struct {
	Forms   map[string]formNode    `yaml:"forms"`
	Special map[string]sectionNode `yaml:"special"`
}

type formNode struct {
	Sections []sectionNode `yaml:"sections"`
}

type sectionNode struct {
	Title                string            `yaml:"title"`
	Type                 string            `yaml:"type"`
	Fields               []fieldNode       `yaml:"fields"`
	IncludeClientCharges bool              `yaml:"includeClientCharges"`
	AdditionalFields     []fieldNode       `yaml:"additionalFields"`
	Trigger              *fieldNode        `yaml:"trigger"`
	Content              map[string]string `yaml:"content"`
}

type fieldNode struct {
	Type               string                 `yaml:"type"`
	ID                 string                 `yaml:"id"`
	Name               string                 `yaml:"name"`
	Label              string                 `yaml:"label"`
	Required           bool                   `yaml:"required"`
	Placeholder        string                 `yaml:"placeholder"`
	Rows               int                    `yaml:"rows"`
	Min                string                 `yaml:"min"`
	Step               string                 `yaml:"step"`
	Default            string                 `yaml:"default"`
	Options            optionsNode            `yaml:"options"`
	OptionKey          string                 `yaml:"optionKey"`
	LabelKey           string                 `yaml:"labelKey"`
	Prefix             string                 `yaml:"prefix"`
	DisplayFull        bool                   `yaml:"displayFull"`
	Conditional        map[string][]fieldNode `yaml:"conditional"`
	ConditionalID      string                 `yaml:"conditionalId"`
	ConditionalOptions optionsNode            `yaml:"conditionalOptions"`
}

// optionsNode accepts either a scalar table reference or an inline list whose
// items are scalars or {id, value, label} mappings.
type optionsNode struct {
	options Options
}

func (n *optionsNode) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		n.options = Options{Ref: node.Value}
		return nil
	case yaml.SequenceNode:
		values := make([]OptionValue, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				values = append(values, OptionValue{Value: item.Value})
				continue
			}
			var value OptionValue
			if err := item.Decode(&value); err != nil {
				return err
			}
			values = append(values, value)
		}
		n.options = Options{Values: values}
		return nil
	default:
		return fmt.Errorf("options must be a table name or a list")
	}
}

func (n formNode) toDefinition(name string) (FormDefinition, error) {
	if name == "" {
		return FormDefinition{}, fmt.Errorf("form name is required")
	}
	sections := make([]SectionDefinition, 0, len(n.Sections))
	for i, sec := range n.Sections {
		def, err := sec.toDefinition()
		if err != nil {
			return FormDefinition{}, fmt.Errorf("form %q section %d: %w", name, i, err)
		}
		sections = append(sections, def)
	}
	return FormDefinition{Name: name, Sections: sections}, nil
}

func (n sectionNode) toDefinition() (SectionDefinition, error) {
	kind := SectionPlain
	if n.Type != "" {
		kind = SectionKind(n.Type)
	}
	switch kind {
	case SectionPlain, SectionCharges, SectionConditional:
	default:
		return SectionDefinition{}, fmt.Errorf("unknown section type %q", n.Type)
	}

	fields, err := fieldDefinitions(n.Fields)
	if err != nil {
		return SectionDefinition{}, err
	}
	additional, err := fieldDefinitions(n.AdditionalFields)
	if err != nil {
		return SectionDefinition{}, err
	}

	def := SectionDefinition{
		Title:                n.Title,
		Kind:                 kind,
		Fields:               fields,
		IncludeClientCharges: n.IncludeClientCharges,
		AdditionalFields:     additional,
		Content:              n.Content,
	}
	if n.Trigger != nil {
		trigger, err := n.Trigger.toDefinition()
		if err != nil {
			return SectionDefinition{}, fmt.Errorf("trigger: %w", err)
		}
		def.Trigger = &trigger
	}
	return def, nil
}

func fieldDefinitions(nodes []fieldNode) ([]FieldDefinition, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]FieldDefinition, 0, len(nodes))
	for _, node := range nodes {
		def, err := node.toDefinition()
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}

func (n fieldNode) toDefinition() (FieldDefinition, error) {
	kind := FieldKind(n.Type)
	if !kind.Valid() {
		return FieldDefinition{}, fmt.Errorf("field %q has unknown type %q", n.ID, n.Type)
	}
	if len(n.Conditional) > 0 && !kind.Discrete() {
		return FieldDefinition{}, fmt.Errorf("field %q: conditional requires a discrete value domain, not %q", n.ID, n.Type)
	}

	def := FieldDefinition{
		Kind:               kind,
		ID:                 n.ID,
		Name:               n.Name,
		Label:              n.Label,
		Required:           n.Required,
		Placeholder:        n.Placeholder,
		Rows:               n.Rows,
		Min:                n.Min,
		Step:               n.Step,
		Default:            n.Default,
		Options:            n.Options.options,
		OptionKey:          n.OptionKey,
		LabelKey:           n.LabelKey,
		Prefix:             n.Prefix,
		DisplayFull:        n.DisplayFull,
		ConditionalID:      n.ConditionalID,
		ConditionalOptions: n.ConditionalOptions.options,
	}

	if len(n.Conditional) > 0 {
		def.Conditional = make(map[string][]FieldDefinition, len(n.Conditional))
		for value, nested := range n.Conditional {
			fields, err := fieldDefinitions(nested)
			if err != nil {
				return FieldDefinition{}, fmt.Errorf("field %q conditional %q: %w", n.ID, value, err)
			}
			def.Conditional[value] = fields
		}
	}
	return def, nil
}
