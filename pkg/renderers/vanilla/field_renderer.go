package vanilla

import (
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/goliatone/go-lettergen/pkg/formbuilder"
	"github.com/goliatone/go-lettergen/pkg/schema"
)

// renderField builds the markup for one field. Fields inside a conditional
// group render hidden; the front-end runtime toggles them via data-group.
func renderField(field formbuilder.FieldInstance) template.HTML {
	var b strings.Builder
	b.Grow(256)

	b.WriteString(`<div class="`)
	b.WriteString(string(ClassField))
	if field.Group != "" {
		b.WriteByte(' ')
		b.WriteString(string(ClassGroup))
	}
	b.WriteString(`"`)
	if field.Group != "" {
		b.WriteString(` data-group="`)
		b.WriteString(html.EscapeString(field.Group))
		b.WriteString(`" hidden`)
	}
	b.WriteString(">\n")

	if field.Label != "" && field.Kind != schema.KindCheckbox && field.Kind != schema.KindCheckboxConditional {
		b.WriteString(`    <label for="`)
		b.WriteString(html.EscapeString(field.ID))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(sanitizeText(field.Label)))
		if field.Required {
			b.WriteString(` *`)
		}
		b.WriteString("</label>\n")
	}

	switch field.Kind {
	case schema.KindTextarea:
		writeTextarea(&b, field)
	case schema.KindSelect:
		writeSelect(&b, field)
	case schema.KindCheckbox, schema.KindCheckboxConditional:
		writeCheckbox(&b, field)
	case schema.KindCheckboxGroup:
		writeOptionList(&b, field, "checkbox")
	case schema.KindRadioGroup:
		writeOptionList(&b, field, "radio")
	default:
		writeInput(&b, field)
	}

	b.WriteString("</div>\n")
	return template.HTML(b.String())
}

func writeInput(b *strings.Builder, field formbuilder.FieldInstance) {
	b.WriteString(`    <input type="`)
	b.WriteString(html.EscapeString(string(field.Kind)))
	b.WriteString(`" id="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`"`)
	writeAttr(b, "value", field.Value)
	writeAttr(b, "placeholder", sanitizeText(field.Placeholder))
	writeAttr(b, "min", field.Min)
	writeAttr(b, "step", field.Step)
	if field.Required {
		b.WriteString(` required`)
	}
	b.WriteString(">\n")
}

func writeTextarea(b *strings.Builder, field formbuilder.FieldInstance) {
	b.WriteString(`    <textarea id="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`"`)
	if field.Rows > 0 {
		b.WriteString(` rows="`)
		b.WriteString(strconv.Itoa(field.Rows))
		b.WriteString(`"`)
	}
	writeAttr(b, "placeholder", sanitizeText(field.Placeholder))
	if field.Required {
		b.WriteString(` required`)
	}
	b.WriteString(`>`)
	b.WriteString(html.EscapeString(field.Value))
	b.WriteString("</textarea>\n")
}

func writeSelect(b *strings.Builder, field formbuilder.FieldInstance) {
	b.WriteString(`    <select id="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`" data-trigger="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`"`)
	if field.Required {
		b.WriteString(` required`)
	}
	b.WriteString(">\n")
	b.WriteString("        <option value=\"\">-- Select --</option>\n")
	for _, opt := range field.Options {
		b.WriteString(`        <option value="`)
		b.WriteString(html.EscapeString(opt.Value))
		b.WriteString(`"`)
		if field.Value != "" && opt.Value == field.Value {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(html.EscapeString(sanitizeText(opt.Label)))
		b.WriteString("</option>\n")
	}
	b.WriteString("    </select>\n")
}

func writeCheckbox(b *strings.Builder, field formbuilder.FieldInstance) {
	b.WriteString(`    <label><input type="checkbox" id="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`" data-trigger="`)
	b.WriteString(html.EscapeString(field.ID))
	b.WriteString(`"> `)
	b.WriteString(html.EscapeString(sanitizeText(field.Label)))
	b.WriteString("</label>\n")
}

func writeOptionList(b *strings.Builder, field formbuilder.FieldInstance, inputType string) {
	b.WriteString("    <fieldset")
	// Radio groups can own conditional groups, same as selects and
	// checkboxes; the marker hangs off the shared fieldset.
	if inputType == "radio" {
		b.WriteString(` data-trigger="`)
		b.WriteString(html.EscapeString(field.ID))
		b.WriteString(`"`)
	}
	b.WriteString(">\n")
	for _, opt := range field.Options {
		b.WriteString(`        <label><input type="`)
		b.WriteString(inputType)
		b.WriteString(`" id="`)
		b.WriteString(html.EscapeString(opt.ID))
		b.WriteString(`" name="`)
		if inputType == "radio" && field.Name != "" {
			b.WriteString(html.EscapeString(field.Name))
		} else {
			b.WriteString(html.EscapeString(opt.ID))
		}
		b.WriteString(`" value="`)
		b.WriteString(html.EscapeString(opt.Value))
		b.WriteString(`"`)
		if opt.Checked {
			b.WriteString(` checked`)
		}
		if opt.Disabled {
			b.WriteString(` disabled`)
		}
		b.WriteString(`> `)
		b.WriteString(html.EscapeString(sanitizeText(opt.Label)))
		b.WriteString("</label>\n")
	}
	b.WriteString("    </fieldset>\n")
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(` `)
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}
