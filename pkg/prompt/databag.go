// Package prompt holds the template registry and the token substitution
// engine that renders document prompts from collected form data. Templates are
// compiled once into an AST of literal runs, simple tokens and named
// conditional blocks; evaluation is a single structural pass over that AST, so
// substituted values are never rescanned for tokens.
package prompt

import (
	"fmt"
	"strings"
)

// DataBag is the flat key-value map a template renders against. Values are
// strings, bools (checkboxes) or string lists (checkbox groups); anything else
// is formatted with fmt. Missing keys render as empty strings, never as
// errors, so partial previews stay possible.
type DataBag map[string]any

// String returns the rendered string form of a key.
func (b DataBag) String(key string) string {
	v, ok := b[key]
	if !ok {
		return ""
	}
	return formatValue(v)
}

// List returns the key's value as a list. Scalar values become a one-element
// list; missing and empty values return nil.
func (b DataBag) List(key string) []string {
	switch v := b[key].(type) {
	case nil:
		return nil
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return []string{formatValue(v)}
	}
}

// Bool reports whether the key holds a truthy checkbox value.
func (b DataBag) Bool(key string) bool {
	switch v := b[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "checked", "1":
			return true
		}
	}
	return false
}

// Has reports whether the key is present with a non-empty rendering.
func (b DataBag) Has(key string) bool {
	_, ok := b[key]
	return ok && b.String(key) != ""
}

// Merge copies the other bag's entries over this one and returns the receiver
// for chaining. The receiver must be non-nil.
func (b DataBag) Merge(other DataBag) DataBag {
	for k, v := range other {
		b[k] = v
	}
	return b
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case []string:
		return strings.Join(t, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
