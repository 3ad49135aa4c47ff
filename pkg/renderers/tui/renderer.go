// Package tui walks a form model as an interactive terminal session,
// honoring conditional visibility as answers come in, and collects the
// answers into a DataBag.
package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-lettergen/pkg/formbuilder"
	"github.com/goliatone/go-lettergen/pkg/prompt"
	"github.com/goliatone/go-lettergen/pkg/schema"
	"github.com/goliatone/go-lettergen/pkg/visibility"
)

// Renderer drives a form through a PromptDriver.
type Renderer struct {
	driver PromptDriver
}

// Option configures the renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// New constructs a TUI renderer backed by survey unless overridden.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run prompts for every visible field in display order and returns the
// collected values. Fields inside conditional groups are only asked while
// their group is visible at the moment the walk reaches them.
func (r *Renderer) Run(ctx context.Context, form *formbuilder.FormInstance) (prompt.DataBag, error) {
	if form == nil {
		return nil, fmt.Errorf("tui: form is nil")
	}

	engine := visibility.NewEngine(form.Rules)
	var state visibility.State
	bag := prompt.DataBag{}

	for _, section := range form.Sections {
		if section.Title != "" {
			if err := r.driver.Info(ctx, "== "+section.Title+" =="); err != nil {
				return nil, err
			}
		}
		if section.ClientCharges != "" {
			if err := r.driver.Info(ctx, "Charges on record: "+section.ClientCharges); err != nil {
				return nil, err
			}
		}
		for _, field := range section.Fields {
			if field.Group != "" && !engine.IsVisible(state, field.Group) {
				continue
			}
			next, err := r.ask(ctx, engine, state, bag, field)
			if err != nil {
				return nil, err
			}
			state = next
		}
	}
	return bag, nil
}

func (r *Renderer) ask(ctx context.Context, engine *visibility.Engine, state visibility.State, bag prompt.DataBag, field formbuilder.FieldInstance) (visibility.State, error) {
	label := field.Label
	if label == "" {
		label = field.ID
	}

	switch field.Kind {
	case schema.KindSelect, schema.KindRadioGroup:
		value, err := r.askChoice(ctx, label, field)
		if err != nil {
			return state, err
		}
		bag[field.ID] = value
		return engine.Apply(state, field.ID, value), nil

	case schema.KindCheckbox, schema.KindCheckboxConditional:
		checked, err := r.driver.Confirm(ctx, ConfirmConfig{Message: label})
		if err != nil {
			return state, err
		}
		bag[field.ID] = checked
		return engine.Apply(state, field.ID, fmt.Sprintf("%t", checked)), nil

	case schema.KindCheckboxGroup:
		if err := r.askGroup(ctx, label, field, bag); err != nil {
			return state, err
		}
		return state, nil

	case schema.KindTextarea:
		value, err := r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: field.Value})
		if err != nil {
			return state, err
		}
		if value != "" {
			bag[field.ID] = value
		}
		return state, nil

	default:
		value, err := r.driver.Input(ctx, InputConfig{Message: label, Default: field.Value})
		if err != nil {
			return state, err
		}
		if value != "" {
			bag[field.ID] = value
		}
		return state, nil
	}
}

func (r *Renderer) askChoice(ctx context.Context, label string, field formbuilder.FieldInstance) (string, error) {
	options := make([]string, 0, len(field.Options)+1)
	values := make([]string, 0, len(field.Options)+1)
	if !field.Required {
		options = append(options, "(leave blank)")
		values = append(values, "")
	}
	defaultIndex := 0
	for _, opt := range field.Options {
		if field.Value != "" && opt.Value == field.Value {
			defaultIndex = len(options)
		}
		options = append(options, opt.Label)
		values = append(values, opt.Value)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(values) {
		return "", nil
	}
	return values[idx], nil
}

func (r *Renderer) askGroup(ctx context.Context, label string, field formbuilder.FieldInstance, bag prompt.DataBag) error {
	var options []string
	var ids []string
	var defaults []int
	for _, opt := range field.Options {
		if opt.Disabled && opt.Checked {
			// Mandatory entries are not up for selection.
			bag[opt.ID] = true
			continue
		}
		if opt.Checked {
			defaults = append(defaults, len(options))
		}
		options = append(options, opt.Label)
		ids = append(ids, opt.ID)
	}
	if len(options) == 0 {
		return nil
	}

	selected, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  label,
		Options:  options,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}
	for _, idx := range selected {
		if idx >= 0 && idx < len(ids) {
			bag[ids[idx]] = true
		}
	}
	return nil
}
