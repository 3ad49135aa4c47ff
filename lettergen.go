// Package lettergen generates legal correspondence prompts for a criminal
// law practice: CCL, mention, final and fee letters plus court document
// requests, file notes and subpoena cover sheets. Forms are described by
// schemas, answers collect into a data bag, and prompt templates render the
// final text for the downstream document service.
package lettergen

import (
	"context"

	"github.com/goliatone/go-lettergen/pkg/client"
	"github.com/goliatone/go-lettergen/pkg/formbuilder"
	"github.com/goliatone/go-lettergen/pkg/generator"
	"github.com/goliatone/go-lettergen/pkg/prompt"
	"github.com/goliatone/go-lettergen/pkg/renderers/vanilla"
)

// DataBag carries field answers and derived values keyed by token name.
type DataBag = prompt.DataBag

// Request selects a document type, an optional client record and the
// caller-supplied answers.
type Request = generator.Request

// Result is a generated document prompt plus its delivery payload.
type Result = generator.Result

// Record is a client matter with its letter history.
type Record = client.Record

// Store persists client records.
type Store = client.Store

// FormInstance is a materialized form ready for rendering.
type FormInstance = formbuilder.FormInstance

// New exposes the generator constructor from the top-level module.
func New(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// ParseTemplate compiles prompt template text. Registered templates for the
// built-in document types are available via prompt.Default.
func ParseTemplate(text string) *prompt.Template {
	return prompt.Parse(text)
}

// GeneratePrompt renders the prompt for a document type from the supplied
// answers. It is the simplest entry point for callers that just want the
// prompt text.
func GeneratePrompt(ctx context.Context, docType string, values DataBag, options ...generator.Option) (string, error) {
	gen := generator.New(options...)
	result, err := gen.Generate(ctx, generator.Request{DocType: docType, Values: values})
	if err != nil {
		return "", err
	}
	return result.Prompt, nil
}

// GenerateFormHTML builds the form for a document type and renders it as
// standalone HTML, bypassing the interactive prompt flow.
func GenerateFormHTML(ctx context.Context, formType string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	form, err := gen.Form(formType)
	if err != nil {
		return nil, err
	}
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form)
}

// WithStore registers the client record store used to seed and record
// generated letters.
func WithStore(store client.Store) generator.Option {
	return generator.WithStore(store)
}
