// Package vanilla renders form models as plain HTML. The markup carries
// data-group and data-trigger attributes so a small front-end runtime can
// apply conditional visibility; all groups start hidden.
package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"github.com/goliatone/go-lettergen/pkg/formbuilder"
)

type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

type Renderer struct {
	templates *template.Template
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	tmpl, err := template.New("form").Funcs(template.FuncMap{
		"renderField": renderField,
		"sanitize":    sanitizeText,
	}).ParseFS(cfg.templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML document for a built form.
func (r *Renderer) Render(_ context.Context, form *formbuilder.FormInstance) ([]byte, error) {
	if form == nil {
		return nil, fmt.Errorf("vanilla renderer: form is nil")
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "form.tmpl", map[string]any{
		"form": form,
	}); err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return buf.Bytes(), nil
}
