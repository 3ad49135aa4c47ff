package prompt

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS parses YAML template documents from the provided filesystem and
// registers them. Duplicate document types fail so misconfigured overlays
// surface at startup.
func (r *Registry) LoadFS(fsys fs.FS) error {
	if fsys == nil {
		return nil
	}

	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("prompt: read %s: %w", path, err)
		}

		var doc templateDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("prompt: parse %s: %w", path, err)
		}

		for docType, node := range doc.Templates {
			docType = strings.TrimSpace(docType)
			if node.Text == "" {
				return fmt.Errorf("prompt: file %s: template %q has no text", path, docType)
			}
			def := Definition{
				Type:     docType,
				Title:    node.Title,
				Template: Parse(node.Text),
				Webhook: Webhook{
					Type:     docType,
					Template: node.Document,
				},
			}
			if err := r.Register(def); err != nil {
				return err
			}
		}
		return nil
	})
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

type templateDocument struct {
	Templates map[string]templateNode `yaml:"templates"`
}

type templateNode struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	// Document names the downstream .docx file attached to webhook payloads.
	Document string `yaml:"document"`
}
