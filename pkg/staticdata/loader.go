package staticdata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	Tables        map[string][]entryNode         `yaml:"tables"`
	Organizations map[string]OrganizationEntry   `yaml:"organizations"`
}

// OrganizationEntry is the YAML shape of an organization pre-fill template.
type OrganizationEntry struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// entryNode accepts either a bare string or a mapping with id/value/label/keys.
type entryNode struct {
	ID        string            `yaml:"id"`
	Value     string            `yaml:"value"`
	Label     string            `yaml:"label"`
	Keys      map[string]string `yaml:"keys"`
	Mandatory bool              `yaml:"mandatory"`
}

func (n *entryNode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		n.Value = node.Value
		return nil
	}
	type plain entryNode
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*n = entryNode(p)
	return nil
}

// LoadFS overlays YAML table documents from the provided filesystem onto the
// registry. Tables named in a document replace the registered table wholesale;
// tables the documents never mention are untouched. A nil fsys is a no-op.
func (r *Registry) LoadFS(fsys fs.FS) error {
	if fsys == nil {
		return nil
	}

	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTableFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("staticdata: read %s: %w", path, err)
		}

		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("staticdata: parse %s: %w", path, err)
		}

		for name, nodes := range doc.Tables {
			table := strings.TrimSpace(name)
			if table == "" {
				return fmt.Errorf("staticdata: file %s defines an empty table name", path)
			}
			entries := make([]Entry, 0, len(nodes))
			for i, node := range nodes {
				if node.Value == "" {
					return fmt.Errorf("staticdata: table %q entry %d in %s has no value", table, i, path)
				}
				entries = append(entries, Entry{
					ID:        node.ID,
					Value:     node.Value,
					Label:     node.Label,
					Keys:      node.Keys,
					Mandatory: node.Mandatory,
				})
			}
			r.tables[table] = entries
		}

		for name, org := range doc.Organizations {
			if r.organizations == nil {
				r.organizations = make(map[string]OrganizationTemplate)
			}
			r.organizations[name] = OrganizationTemplate{Name: org.Name, Address: org.Address}
		}
		return nil
	})
}

func isTableFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
