package packages

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/types"
)

// Manifest is the parsed packages.yaml: package lists grouped per OS
// package manager.
type Manifest struct {
	Managers map[string]Group `yaml:"managers"`
}

// Group is one manager's package list.
type Group struct {
	Packages []string `yaml:"packages"`
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(fsys types.FS, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "package manifest not found: %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse manifest %s", path)
	}
	return &m, nil
}

// ManagerNames returns the manifest's manager names in stable order.
func (m *Manifest) ManagerNames() []string {
	names := make([]string, 0, len(m.Managers))
	for name := range m.Managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
