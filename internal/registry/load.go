package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/intel-cli/internal/model"
)

// sourcesFile is the on-disk catalog format.
type sourcesFile struct {
	Sources []model.SourceDefinition `yaml:"sources"`
}

// LoadFile reads a source catalog from a YAML file. The file replaces
// the built-in catalog entirely; it is not merged.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: read %s", path)
	}

	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "registry: parse %s", path)
	}
	if len(f.Sources) == 0 {
		return nil, eris.Errorf("registry: %s defines no sources", path)
	}

	return New(f.Sources)
}

// Load returns the catalog from path when set, the built-in catalog
// otherwise.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
