// Package components manages the component index and the local store of
// pulled components. The index describes what exists and where to fetch it
// from; the store is the on-disk cache Configure checks components against.
package components

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/unikit-dev/unikit/pkg/constants"
	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/logging"
)

// Entry describes one component known to the index.
type Entry struct {
	Name string `yaml:"name"`
	// Type is one of the constants.ComponentType* values.
	Type     string   `yaml:"type"`
	Versions []string `yaml:"versions"`
	// Source is the mirror directory holding one subdirectory per
	// version. Relative sources are resolved against the configured
	// sources dir.
	Source string `yaml:"source"`
	// Dependencies names components this one needs at build time.
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// Index is the full component catalogue.
type Index struct {
	Components []Entry `yaml:"components"`
}

// Find returns the entry with the given name.
func (ix *Index) Find(name string) (Entry, bool) {
	for _, e := range ix.Components {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// LoadIndex parses the index file at path.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexLoad,
			"failed to read component index %s", path)
	}
	var ix Index
	if err := yaml.Unmarshal(data, &ix); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexLoad,
			"failed to parse component index %s", path)
	}
	return &ix, nil
}

// SaveIndex writes the index to path, creating parent directories.
func SaveIndex(path string, ix *Index) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to create index directory for %s", path)
	}
	data, err := yaml.Marshal(ix)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal component index")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write component index %s", path)
	}
	return nil
}

// EnsureIndex is the preflight sanity check on the component catalogue:
// it creates an empty index (with a warning) when none exists yet, then
// loads and returns it.
func EnsureIndex(path string) (*Index, error) {
	logger := logging.GetLogger("components")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn().Str("path", path).
			Msg("Component index not found, writing an empty one")
		if err := SaveIndex(path, &Index{}); err != nil {
			return nil, err
		}
	}
	return LoadIndex(path)
}

// IsApp reports whether the entry describes an application template rather
// than a buildable component.
func (e Entry) IsApp() bool {
	return e.Type == constants.ComponentTypeApp
}
