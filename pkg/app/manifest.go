package app

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unikit-dev/unikit/pkg/errors"
)

// ComponentRef pins one component the application depends on.
type ComponentRef struct {
	Version string `yaml:"version,omitempty"`
	// KConfig carries default assignments contributed by this component.
	KConfig []string `yaml:"kconfig,omitempty"`
}

// TargetSpec is a build target as declared in the manifest. Declaration
// order is meaningful: target resolution is a first-match scan in this
// order.
type TargetSpec struct {
	Name         string `yaml:"name,omitempty"`
	Architecture string `yaml:"architecture"`
	Platform     string `yaml:"platform"`
	Binary       string `yaml:"binary,omitempty"`
}

// Manifest is the unikit.yaml project file.
type Manifest struct {
	Specification string                  `yaml:"specification,omitempty"`
	Name          string                  `yaml:"name"`
	Core          ComponentRef            `yaml:"core"`
	Libraries     map[string]ComponentRef `yaml:"libraries,omitempty"`
	Targets       []TargetSpec            `yaml:"targets,omitempty"`
}

// LoadManifest parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad,
			"failed to read manifest %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad,
			"failed to parse manifest %s", path)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save writes the manifest back to path.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal manifest")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write manifest %s", path)
	}
	return nil
}

// Validate checks structural invariants the rest of the code relies on.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return errors.New(errors.ErrManifestValid, "manifest is missing a name")
	}
	for i, t := range m.Targets {
		if t.Architecture == "" || t.Platform == "" {
			return errors.Newf(errors.ErrManifestValid,
				"target %d must declare both architecture and platform", i)
		}
	}
	return nil
}

// LibraryNames returns the declared library names sorted for deterministic
// iteration; the manifest stores them as a map.
func (m *Manifest) LibraryNames() []string {
	names := make([]string, 0, len(m.Libraries))
	for name := range m.Libraries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyVersionOverrides applies name@version overrides from the
// --use-version flag, taking precedence over the manifest. The name "core"
// addresses the core component.
func (m *Manifest) ApplyVersionOverrides(overrides []string) error {
	for _, o := range overrides {
		name, version, ok := strings.Cut(o, "@")
		if !ok || name == "" || version == "" {
			return errors.Newf(errors.ErrInvalidInput,
				"invalid version override %q, expected NAME@VERSION", o)
		}

		if name == CoreComponentName {
			m.Core.Version = version
			continue
		}
		ref, ok := m.Libraries[name]
		if !ok {
			return errors.Newf(errors.ErrNotFound,
				"version override for unknown component %q", name)
		}
		ref.Version = version
		m.Libraries[name] = ref
	}
	return nil
}
