// Package config loads unikit's own settings: where the component index
// lives, where component sources are mirrored, and prompt behavior.
// Settings merge in order: built-in defaults, then a settings file from the
// XDG config dir (YAML preferred, TOML accepted), then UNIKIT_* environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/paths"
)

// Settings holds tool-level configuration.
type Settings struct {
	// IndexPath is the component index location.
	IndexPath string `koanf:"index_path"`
	// SourcesDir resolves relative component sources in the index.
	SourcesDir string `koanf:"sources_dir"`
	// NoPrompt disables interactive prompts; operations that would ask
	// fail instead.
	NoPrompt bool `koanf:"no_prompt"`
}

const envPrefix = "UNIKIT_"

// Load merges defaults, the settings file, and environment overrides.
func Load() (*Settings, error) {
	return LoadFrom(paths.ConfigDir())
}

// LoadFrom loads settings with the given config directory, used by tests
// to avoid touching the real XDG tree.
func LoadFrom(configDir string) (*Settings, error) {
	k := koanf.New(".")

	defaults := &Settings{
		IndexPath:  paths.IndexFile(),
		SourcesDir: filepath.Join(paths.CacheDir(), "sources"),
	}

	// 1. Settings file, YAML preferred over TOML, first hit wins.
	type parserFor struct {
		name   string
		parser koanf.Parser
	}
	candidates := []parserFor{
		{"settings.yaml", kyaml.Parser()},
		{"settings.toml", toml.Parser()},
	}
	for _, c := range candidates {
		path := filepath.Join(configDir, c.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), c.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load settings from %s", path)
		}
		break
	}

	// 2. Environment overrides: UNIKIT_INDEX_PATH, UNIKIT_SOURCES_DIR, ...
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad,
			"failed to load environment settings")
	}

	settings := defaults
	if err := k.Unmarshal("", settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad,
			"failed to unmarshal settings")
	}

	return settings, nil
}
