// Package pull implements the component fetch workflow: resolve a
// component in the index and copy its versions from the source mirror into
// the local store.
package pull

import (
	"os"
	"path/filepath"

	"github.com/unikit-dev/unikit/pkg/components"
	"github.com/unikit-dev/unikit/pkg/config"
	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/logging"
)

// Options defines the options for the Pull command.
type Options struct {
	// Name of the component to pull.
	Name string
	// PullDependencies also pulls the component's declared dependencies.
	PullDependencies bool
	// SkipApp skips entries of type app instead of pulling them.
	SkipApp bool
	// IndexPath overrides the component index location (settings default).
	IndexPath string
	// SourcesDir resolves relative index sources (settings default).
	SourcesDir string
	// Store overrides the destination store (shared store default).
	Store *components.Store
}

// Result reports what a pull did.
type Result struct {
	// Pulled lists installed name@version pairs.
	Pulled []string
	// Skipped lists components skipped because of SkipApp.
	Skipped []string
}

// Pull fetches one component, and optionally its dependencies, into the
// local store.
func Pull(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.pull")

	if opts.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no component name given")
	}
	if err := applyDefaults(&opts); err != nil {
		return nil, err
	}

	index, err := components.EnsureIndex(opts.IndexPath)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("name", opts.Name).
		Bool("pullDependencies", opts.PullDependencies).
		Bool("skipApp", opts.SkipApp).
		Msg("Starting pull")

	result := &Result{}
	visited := make(map[string]bool)
	if err := pullOne(opts, index, opts.Name, visited, result); err != nil {
		return nil, err
	}

	logger.Info().
		Strs("pulled", result.Pulled).
		Strs("skipped", result.Skipped).
		Msg("Pull completed")

	return result, nil
}

func applyDefaults(opts *Options) error {
	if opts.IndexPath != "" && opts.SourcesDir != "" && opts.Store != nil {
		return nil
	}
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if opts.IndexPath == "" {
		opts.IndexPath = settings.IndexPath
	}
	if opts.SourcesDir == "" {
		opts.SourcesDir = settings.SourcesDir
	}
	if opts.Store == nil {
		opts.Store = components.DefaultStore()
	}
	return nil
}

func pullOne(opts Options, index *components.Index, name string, visited map[string]bool, result *Result) error {
	if visited[name] {
		return nil
	}
	visited[name] = true

	entry, ok := index.Find(name)
	if !ok {
		return errors.Newf(errors.ErrComponentNotFound,
			"component %s is not in the index", name)
	}

	if entry.IsApp() && opts.SkipApp {
		result.Skipped = append(result.Skipped, name)
		return nil
	}

	source := entry.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(opts.SourcesDir, source)
	}

	for _, version := range entry.Versions {
		versionDir := filepath.Join(source, version)
		if _, err := os.Stat(versionDir); err != nil {
			return errors.Newf(errors.ErrPullFailed,
				"source for %s@%s not found at %s", name, version, versionDir)
		}
		if err := opts.Store.Install(name, version, versionDir); err != nil {
			return err
		}
		result.Pulled = append(result.Pulled, name+"@"+version)
	}

	if !opts.PullDependencies {
		return nil
	}
	for _, dep := range entry.Dependencies {
		if err := pullOne(opts, index, dep, visited, result); err != nil {
			return err
		}
	}
	return nil
}
