// Package app holds the application model: the unikit.yaml manifest, its
// build targets, and the configure engine that materializes a target's
// configuration into the workdir's .config file.
package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/unikit-dev/unikit/pkg/components"
	"github.com/unikit-dev/unikit/pkg/constants"
	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/kconfig"
	"github.com/unikit-dev/unikit/pkg/logging"
	"github.com/unikit-dev/unikit/pkg/paths"
)

// CoreComponentName is how the core component is addressed in version
// overrides and in the component store.
const CoreComponentName = "core"

// ComponentStore answers whether a component version is present locally.
// Satisfied by components.Store; tests substitute fakes.
type ComponentStore interface {
	Has(name, version string) bool
}

// Application is one project loaded from a working directory.
type Application struct {
	Workdir  string
	Manifest *Manifest

	// Store is consulted during Configure to verify every declared
	// component is present. Defaults to the shared local store.
	Store ComponentStore
}

// FromWorkdir loads the application rooted at workdir. It fails when the
// directory does not exist. With forceInit set, a missing manifest is
// replaced by a minimal one named after the directory instead of failing.
// Version overrides (NAME@VERSION) are applied to the loaded manifest.
func FromWorkdir(workdir string, forceInit bool, useVersions []string) (*Application, error) {
	logger := logging.GetLogger("app")

	info, err := os.Stat(workdir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotFound,
			"working directory does not exist: %s", workdir)
	}

	manifest, err := LoadManifest(paths.ManifestFile(workdir))
	if err != nil {
		if !forceInit || !errors.IsErrorCode(err, errors.ErrManifestLoad) {
			return nil, err
		}
		logger.Warn().Str("workdir", workdir).Msg("No manifest found, initializing a minimal one")
		manifest = &Manifest{Name: baseName(workdir)}
	}

	if err := manifest.ApplyVersionOverrides(useVersions); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("workdir", workdir).
		Str("name", manifest.Name).
		Int("targets", len(manifest.Targets)).
		Msg("Application loaded")

	return &Application{
		Workdir:  workdir,
		Manifest: manifest,
		Store:    components.DefaultStore(),
	}, nil
}

// IsConfigured reports whether the workdir already holds a .config.
func (a *Application) IsConfigured() bool {
	_, err := os.Stat(paths.DotConfigFile(a.Workdir))
	return err == nil
}

// Targets returns the build targets in declared order.
func (a *Application) Targets() []Target {
	targets := make([]Target, 0, len(a.Manifest.Targets))
	for _, t := range a.Manifest.Targets {
		targets = append(targets, Target{
			Name:         t.Name,
			Architecture: t.Architecture,
			Platform:     t.Platform,
			Binary:       t.Binary,
		})
	}
	return targets
}

// Binaries returns, in declared target order, one Binary per target that
// declares a binary path.
func (a *Application) Binaries() []Binary {
	var binaries []Binary
	for _, t := range a.Manifest.Targets {
		if t.Binary == "" {
			continue
		}
		binaries = append(binaries, Binary{Path: t.Binary, TargetName: t.Name})
	}
	return binaries
}

// Configure materializes the configuration for the given target: base
// assignments derived from the manifest, then the caller's normalized
// options, written to the workdir's .config. It refuses to overwrite an
// existing configuration unless force is set, and fails with the
// distinguished MISSING_COMPONENT error when a declared component has not
// been pulled into the local store.
func (a *Application) Configure(target Target, options []string, force bool) error {
	logger := logging.GetLogger("app.configure")

	if a.IsConfigured() && !force {
		return errors.Newf(errors.ErrAlreadyConfigured,
			"%s is already configured", a.Workdir)
	}

	if err := a.checkComponents(); err != nil {
		return err
	}

	assignments := a.baseAssignments(target)
	assignments = append(assignments, options...)

	logger.Info().
		Str("target", target.Name).
		Str("architecture", target.Architecture).
		Str("platform", target.Platform).
		Int("assignments", len(assignments)).
		Bool("force", force).
		Msg("Writing configuration")

	return kconfig.WriteDotConfig(paths.DotConfigFile(a.Workdir), assignments)
}

// SaveConfig persists the (possibly version-overridden) manifest back to
// the workdir.
func (a *Application) SaveConfig() error {
	return a.Manifest.Save(paths.ManifestFile(a.Workdir))
}

// OpenMenuConfig hands the terminal to the interactive Kconfig editor.
// The caller must already have verified a terminal is attached.
func (a *Application) OpenMenuConfig() error {
	cmd := exec.Command("make", "menuconfig")
	cmd.Dir = a.Workdir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "menuconfig editor failed")
	}
	return nil
}

// checkComponents verifies the core and every declared library is present
// in the local store, failing with MISSING_COMPONENT naming the first
// absent one.
func (a *Application) checkComponents() error {
	if !a.Store.Has(CoreComponentName, a.Manifest.Core.Version) {
		return errors.MissingComponent(CoreComponentName)
	}
	for _, name := range a.Manifest.LibraryNames() {
		if !a.Store.Has(name, a.Manifest.Libraries[name].Version) {
			return errors.MissingComponent(name)
		}
	}
	return nil
}

// baseAssignments derives the manifest's own contribution to .config:
// architecture and platform selections, core defaults, then per-library
// enables followed by each library's declared defaults.
func (a *Application) baseAssignments(target Target) []string {
	var assignments []string

	assignments = append(assignments,
		kconfig.Assignment(optionKey("ARCH_", target.Architecture), constants.KConfigYes),
		kconfig.Assignment(optionKey("PLAT_", target.Platform), constants.KConfigYes),
	)
	assignments = append(assignments, a.Manifest.Core.KConfig...)

	for _, name := range a.Manifest.LibraryNames() {
		assignments = append(assignments,
			kconfig.Assignment(optionKey("LIB", name), constants.KConfigYes))
		assignments = append(assignments, a.Manifest.Libraries[name].KConfig...)
	}

	return assignments
}

// optionKey builds a canonical CONFIG_ key from a component-ish name,
// uppercased with non-alphanumerics folded to underscores.
func optionKey(kind, name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return kconfig.CanonicalKey(kind + b.String())
}

func baseName(path string) string {
	return filepath.Base(filepath.Clean(path))
}
