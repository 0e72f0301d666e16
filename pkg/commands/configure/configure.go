// Package configure sequences a full configure run: preflight, the
// menuconfig short-circuit, the already-configured confirmation, target
// resolution, option normalization, applying the configuration, and
// persisting the manifest. A missing-component failure is recovered by
// pulling the component and re-running the sequence exactly once.
package configure

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/unikit-dev/unikit/pkg/app"
	"github.com/unikit-dev/unikit/pkg/commands/pull"
	"github.com/unikit-dev/unikit/pkg/components"
	"github.com/unikit-dev/unikit/pkg/config"
	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/kconfig"
	"github.com/unikit-dev/unikit/pkg/logging"
	"github.com/unikit-dev/unikit/pkg/paths"
	"github.com/unikit-dev/unikit/pkg/target"
	"github.com/unikit-dev/unikit/pkg/ui"
)

// Options defines the options for the Configure command.
type Options struct {
	// Workdir is the application directory; defaults to the current one.
	Workdir string
	// TargetName, Architecture and Platform are resolution hints.
	TargetName   string
	Architecture string
	Platform     string
	// Force overwrites an existing configuration without asking.
	Force bool
	// Menuconfig opens the interactive Kconfig editor instead of
	// resolving targets and options.
	Menuconfig bool
	// Enable, Disable and Set are the raw option requests.
	Enable  []string
	Disable []string
	Set     []string
	// UseVersions carries NAME@VERSION component overrides.
	UseVersions []string

	// IndexPath, SourcesDir and Store override the component machinery;
	// settings/shared defaults apply when unset.
	IndexPath  string
	SourcesDir string
	Store      *components.Store

	// Selector and Confirmer supply the interactive prompts; console
	// implementations are used when nil.
	Selector  ui.Selector
	Confirmer ui.Confirmer
}

// Result reports what a configure run did.
type Result struct {
	// Target is the resolved target; zero when Menuconfig was used.
	Target app.Target
	// Options are the canonical assignments handed to the engine.
	Options []string
	// Menuconfig is set when the run handed control to the menu editor.
	Menuconfig bool
	// PulledComponent names the component fetched by the one-shot
	// recovery, when it ran.
	PulledComponent string
}

// Configure runs the whole sequence. A MISSING_COMPONENT failure from the
// engine is recovered at most once: confirm (auto-confirmed under force),
// pull that single component without its dependencies, and re-run with
// force enabled. A second missing component is terminal.
func Configure(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.configure")

	if err := applyDefaults(&opts); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("workdir", opts.Workdir).
		Str("target", opts.TargetName).
		Str("architecture", opts.Architecture).
		Str("platform", opts.Platform).
		Bool("force", opts.Force).
		Bool("menuconfig", opts.Menuconfig).
		Msg("Starting configure")

	// Preflight: the component catalogue must exist and parse.
	if _, err := components.EnsureIndex(opts.IndexPath); err != nil {
		return nil, err
	}

	lock := flock.New(paths.LockFile(opts.Workdir))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkdirLocked,
			"failed to lock %s", opts.Workdir)
	}
	if !locked {
		return nil, errors.Newf(errors.ErrWorkdirLocked,
			"another configure is already running in %s", opts.Workdir)
	}
	defer func() { _ = lock.Unlock() }()

	result, err := run(opts, opts.Force)
	if err == nil || !errors.IsErrorCode(err, errors.ErrMissingComponent) {
		return result, err
	}

	component := errors.ComponentName(err)
	if !opts.Force {
		logger.Warn().Err(err).Msg("Configure hit a missing component")
		ok, cerr := opts.Confirmer.Confirm(fmt.Sprintf("Would you like to pull %s?", component))
		if cerr != nil {
			return nil, cerr
		}
		if !ok {
			return nil, err
		}
	}

	if _, perr := pull.Pull(pull.Options{
		Name:             component,
		PullDependencies: false,
		SkipApp:          true,
		IndexPath:        opts.IndexPath,
		SourcesDir:       opts.SourcesDir,
		Store:            opts.Store,
	}); perr != nil {
		return nil, perr
	}

	logger.Info().Str("component", component).Msg("Component pulled, configuring again")

	// One retry only; a MISSING_COMPONENT from this run is terminal.
	result, err = run(opts, true)
	if result != nil {
		result.PulledComponent = component
	}
	return result, err
}

func applyDefaults(opts *Options) error {
	if opts.Workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to determine working directory")
		}
		opts.Workdir = wd
	}
	if opts.Selector != nil && opts.Confirmer != nil &&
		opts.IndexPath != "" && opts.SourcesDir != "" && opts.Store != nil {
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
	if opts.Selector == nil {
		if settings.NoPrompt {
			opts.Selector = ui.DisabledPrompts{}
		} else {
			opts.Selector = ui.NewConsoleSelector()
		}
	}
	if opts.Confirmer == nil {
		if settings.NoPrompt {
			opts.Confirmer = ui.DisabledPrompts{}
		} else {
			opts.Confirmer = ui.NewConsoleConfirmer()
		}
	}
	return nil
}

// run performs one pass of the configure sequence with the given force
// mode.
func run(opts Options, force bool) (*Result, error) {
	logger := logging.GetLogger("commands.configure")

	application, err := app.FromWorkdir(opts.Workdir, force, opts.UseVersions)
	if err != nil {
		return nil, err
	}
	application.Store = opts.Store

	// The menu editor bypasses target and option resolution entirely.
	if opts.Menuconfig {
		if !ui.IsTerminal() {
			return nil, errors.New(errors.ErrNonInteractiveMenuConfig,
				"cannot open the menu editor in a non-interactive session")
		}
		if err := application.OpenMenuConfig(); err != nil {
			return nil, err
		}
		return &Result{Menuconfig: true}, nil
	}

	if application.IsConfigured() && !force {
		ok, err := opts.Confirmer.Confirm(fmt.Sprintf(
			"%s is already configured, would you like to overwrite the configuration?", opts.Workdir))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Newf(errors.ErrCannotConfigure,
				"refusing to overwrite the configuration in %s", opts.Workdir)
		}
		force = true
	}

	resolved, err := target.Resolve(target.ResolutionContext{
		TargetName:   opts.TargetName,
		Architecture: opts.Architecture,
		Platform:     opts.Platform,
		Targets:      application.Targets(),
		Binaries:     application.Binaries(),
	}, opts.Selector)
	if err != nil {
		return nil, err
	}

	options, err := kconfig.Normalize(opts.Enable, opts.Disable, opts.Set)
	if err != nil {
		return nil, err
	}

	if err := application.Configure(resolved, options, force); err != nil {
		return nil, err
	}
	if err := application.SaveConfig(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("target", resolved.Name).
		Str("architecture", resolved.Architecture).
		Str("platform", resolved.Platform).
		Msg("Application configured")

	return &Result{Target: resolved, Options: options}, nil
}
