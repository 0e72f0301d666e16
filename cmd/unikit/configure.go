package unikit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unikit-dev/unikit/pkg/commands/configure"
	"github.com/unikit-dev/unikit/pkg/logging"
)

func newConfigureCmd() *cobra.Command {
	var (
		targetName   string
		architecture string
		platform     string
		force        bool
		menuconfig   bool
		workdir      string
		enable       []string
		disable      []string
		set          []string
		useVersions  []string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure the application for one build target",
		Long: `Configure resolves a single build target from the manifest and the
given hints, turns the enable/disable/set requests into canonical
assignments, and writes the target's .config into the working directory.

With -k/--menuconfig the interactive Kconfig editor is opened instead,
which requires an attached terminal.`,
		Example: `  # Configure the only target, enabling one option
  unikit configure -y LIBVFSCORE

  # Configure a specific target by name
  unikit configure -t helloworld-kvm-x86_64

  # Configure by architecture and platform pair
  unikit configure -m x86_64 -p kvm

  # Set an option's value explicitly
  unikit configure -s STACK_SIZE=8192`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.configure")
			logger.Info().
				Str("target", targetName).
				Str("architecture", architecture).
				Str("platform", platform).
				Bool("force", force).
				Bool("menuconfig", menuconfig).
				Msg("Starting configure")

			result, err := configure.Configure(configure.Options{
				Workdir:      workdir,
				TargetName:   targetName,
				Architecture: architecture,
				Platform:     platform,
				Force:        force,
				Menuconfig:   menuconfig,
				Enable:       enable,
				Disable:      disable,
				Set:          set,
				UseVersions:  useVersions,
			})
			if err != nil {
				return err
			}

			if result.Menuconfig {
				return nil
			}

			if result.PulledComponent != "" {
				fmt.Printf("Pulled missing component %s\n", result.PulledComponent)
			}
			fmt.Printf("Configured target %s (%s/%s)\n",
				describeTarget(result.Target.Name),
				result.Target.Architecture, result.Target.Platform)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetName, "target", "t", "", "Target name")
	cmd.Flags().StringVarP(&architecture, "arch", "m", "", "Target architecture")
	cmd.Flags().StringVarP(&platform, "plat", "p", "", "Target platform")
	cmd.Flags().BoolVarP(&force, "force", "F", false, "Force writing a new configuration")
	cmd.Flags().BoolVarP(&menuconfig, "menuconfig", "k", false, "Open the interactive Kconfig editor")
	cmd.Flags().StringVarP(&workdir, "workdir", "w", "", "Application directory (default is cwd)")
	cmd.Flags().StringArrayVarP(&enable, "yes", "y", nil, "Enable an option (repeatable)")
	cmd.Flags().StringArrayVarP(&disable, "no", "n", nil, "Disable an option (repeatable)")
	cmd.Flags().StringArrayVarP(&set, "set", "s", nil, "Set an option's value, KOPTION=VALUE (repeatable)")
	cmd.Flags().StringArrayVarP(&useVersions, "use-version", "u", nil,
		"Use NAME@VERSION for a component, overriding the manifest (repeatable)")

	return cmd
}

func describeTarget(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}
