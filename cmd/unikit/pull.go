package unikit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unikit-dev/unikit/pkg/commands/pull"
	"github.com/unikit-dev/unikit/pkg/logging"
)

func newPullCmd() *cobra.Command {
	var withDeps bool

	cmd := &cobra.Command{
		Use:   "pull NAME",
		Short: "Pull a component into the local store",
		Long: `Pull fetches a component's versions from its source mirror into the
local store, where configure expects to find every component the manifest
declares.`,
		Example: `  # Pull one component
  unikit pull lwip

  # Pull a component and its dependencies
  unikit pull lwip --with-deps`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.pull")
			logger.Info().Str("name", args[0]).Bool("withDeps", withDeps).Msg("Starting pull")

			result, err := pull.Pull(pull.Options{
				Name:             args[0],
				PullDependencies: withDeps,
				SkipApp:          false,
			})
			if err != nil {
				return err
			}

			if len(result.Pulled) == 0 {
				fmt.Println("Nothing to pull.")
				return nil
			}
			for _, p := range result.Pulled {
				fmt.Printf("  ✓ %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDeps, "with-deps", false, "Also pull the component's dependencies")

	return cmd
}
