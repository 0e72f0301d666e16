package unikit

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/unikit-dev/unikit/pkg/commands/list"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List components known to the index",
		Long: `List shows every component in the index together with the versions
already pulled into the local store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := list.List(list.Options{})
			if err != nil {
				return err
			}

			if len(result.Items) == 0 {
				fmt.Println("No components in the index.")
				return nil
			}

			data := pterm.TableData{{"NAME", "TYPE", "VERSIONS", "PULLED"}}
			for _, item := range result.Items {
				data = append(data, []string{
					item.Name,
					item.Type,
					strings.Join(item.Versions, ", "),
					strings.Join(item.Pulled, ", "),
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
}
