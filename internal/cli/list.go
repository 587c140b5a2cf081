package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"element-heatmap/internal/heatmap"
	"element-heatmap/internal/palette"
	"element-heatmap/internal/values"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List datasets, gradients and modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Datasets:")
			for _, name := range values.DatasetNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}

			fmt.Fprintln(out, "Gradients:")
			for i, name := range palette.GradientNames() {
				marker := ""
				if i == palette.DefaultGradientIndex {
					marker = " (default)"
				}
				fmt.Fprintf(out, "  %2d  %s%s\n", i, name, marker)
			}

			fmt.Fprintln(out, "Modes:")
			for _, name := range heatmap.ModeNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}
