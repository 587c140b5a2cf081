// Package cli implements the element-heatmap command line.
//
// Commands:
//   - render: draw the periodic table with a value overlay into a PNG
//   - cards: write one PNG tile per element, coloured by value
//   - list: print the built-in datasets and gradient indices
//
// Settings come from defaults, an optional TOML file (--config), the
// ELEMENT_HEATMAP_* environment and flags, in increasing precedence.
package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"element-heatmap/internal/config"
)

// app carries state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	v          *viper.Viper
}

// Execute runs the CLI with ctx and returns the first error.
func Execute(ctx context.Context, stdout, stderr io.Writer) error {
	root := newRootCmd(stdout, stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "element-heatmap",
		Short:         "Render periodic-table heatmaps",
		Long:          `element-heatmap draws the periodic table with a per-element value encoded as a colour gradient and labels, and exports it as a PNG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))

			v, err := config.New(a.configPath)
			if err != nil {
				return err
			}
			a.v = v
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newCardsCmd(a))
	root.AddCommand(newListCmd())

	return root
}

// bindFlags binds named flags of cmd to viper keys.
func (a *app) bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for flag, key := range keys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// load binds flags and returns the validated configuration.
func (a *app) load(cmd *cobra.Command, keys map[string]string) (*config.Config, error) {
	if err := a.bindFlags(cmd, keys); err != nil {
		return nil, err
	}
	return config.LoadWithViper(a.v)
}
