package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"element-heatmap/internal/config"
	"element-heatmap/internal/elements"
	"element-heatmap/internal/heatmap"
	"element-heatmap/internal/palette"
	"element-heatmap/internal/render"
	"element-heatmap/internal/values"
)

var cardsFlags = map[string]string{
	"dir":      config.KeyCardsDir,
	"width":    config.KeyCardsWidth,
	"height":   config.KeyCardsHeight,
	"dataset":  config.KeyDataset,
	"values":   config.KeyValuesFile,
	"gradient": config.KeyGradient,
	"font":     config.KeyFontRegular,
	"bold":     config.KeyFontBold,
}

func newCardsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Write one PNG card per element",
		Long: `Cards writes a tile for every element that has a value, coloured by the
same gradient as the table, into the cards directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd, cardsFlags)
			if err != nil {
				return err
			}
			return runCards(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.String("dir", config.DefaultCardsDir, "output directory")
	f.Int("width", render.CardWidth, "card width in pixels")
	f.Int("height", render.CardHeight, "card height in pixels")
	f.StringP("dataset", "d", values.DatasetMendeleev, "built-in dataset")
	f.String("values", "", "values file (.json, .toml, .yaml), overrides --dataset")
	f.IntP("gradient", "g", palette.DefaultGradientIndex, "gradient index, see 'list'")
	f.String("font", "", "regular TTF font file")
	f.String("bold", "", "bold TTF font file")
	return cmd
}

func runCards(ctx context.Context, cfg *config.Config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	table, err := elements.Load()
	if err != nil {
		return err
	}
	fonts, err := render.LoadFonts(cfg.Font.Regular, cfg.Font.Bold)
	if err != nil {
		return err
	}
	ov, err := planGradient(ctx, cfg, table, heatmap.SymbolAndValue)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Cards.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", cfg.Cards.Dir)
	}

	var failed int
	for _, cell := range ov.Cells {
		if err := ctx.Err(); err != nil {
			return err
		}
		el, ok := table.Lookup(cell.Symbol)
		if !ok {
			continue
		}
		card := render.Card{
			Element: el,
			Value:   heatmap.FormatValue(cell.Value),
			Fill:    cell.Fill,
			Text:    cell.Text,
			Alpha:   cell.Alpha,
		}
		path, err := render.SaveCard(fonts, card, cfg.Cards.Dir, cfg.Cards.Width, cfg.Cards.Height)
		if err != nil {
			logger.Error("card failed", "element", el.Name, "err", err)
			failed++
			continue
		}
		logger.Debug("created", "path", path)
	}
	if failed > 0 {
		return errors.Newf("%d of %d cards failed", failed, len(ov.Cells))
	}
	prog.done(fmt.Sprintf("Wrote %d cards to %s", len(ov.Cells), cfg.Cards.Dir))
	return nil
}
