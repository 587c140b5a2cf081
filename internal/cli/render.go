package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"element-heatmap/internal/config"
	"element-heatmap/internal/elements"
	"element-heatmap/internal/heatmap"
	"element-heatmap/internal/palette"
	"element-heatmap/internal/render"
	"element-heatmap/internal/values"
)

// renderFlags maps render flags to config keys.
var renderFlags = map[string]string{
	"output":   config.KeyOutput,
	"dpi":      config.KeyDPI,
	"mode":     config.KeyMode,
	"dataset":  config.KeyDataset,
	"values":   config.KeyValuesFile,
	"gradient": config.KeyGradient,
	"font":     config.KeyFontRegular,
	"bold":     config.KeyFontBold,
}

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the periodic table heatmap to a PNG",
		Long: `Render draws the base periodic table, overlays the selected values as a
colour gradient with labels and a colorbar, and saves a tightly cropped PNG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd, renderFlags)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", config.DefaultOutput, "output PNG path")
	f.Float64("dpi", render.DefaultDPI, "pixels per inch of the figure")
	f.StringP("mode", "m", heatmap.SymbolAndValue.String(), fmt.Sprintf("label mode %v", heatmap.ModeNames()))
	f.StringP("dataset", "d", values.DatasetMendeleev, fmt.Sprintf("built-in dataset %v", values.DatasetNames()))
	f.String("values", "", "values file (.json, .toml, .yaml), overrides --dataset")
	f.IntP("gradient", "g", palette.DefaultGradientIndex, "gradient index, see 'list'")
	f.String("font", "", "regular TTF font file")
	f.String("bold", "", "bold TTF font file")
	return cmd
}

func runRender(ctx context.Context, cfg *config.Config) error {
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
	fig, ax, err := render.NewBaseTable(table.Classic(), table.Special(),
		render.WithDPI(cfg.DPI), render.WithFonts(fonts))
	if err != nil {
		return err
	}
	w, h := fig.PixelSize()
	logger.Debug("base table ready", "width", w, "height", h, "dpi", cfg.DPI)

	ov, err := planOverlay(ctx, cfg, table)
	if err != nil {
		return err
	}
	for _, sym := range ov.Skipped {
		logger.Warn("no cell for symbol, skipped", "symbol", sym)
	}
	if err := render.ApplyOverlay(ax, ov); err != nil {
		return err
	}
	logger.Debug("overlay applied", "mode", ov.Mode, "cells", len(ov.Cells))

	if err := fig.SavePNG(cfg.Output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s", cfg.Output))
	return nil
}

// planOverlay builds the overlay for the configured mode.
func planOverlay(ctx context.Context, cfg *config.Config, table *elements.Table) (*heatmap.Overlay, error) {
	mode := cfg.OverlayMode()
	if mode == heatmap.Category {
		return heatmap.PlanCategories(table, palette.AccentColors())
	}
	return planGradient(ctx, cfg, table, mode)
}

func planGradient(ctx context.Context, cfg *config.Config, table *elements.Table, mode heatmap.Mode) (*heatmap.Overlay, error) {
	logger := loggerFromContext(ctx)

	vals, err := values.Load(ctx, cfg.Dataset, cfg.ValuesFile, table)
	if err != nil {
		return nil, err
	}
	g, err := palette.GradientAt(cfg.GradientIndex)
	if err != nil {
		return nil, err
	}
	if logger.GetLevel() <= log.DebugLevel {
		lo, hi, _ := vals.Range()
		logger.Debug("values loaded", "count", len(vals), "min", lo, "max", hi, "gradient", g.Name)
	}
	return heatmap.Plan(table.Classic(), vals, g, mode)
}
