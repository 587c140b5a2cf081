package render

import (
	"sort"

	"github.com/cockroachdb/errors"

	"element-heatmap/internal/elements"
	"element-heatmap/internal/heatmap"
)

// Layout and styling of the table.
const (
	// FigureMargin surrounds the axes on every side, in inches.
	FigureMargin = 0.5
	// CellBorderWidth is the grid line width in points.
	CellBorderWidth = 1.3
	// SpecialLabelSize is the font size of annotation labels in points.
	SpecialLabelSize = 22
	// LegendTickSize is the colorbar tick label size in points.
	LegendTickSize = 22
	// SwatchSize is the categorical key font and square size in points.
	SwatchSize = 16
	// SwatchesPerColumn bounds the height of the categorical key.
	SwatchesPerColumn = 4
)

// Painting order. Overlay fills sit under the grid lines.
const (
	ZFill   = 0
	ZGrid   = 1
	ZText   = 3
	ZLegend = 4
)

// LegendBox places the colorbar in axes-fraction units (left, bottom,
// width, height): a thin strip near the top centre, over the empty
// transition-metal rows.
var LegendBox = Box{X: 0.19, Y: 0.72, W: 0.4, H: 0.02}

// Cell-unit position of the categorical key's top-left corner.
const (
	swatchX = 3.6
	swatchY = 1.6
)

// NewBaseTable draws the empty grid: one unfilled unit square per element
// and the annotation labels. Axis limits are the coordinate extent plus one
// unit on every side and one unit equals one inch, so the aspect ratio is
// always equal. Every call returns a new, independent figure.
func NewBaseTable(classic, special map[string]elements.Coordinate, opts ...Option) (*Figure, *Axes, error) {
	ext, err := elements.ExtentOf(classic)
	if err != nil {
		return nil, nil, err
	}
	lim := Limits{
		XMin: float64(ext.MinCol - 1),
		XMax: float64(ext.MaxCol + 1),
		YMin: float64(ext.MinRow - 1),
		YMax: float64(ext.MaxRow + 1),
	}
	w := lim.XMax - lim.XMin
	h := lim.YMax - lim.YMin

	fig, err := NewFigure(w+2*FigureMargin, h+2*FigureMargin, opts...)
	if err != nil {
		return nil, nil, err
	}
	ax := fig.AddAxes(FigureMargin, FigureMargin, w, h, lim)

	for _, sym := range sortedSymbols(classic) {
		c := classic[sym]
		ax.Add(Rect{
			X: float64(c.Col) - 0.5, Y: float64(c.Row) - 0.5, W: 1, H: 1,
			Edge:      heatmap.Black,
			LineWidth: CellBorderWidth,
			ZOrder:    ZGrid,
		})
	}
	for _, label := range sortedSymbols(special) {
		c := special[label]
		ax.Add(Text{
			X: float64(c.Col), Y: float64(c.Row),
			Text:   label,
			Size:   SpecialLabelSize,
			Color:  heatmap.Black,
			Alpha:  1,
			ZOrder: ZText,
		})
	}
	return fig, ax, nil
}

// ApplyOverlay adds the planned fills, labels and legend to ax.
func ApplyOverlay(ax *Axes, ov *heatmap.Overlay) error {
	if ax == nil || ov == nil {
		return errors.New("apply overlay: axes and overlay are required")
	}
	for _, cell := range ov.Cells {
		x, y := float64(cell.At.Col), float64(cell.At.Row)
		ax.Add(Rect{
			X: x - 0.5, Y: y - 0.5, W: 1, H: 1,
			Fill:   cell.Fill,
			ZOrder: ZFill,
		})
		for _, l := range cell.Labels {
			ax.Add(Text{
				X: x, Y: y + l.Offset,
				Text:   l.Text,
				Size:   l.Size,
				Color:  cell.Text,
				Alpha:  cell.Alpha,
				Bold:   l.Bold,
				ZOrder: ZText,
			})
		}
	}
	if lg := ov.Legend; lg != nil {
		ax.Add(Colorbar{
			Box:       LegendBox,
			Gradient:  lg.Gradient,
			Min:       lg.Min,
			Max:       lg.Max,
			Ticks:     lg.Ticks,
			LabelSize: LegendTickSize,
			ZOrder:    ZLegend,
		})
	}
	if len(ov.Swatches) > 0 {
		ax.Add(Swatches{
			X: swatchX, Y: swatchY,
			Entries:   ov.Swatches,
			Size:      SwatchSize,
			PerColumn: SwatchesPerColumn,
			ZOrder:    ZLegend,
		})
	}
	return nil
}

func sortedSymbols(m map[string]elements.Coordinate) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
