package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"element-heatmap/internal/elements"
	"element-heatmap/internal/heatmap"
	"element-heatmap/internal/palette"
	"element-heatmap/internal/values"
)

const testDPI = 50

func loadTable(t *testing.T) *elements.Table {
	t.Helper()
	table, err := elements.Load()
	require.NoError(t, err)
	return table
}

func baseTable(t *testing.T) (*Figure, *Axes) {
	t.Helper()
	table := loadTable(t)
	fig, ax, err := NewBaseTable(table.Classic(), table.Special(), WithDPI(testDPI))
	require.NoError(t, err)
	return fig, ax
}

func countArtists[T Artist](ax *Axes) []T {
	var out []T
	for _, a := range ax.Artists() {
		if v, ok := a.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestNewBaseTable(t *testing.T) {
	fig, ax := baseTable(t)

	assert.Equal(t, Limits{XMin: 0, XMax: 19, YMin: 0, YMax: 11}, ax.Lim)
	assert.Equal(t, 20.0, fig.WidthIn)
	assert.Equal(t, 12.0, fig.HeightIn)
	w, h := fig.PixelSize()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 600, h)

	rects := countArtists[Rect](ax)
	require.Len(t, rects, 118)
	for _, r := range rects {
		assert.Nil(t, r.Fill)
		assert.Equal(t, heatmap.Black, r.Edge)
		assert.Equal(t, CellBorderWidth, r.LineWidth)
		assert.Equal(t, 1.0, r.W)
		assert.Equal(t, 1.0, r.H)
	}

	texts := countArtists[Text](ax)
	require.Len(t, texts, 2)
	assert.Equal(t, "57-71", texts[0].Text)
	assert.Equal(t, 3.0, texts[0].X)
	assert.Equal(t, 6.0, texts[0].Y)
	assert.Equal(t, float64(SpecialLabelSize), texts[0].Size)
}

func TestNewBaseTableIsDeterministic(t *testing.T) {
	fig1, ax1 := baseTable(t)
	fig2, ax2 := baseTable(t)

	assert.NotSame(t, fig1, fig2)
	assert.NotSame(t, ax1, ax2)
	assert.Equal(t, ax1.Artists(), ax2.Artists())

	ax1.Add(Text{Text: "extra"})
	assert.NotEqual(t, len(ax1.Artists()), len(ax2.Artists()))
}

func TestNewBaseTableEmpty(t *testing.T) {
	_, _, err := NewBaseTable(nil, nil)
	assert.Error(t, err)
}

func TestNewFigureValidation(t *testing.T) {
	_, err := NewFigure(1, 1, WithDPI(0))
	assert.Error(t, err)
	_, err = NewFigure(0, 1)
	assert.Error(t, err)
}

func overlayFor(t *testing.T, vals values.Mapping, mode heatmap.Mode) (*Figure, *Axes, *heatmap.Overlay) {
	t.Helper()
	fig, ax := baseTable(t)
	g, err := palette.GradientAt(palette.DefaultGradientIndex)
	require.NoError(t, err)
	ov, err := heatmap.Plan(loadTable(t).Classic(), vals, g, mode)
	require.NoError(t, err)
	require.NoError(t, ApplyOverlay(ax, ov))
	return fig, ax, ov
}

func TestApplyOverlaySymbolAndValue(t *testing.T) {
	_, ax, _ := overlayFor(t, values.Mapping{"H": 1, "He": 2, "Li": 0}, heatmap.SymbolAndValue)

	var fills []Rect
	for _, r := range countArtists[Rect](ax) {
		if r.Fill != nil {
			fills = append(fills, r)
			assert.Nil(t, r.Edge)
			assert.Equal(t, float64(ZFill), r.ZOrder)
		}
	}
	assert.Len(t, fills, 3)

	var li []Text
	for _, tx := range countArtists[Text](ax) {
		if tx.X == 1 && tx.Y > 1.5 && tx.Y < 2.5 {
			li = append(li, tx)
		}
	}
	require.Len(t, li, 2)
	assert.Equal(t, "Li", li[0].Text)
	assert.True(t, li[0].Bold)
	assert.Equal(t, "0", li[1].Text)
	for _, tx := range li {
		assert.Equal(t, heatmap.Black, tx.Color)
		assert.Equal(t, 0.5, tx.Alpha)
	}

	bars := countArtists[Colorbar](ax)
	require.Len(t, bars, 1)
	assert.Equal(t, LegendBox, bars[0].Box)
	assert.InDeltaSlice(t, []float64{0, 2.0 / 3, 4.0 / 3, 2}, bars[0].Ticks, 1e-12)
}

func TestApplyOverlaySkipsUnknownSymbols(t *testing.T) {
	_, ax, ov := overlayFor(t, values.Mapping{"H": 1, "Unobtainium": 5}, heatmap.SymbolOnly)
	assert.Equal(t, []string{"Unobtainium"}, ov.Skipped)

	fills := 0
	for _, r := range countArtists[Rect](ax) {
		if r.Fill != nil {
			fills++
		}
	}
	assert.Equal(t, 1, fills)
	for _, tx := range countArtists[Text](ax) {
		assert.NotEqual(t, "Unobtainium", tx.Text)
	}
}

func TestApplyOverlayNil(t *testing.T) {
	_, ax := baseTable(t)
	assert.Error(t, ApplyOverlay(ax, nil))
	assert.Error(t, ApplyOverlay(nil, &heatmap.Overlay{}))
}

func TestApplyOverlayCategories(t *testing.T) {
	_, ax := baseTable(t)
	ov, err := heatmap.PlanCategories(loadTable(t), palette.AccentColors())
	require.NoError(t, err)
	require.NoError(t, ApplyOverlay(ax, ov))

	assert.Len(t, countArtists[Swatches](ax), 1)
	assert.Empty(t, countArtists[Colorbar](ax))

	img, _, err := ax.Figure().Rasterize()
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestRasterizeFillsUnderGrid(t *testing.T) {
	fig, ax, ov := overlayFor(t, values.Mapping{"H": 1, "He": 2, "Li": 0}, heatmap.SymbolAndValue)
	img, drawn, err := fig.Rasterize()
	require.NoError(t, err)
	assert.False(t, drawn.Empty())

	var he heatmap.Cell
	for _, c := range ov.Cells {
		if c.Symbol == "He" {
			he = c
		}
	}

	// corner of the He cell, clear of both labels
	px, py := ax.toPixel(18-0.4, 1-0.4)
	assert.Equal(t, he.Fill, img.RGBAAt(int(px), int(py)))

	// left edge of the He cell is grid line, painted above the fill
	ex, ey := ax.toPixel(17.5, 1)
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(int(math.Round(ex)), int(ey)))

	// an empty cell stays white
	wx, wy := ax.toPixel(10, 1)
	assert.Equal(t, fig.Background, img.RGBAAt(int(wx), int(wy)))
}

func TestRasterizeColorbar(t *testing.T) {
	fig, ax, ov := overlayFor(t, values.Mapping{"H": 1, "He": 10}, heatmap.SymbolOnly)
	img, _, err := fig.Rasterize()
	require.NoError(t, err)

	left, top := ax.fracToPixel(LegendBox.X, LegendBox.Y+LegendBox.H)
	right, bottom := ax.fracToPixel(LegendBox.X+LegendBox.W, LegendBox.Y)
	midY := int((top + bottom) / 2)

	g := ov.Legend.Gradient
	lo := img.RGBAAt(int(left)+3, midY)
	hi := img.RGBAAt(int(right)-3, midY)
	assert.InDelta(t, float64(g.At(0).B), float64(lo.B), 12)
	assert.InDelta(t, float64(g.At(1).B), float64(hi.B), 12)
	assert.NotEqual(t, lo, hi)
}

func TestImageTightCrop(t *testing.T) {
	fig, _, _ := overlayFor(t, values.Mapping{"H": 1, "He": 2}, heatmap.SymbolAndValue)

	full, err := fig.Image(false)
	require.NoError(t, err)
	tight, err := fig.Image(true)
	require.NoError(t, err)

	w, h := fig.PixelSize()
	assert.Equal(t, image.Rect(0, 0, w, h), full.Bounds())
	assert.Less(t, tight.Bounds().Dx(), w)
	assert.Less(t, tight.Bounds().Dy(), h)
}

func TestSavePNG(t *testing.T) {
	fig, _, _ := overlayFor(t, values.Mapping{"H": 1, "He": 2}, heatmap.SymbolAndValue)
	path := filepath.Join(t.TempDir(), "table.png")
	require.NoError(t, fig.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	tight, err := fig.Image(true)
	require.NoError(t, err)
	assert.Equal(t, tight.Bounds().Size(), img.Bounds().Size())
}

func TestSavePNGFailure(t *testing.T) {
	fig, _ := baseTable(t)
	err := fig.SavePNG(filepath.Join(t.TempDir(), "missing", "table.png"))
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	fig, _ := baseTable(t)
	var buf bytes.Buffer
	require.NoError(t, fig.EncodePNG(&buf, true))
	_, err := png.Decode(&buf)
	require.NoError(t, err)
}

func TestRenderCard(t *testing.T) {
	fe, ok := loadTable(t).Lookup("Fe")
	require.True(t, ok)

	fill := color.RGBA{R: 10, G: 100, B: 200, A: 0xff}
	card := Card{Element: fe, Value: "61", Fill: fill, Text: heatmap.White, Alpha: 1}
	assert.Equal(t, "026-Iron.png", card.Filename())

	img, err := RenderCard(nil, card, 246, 188)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 246, 188), img.Bounds())
	assert.Equal(t, fill, img.RGBAAt(240, 5))

	path, err := SaveCard(nil, card, t.TempDir(), 246, 188)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSaveCardFailure(t *testing.T) {
	fe, ok := loadTable(t).Lookup("Fe")
	require.True(t, ok)
	card := Card{Element: fe, Value: "61", Fill: heatmap.White, Text: heatmap.Black, Alpha: 1}

	_, err := SaveCard(nil, card, filepath.Join(t.TempDir(), "missing"), 64, 49)
	assert.Error(t, err)

	path, err := SaveCard(nil, card, t.TempDir(), 64, 49)
	require.NoError(t, err)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 49), img.Bounds())
}

func TestLoadFonts(t *testing.T) {
	def, err := DefaultFonts()
	require.NoError(t, err)

	fonts, err := LoadFonts("", "")
	require.NoError(t, err)
	assert.Same(t, def.Regular, fonts.Regular)
	assert.Same(t, def.Bold, fonts.Bold)

	_, err = LoadFonts(filepath.Join(t.TempDir(), "nope.ttf"), "")
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(bad, []byte("not a font"), 0o644))
	_, err = LoadFonts("", bad)
	assert.Error(t, err)
}
