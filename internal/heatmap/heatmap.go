// Package heatmap turns a value mapping into a drawable overlay plan.
//
// Planning is pure: it decides the fill colour, label colour and label text
// of every cell and the legend ticks, but draws nothing. The render package
// consumes the plan.
package heatmap

import (
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"element-heatmap/internal/elements"
	"element-heatmap/internal/palette"
	"element-heatmap/internal/values"
)

const (
	// ContrastThreshold is the normalized value above which labels turn
	// white. It is fixed and does not follow the gradient's luminance.
	ContrastThreshold = 0.74

	// DegenerateNorm is the normalized value used for every cell when all
	// values are equal.
	DegenerateNorm = 0.5

	// ZeroLabelAlpha fades labels of cells whose value is exactly zero.
	ZeroLabelAlpha = 0.5

	// LegendTicks is the number of evenly spaced colorbar ticks.
	LegendTicks = 4

	// Label sizes in points.
	SymbolOnlySize     = 24
	SymbolAndValueSize = 22

	// ValueLabelOffset is the vertical distance, in cell units, of the two
	// stacked labels from the cell centre.
	ValueLabelOffset = 0.2
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown overlay mode")

// Label colours.
var (
	// Black is used on light cells and for zero values.
	Black = color.RGBA{A: 0xff}
	// White is used on cells past ContrastThreshold.
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Mode selects the label content of each cell.
type Mode int

const (
	// SymbolAndValue stacks the bold symbol above the raw value.
	SymbolAndValue Mode = iota
	// SymbolOnly centres the symbol in the cell.
	SymbolOnly
	// Category colours cells by element category with accent colours.
	Category
)

var modeNames = map[Mode]string{
	SymbolAndValue: "symbol-value",
	SymbolOnly:     "symbol",
	Category:       "category",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ModeNames lists the accepted mode strings.
func ModeNames() []string {
	return []string{SymbolAndValue.String(), SymbolOnly.String(), Category.String()}
}

// ParseMode parses a mode name as printed by Mode.String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, errors.WithHintf(errors.Wrapf(ErrUnknownMode, "%q", s),
		"valid modes: %s", strings.Join(ModeNames(), ", "))
}

// Normalizer rescales values linearly from [Min, Max] to [0, 1].
type Normalizer struct {
	Min, Max float64
}

// NewNormalizer derives the range from m.
func NewNormalizer(m values.Mapping) (Normalizer, error) {
	lo, hi, err := m.Range()
	if err != nil {
		return Normalizer{}, err
	}
	return Normalizer{Min: lo, Max: hi}, nil
}

// Degenerate reports whether every value is equal.
func (n Normalizer) Degenerate() bool {
	return n.Max == n.Min
}

// Norm maps v into [0, 1]. A degenerate range yields DegenerateNorm.
func (n Normalizer) Norm(v float64) float64 {
	if n.Degenerate() {
		return DegenerateNorm
	}
	return (v - n.Min) / (n.Max - n.Min)
}

// Contrast picks the label colour and opacity for a cell with raw value v
// and normalized value n.
func Contrast(v, n float64) (color.RGBA, float64) {
	switch {
	case v == 0:
		return Black, ZeroLabelAlpha
	case n > ContrastThreshold:
		return White, 1
	default:
		return Black, 1
	}
}

// Ticks returns LegendTicks evenly spaced values from lo to hi inclusive.
func Ticks(lo, hi float64) []float64 {
	ticks := make([]float64, LegendTicks)
	step := (hi - lo) / float64(LegendTicks-1)
	for i := range ticks {
		ticks[i] = lo + float64(i)*step
	}
	ticks[LegendTicks-1] = hi
	return ticks
}

// FormatValue renders a raw value the shortest way that round-trips.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTick renders a tick value with at most two decimals.
func FormatTick(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Label is one line of text inside a cell.
type Label struct {
	Text string
	// Offset is the vertical shift from the cell centre in cell units;
	// negative moves the label up.
	Offset float64
	Size   float64
	Bold   bool
}

// Cell is a filled element cell.
type Cell struct {
	Symbol string
	At     elements.Coordinate
	Value  float64
	Norm   float64
	Fill   color.RGBA
	Text   color.RGBA
	Alpha  float64
	Labels []Label
}

// Legend is the colorbar summarizing the value to colour mapping.
type Legend struct {
	Gradient palette.Gradient
	Min, Max float64
	Ticks    []float64
}

// Swatch is one entry of a categorical key.
type Swatch struct {
	Label string
	Color color.RGBA
}

// Overlay is everything the renderer needs to paint values on the table.
type Overlay struct {
	Mode     Mode
	Cells    []Cell
	Legend   *Legend
	Swatches []Swatch
	// Skipped lists symbols that have a value but no cell.
	Skipped []string
}

// Plan builds a gradient overlay for vals. Symbols missing from coords are
// recorded in Skipped and otherwise ignored.
func Plan(coords map[string]elements.Coordinate, vals values.Mapping, g palette.Gradient, mode Mode) (*Overlay, error) {
	if mode != SymbolOnly && mode != SymbolAndValue {
		return nil, errors.Newf("gradient overlay does not support mode %s", mode)
	}
	norm, err := NewNormalizer(vals)
	if err != nil {
		return nil, err
	}

	ov := &Overlay{
		Mode: mode,
		Legend: &Legend{
			Gradient: g,
			Min:      norm.Min,
			Max:      norm.Max,
			Ticks:    Ticks(norm.Min, norm.Max),
		},
	}
	for _, sym := range vals.Symbols() {
		at, ok := coords[sym]
		if !ok {
			ov.Skipped = append(ov.Skipped, sym)
			continue
		}
		v := vals[sym]
		n := norm.Norm(v)
		txt, alpha := Contrast(v, n)
		ov.Cells = append(ov.Cells, Cell{
			Symbol: sym,
			At:     at,
			Value:  v,
			Norm:   n,
			Fill:   g.At(n),
			Text:   txt,
			Alpha:  alpha,
			Labels: labels(sym, v, mode),
		})
	}
	return ov, nil
}

func labels(sym string, v float64, mode Mode) []Label {
	if mode == SymbolOnly {
		return []Label{{Text: sym, Size: SymbolOnlySize}}
	}
	return []Label{
		{Text: sym, Offset: -ValueLabelOffset, Size: SymbolAndValueSize, Bold: true},
		{Text: FormatValue(v), Offset: ValueLabelOffset, Size: SymbolAndValueSize},
	}
}

// PlanCategories colours every element of table by its category, cycling
// through accents in order of first appearance.
func PlanCategories(table *elements.Table, accents []color.RGBA) (*Overlay, error) {
	if len(accents) == 0 {
		return nil, errors.New("categorical overlay needs at least one accent colour")
	}
	cats := table.Categories()
	fill := make(map[string]color.RGBA, len(cats))
	ov := &Overlay{Mode: Category}
	for i, c := range cats {
		fill[c] = accents[i%len(accents)]
		ov.Swatches = append(ov.Swatches, Swatch{Label: c, Color: fill[c]})
	}

	els := table.Elements()
	sort.Slice(els, func(i, j int) bool { return els[i].Symbol < els[j].Symbol })
	for _, el := range els {
		bg := fill[el.Category]
		ov.Cells = append(ov.Cells, Cell{
			Symbol: el.Symbol,
			At:     el.Coordinate(),
			Value:  float64(el.AtomicNumber),
			Fill:   bg,
			Text:   readableOn(bg),
			Alpha:  1,
			Labels: []Label{{Text: el.Symbol, Size: SymbolOnlySize}},
		})
	}
	return ov, nil
}

// readableOn returns black or white, whichever reads better on bg.
func readableOn(bg color.RGBA) color.RGBA {
	l := 0.2126*float64(bg.R) + 0.7152*float64(bg.G) + 0.0722*float64(bg.B)
	if l > 140 {
		return Black
	}
	return White
}
