// Package render draws the periodic table and its value overlay.
//
// Drawing is deferred: NewBaseTable and ApplyOverlay only append artists to
// an Axes. Pixels are produced when the Figure is rasterized for export, at
// which point artists are painted in z-order so that overlay fills land
// beneath the grid lines and labels.
package render

import (
	"image/color"
	"sort"

	"github.com/cockroachdb/errors"
)

// DefaultDPI is the export resolution of the reference output.
const DefaultDPI = 500

// Figure is the canvas: a physical size in inches, a resolution and the
// axes placed on it.
type Figure struct {
	WidthIn, HeightIn float64
	DPI               float64
	Background        color.RGBA

	fonts *Fonts
	axes  []*Axes
}

// Option configures a Figure.
type Option func(*Figure)

// WithDPI sets the rasterization resolution.
func WithDPI(dpi float64) Option {
	return func(f *Figure) { f.DPI = dpi }
}

// WithFonts replaces the embedded fonts.
func WithFonts(fonts *Fonts) Option {
	return func(f *Figure) { f.fonts = fonts }
}

// NewFigure creates an empty white figure.
func NewFigure(widthIn, heightIn float64, opts ...Option) (*Figure, error) {
	f := &Figure{
		WidthIn:    widthIn,
		HeightIn:   heightIn,
		DPI:        DefaultDPI,
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.DPI <= 0 {
		return nil, errors.Newf("dpi must be positive, got %v", f.DPI)
	}
	if widthIn <= 0 || heightIn <= 0 {
		return nil, errors.Newf("figure size must be positive, got %vx%v in", widthIn, heightIn)
	}
	if f.fonts == nil {
		fonts, err := DefaultFonts()
		if err != nil {
			return nil, err
		}
		f.fonts = fonts
	}
	return f, nil
}

// AddAxes places a new axes at left/top (inches) with the given size and
// data limits. Y data grows downward.
func (f *Figure) AddAxes(leftIn, topIn, widthIn, heightIn float64, lim Limits) *Axes {
	ax := &Axes{
		fig:      f,
		LeftIn:   leftIn,
		TopIn:    topIn,
		WidthIn:  widthIn,
		HeightIn: heightIn,
		Lim:      lim,
	}
	f.axes = append(f.axes, ax)
	return ax
}

// PixelSize is the raster size at the figure's DPI.
func (f *Figure) PixelSize() (w, h int) {
	return int(f.WidthIn*f.DPI + 0.5), int(f.HeightIn*f.DPI + 0.5)
}

// pt converts points to pixels.
func (f *Figure) pt(points float64) float64 {
	return points * f.DPI / 72
}

// Limits are the data coordinates visible in an axes.
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Axes is a data-coordinate drawing surface owned by a Figure. It is not
// safe for concurrent use.
type Axes struct {
	LeftIn, TopIn     float64
	WidthIn, HeightIn float64
	Lim               Limits

	fig     *Figure
	artists []Artist
}

// Figure returns the owning figure.
func (a *Axes) Figure() *Figure { return a.fig }

// Add appends artists.
func (a *Axes) Add(artists ...Artist) {
	a.artists = append(a.artists, artists...)
}

// Artists returns a copy of the artist list in insertion order.
func (a *Axes) Artists() []Artist {
	return append([]Artist(nil), a.artists...)
}

// sorted returns artists ordered by z, insertion order breaking ties.
func (a *Axes) sorted() []Artist {
	out := a.Artists()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z() < out[j].Z() })
	return out
}

// toPixel maps data coordinates to raster pixels.
func (a *Axes) toPixel(x, y float64) (float64, float64) {
	dpi := a.fig.DPI
	px := (a.LeftIn + (x-a.Lim.XMin)/(a.Lim.XMax-a.Lim.XMin)*a.WidthIn) * dpi
	py := (a.TopIn + (y-a.Lim.YMin)/(a.Lim.YMax-a.Lim.YMin)*a.HeightIn) * dpi
	return px, py
}

// fracToPixel maps axes-fraction coordinates, measured from the bottom-left
// corner, to raster pixels.
func (a *Axes) fracToPixel(fx, fy float64) (float64, float64) {
	dpi := a.fig.DPI
	return (a.LeftIn + fx*a.WidthIn) * dpi, (a.TopIn + (1-fy)*a.HeightIn) * dpi
}

// Box is a rectangle in axes-fraction units: X, Y locate the bottom-left
// corner.
type Box struct {
	X, Y, W, H float64
}
