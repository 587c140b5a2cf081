package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"element-heatmap/internal/heatmap"
	"element-heatmap/internal/palette"
)

// Artist is something drawable on an Axes.
type Artist interface {
	// Z orders painting; lower values are painted first.
	Z() float64
	draw(c *canvas, ax *Axes)
}

// Rect is an axis-aligned rectangle in data coordinates. X, Y is the corner
// with the smallest coordinates. A nil Fill or Edge is not painted.
type Rect struct {
	X, Y, W, H float64
	Fill       color.Color
	Edge       color.Color
	LineWidth  float64 // points
	ZOrder     float64
}

// Z implements Artist.
func (r Rect) Z() float64 { return r.ZOrder }

func (r Rect) draw(c *canvas, ax *Axes) {
	x0, y0 := ax.toPixel(r.X, r.Y)
	x1, y1 := ax.toPixel(r.X+r.W, r.Y+r.H)
	box := pixelRect(x0, y0, x1, y1)
	if r.Fill != nil {
		c.fill(box, r.Fill)
	}
	if r.Edge != nil && r.LineWidth > 0 {
		c.stroke(box, r.Edge, c.fig.pt(r.LineWidth))
	}
}

// Text is a string centred on X, Y in data coordinates.
type Text struct {
	X, Y   float64
	Text   string
	Size   float64 // points
	Color  color.RGBA
	Alpha  float64
	Bold   bool
	ZOrder float64
}

// Z implements Artist.
func (t Text) Z() float64 { return t.ZOrder }

func (t Text) draw(c *canvas, ax *Axes) {
	px, py := ax.toPixel(t.X, t.Y)
	c.text(t.Text, px, py, t.Size, t.Bold, t.Color, t.Alpha)
}

// Colorbar is a horizontal gradient strip with ticks below it.
type Colorbar struct {
	Box       Box
	Gradient  palette.Gradient
	Min, Max  float64
	Ticks     []float64
	LabelSize float64 // points
	ZOrder    float64
}

// Z implements Artist.
func (cb Colorbar) Z() float64 { return cb.ZOrder }

const (
	colorbarOutline = 0.8 // points
	tickLength      = 3.5 // points
	tickPad         = 3.5 // points
)

func (cb Colorbar) draw(c *canvas, ax *Axes) {
	left, top := ax.fracToPixel(cb.Box.X, cb.Box.Y+cb.Box.H)
	right, bottom := ax.fracToPixel(cb.Box.X+cb.Box.W, cb.Box.Y)
	strip := pixelRect(left, top, right, bottom)
	width := strip.Dx()
	if width <= 0 || strip.Dy() <= 0 {
		return
	}
	for i := 0; i < width; i++ {
		t := (float64(i) + 0.5) / float64(width)
		col := image.Rect(strip.Min.X+i, strip.Min.Y, strip.Min.X+i+1, strip.Max.Y)
		c.fill(col, cb.Gradient.At(t))
	}
	lw := c.fig.pt(colorbarOutline)
	c.stroke(strip, color.Black, lw)

	tickLen := c.fig.pt(tickLength)
	seen := make(map[float64]bool, len(cb.Ticks))
	for _, v := range cb.Ticks {
		if seen[v] {
			continue
		}
		seen[v] = true
		frac := heatmap.DegenerateNorm
		if cb.Max != cb.Min {
			frac = (v - cb.Min) / (cb.Max - cb.Min)
		}
		x := left + frac*(right-left)
		c.fill(pixelRect(x-lw/2, bottom, x+lw/2, bottom+tickLen), color.Black)

		labelTop := bottom + tickLen + c.fig.pt(tickPad)
		c.textTop(heatmap.FormatTick(v), x, labelTop, cb.LabelSize, false, heatmap.Black, 1)
	}
}

// Swatches is a categorical key: coloured squares with labels, laid out in
// columns starting at X, Y (data coordinates, top-left).
type Swatches struct {
	X, Y      float64
	Entries   []heatmap.Swatch
	Size      float64 // points
	PerColumn int
	ZOrder    float64
}

// Z implements Artist.
func (s Swatches) Z() float64 { return s.ZOrder }

func (s Swatches) draw(c *canvas, ax *Axes) {
	if len(s.Entries) == 0 {
		return
	}
	per := s.PerColumn
	if per <= 0 {
		per = len(s.Entries)
	}
	x0, y0 := ax.toPixel(s.X, s.Y)
	box := c.fig.pt(s.Size)
	step := box * 1.5
	gap := box * 0.5

	face := c.fig.fonts.face(false, s.Size, c.fig.DPI)
	defer face.Close()
	drawer := &font.Drawer{Face: face}
	colWidth := 0.0
	for _, e := range s.Entries {
		w := float64(drawer.MeasureString(e.Label)) / 64
		colWidth = math.Max(colWidth, box+gap+w+box)
	}

	for i, e := range s.Entries {
		col, row := i/per, i%per
		x := x0 + float64(col)*colWidth
		y := y0 + float64(row)*step
		sq := pixelRect(x, y, x+box, y+box)
		c.fill(sq, e.Color)
		c.stroke(sq, color.Black, c.fig.pt(colorbarOutline))
		c.textLeft(e.Label, x+box+gap, y+box/2, s.Size, heatmap.Black)
	}
}

// canvas is the raster target of one export. It records the union of all
// painted pixels for tight cropping.
type canvas struct {
	img   *image.RGBA
	fig   *Figure
	drawn image.Rectangle
	err   error
}

func newCanvas(f *Figure) *canvas {
	w, h := f.PixelSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: f.Background}, image.Point{}, draw.Src)
	return &canvas{img: img, fig: f}
}

func (c *canvas) mark(r image.Rectangle) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	c.drawn = c.drawn.Union(r)
}

func (c *canvas) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, &image.Uniform{C: col}, image.Point{}, draw.Over)
	c.mark(r)
}

// stroke paints a border of width px centred on the edges of r.
func (c *canvas) stroke(r image.Rectangle, col color.Color, width float64) {
	w := max(1, int(math.Round(width)))
	lo := w / 2
	hi := w - lo
	outer := image.Rect(r.Min.X-lo, r.Min.Y-lo, r.Max.X+hi, r.Max.Y+hi)
	c.fill(image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, r.Min.Y+hi), col)
	c.fill(image.Rect(outer.Min.X, r.Max.Y-lo, outer.Max.X, outer.Max.Y), col)
	c.fill(image.Rect(outer.Min.X, r.Min.Y+hi, r.Min.X+hi, r.Max.Y-lo), col)
	c.fill(image.Rect(r.Max.X-lo, r.Min.Y+hi, outer.Max.X, r.Max.Y-lo), col)
}

// text draws s centred horizontally and vertically on (cx, cy).
func (c *canvas) text(s string, cx, cy, size float64, bold bool, col color.RGBA, alpha float64) {
	face := c.fig.fonts.face(bold, size, c.fig.DPI)
	defer face.Close()
	m := face.Metrics()
	baseline := fixed.Int26_6(cy*64) + (m.Ascent-m.Descent)/2
	c.drawString(s, cx, baseline, size, bold, col, alpha, 0.5)
}

// textTop draws s centred horizontally on cx with its top edge at top.
func (c *canvas) textTop(s string, cx, top, size float64, bold bool, col color.RGBA, alpha float64) {
	face := c.fig.fonts.face(bold, size, c.fig.DPI)
	defer face.Close()
	baseline := fixed.Int26_6(top*64) + face.Metrics().Ascent
	c.drawString(s, cx, baseline, size, bold, col, alpha, 0.5)
}

// textLeft draws s starting at x, vertically centred on cy.
func (c *canvas) textLeft(s string, x, cy, size float64, col color.RGBA) {
	face := c.fig.fonts.face(false, size, c.fig.DPI)
	defer face.Close()
	m := face.Metrics()
	baseline := fixed.Int26_6(cy*64) + (m.Ascent-m.Descent)/2
	c.drawString(s, x, baseline, size, false, col, 1, 0)
}

// drawString measures s and draws it so that the fraction anchor of its
// width sits on x.
func (c *canvas) drawString(s string, x float64, baseline fixed.Int26_6, size float64, bold bool, col color.RGBA, alpha float64, anchor float64) {
	face := c.fig.fonts.face(bold, size, c.fig.DPI)
	defer face.Close()
	drawer := &font.Drawer{Face: face}
	width := drawer.MeasureString(s)
	m := face.Metrics()

	pt := fixed.Point26_6{
		X: fixed.Int26_6(x*64) - fixed.Int26_6(float64(width)*anchor),
		Y: baseline,
	}

	src := color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(math.Round(clamp01(alpha) * 255))}
	fc := freetype.NewContext()
	fc.SetDPI(c.fig.DPI)
	fc.SetFont(c.fig.fonts.pick(bold))
	fc.SetFontSize(size)
	fc.SetHinting(font.HintingFull)
	fc.SetClip(c.img.Bounds())
	fc.SetDst(c.img)
	fc.SetSrc(image.NewUniform(src))
	if _, err := fc.DrawString(s, pt); err != nil {
		if c.err == nil {
			c.err = errors.Wrapf(err, "draw text %q", s)
		}
		return
	}
	c.mark(image.Rect(pt.X.Floor(), (baseline - m.Ascent).Floor(), (pt.X + width).Ceil(), (baseline + m.Descent).Ceil()))
}

func pixelRect(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
