package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"element-heatmap/internal/elements"
)

// Card geometry at the reference size; other sizes scale with width.
const (
	CardWidth  = 2456
	CardHeight = 1882
)

// Card is one element tile: background from the value gradient, number in
// the top-left corner, symbol in the centre, name and value below.
type Card struct {
	Element elements.Element
	Value   string
	Fill    color.RGBA
	Text    color.RGBA
	Alpha   float64
}

// Filename is the card's file name inside the output directory.
func (c Card) Filename() string {
	return fmt.Sprintf("%03d-%s.png", c.Element.AtomicNumber, c.Element.Name)
}

// RenderCard draws c on a width x height canvas. Pass zero sizes for the
// reference 2456x1882.
func RenderCard(fonts *Fonts, c Card, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		width, height = CardWidth, CardHeight
	}
	if fonts == nil {
		var err error
		if fonts, err = DefaultFonts(); err != nil {
			return nil, err
		}
	}
	scale := float64(width) / CardWidth

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c.Fill}, image.Point{}, draw.Src)

	src := color.NRGBA{R: c.Text.R, G: c.Text.G, B: c.Text.B, A: uint8(clamp01(c.Alpha)*255 + 0.5)}
	fc := freetype.NewContext()
	fc.SetDPI(72)
	fc.SetFont(fonts.Regular)
	fc.SetClip(img.Bounds())
	fc.SetDst(img)
	fc.SetSrc(image.NewUniform(src))

	// Atomic Number (Top Left)
	fc.SetFontSize(36 * scale)
	numberAt := fixed.Point26_6{X: fixed.I(int(20 * scale)), Y: fixed.I(int(50 * scale))}
	if _, err := fc.DrawString(fmt.Sprintf("%d", c.Element.AtomicNumber), numberAt); err != nil {
		return nil, errors.Wrap(err, "draw atomic number")
	}

	// Symbol (Center), bold
	fc.SetFont(fonts.Bold)
	symbolAt := fixed.Point26_6{X: fixed.I(width / 2), Y: fixed.I(height/2 + int(30*scale))}
	if err := drawCenteredText(fc, c.Element.Symbol, symbolAt, fonts.Bold, 180*scale); err != nil {
		return nil, err
	}

	// Name (Below Symbol)
	fc.SetFont(fonts.Regular)
	nameAt := fixed.Point26_6{X: fixed.I(width / 2), Y: fixed.I(int(float64(height)*0.75 + 20*scale))}
	if err := drawCenteredText(fc, c.Element.Name, nameAt, fonts.Regular, 40*scale); err != nil {
		return nil, err
	}

	// Value (Bottom Center)
	valueAt := fixed.Point26_6{X: fixed.I(width / 2), Y: fixed.I(int(float64(height)*0.88 + 20*scale))}
	if err := drawCenteredText(fc, c.Value, valueAt, fonts.Regular, 28*scale); err != nil {
		return nil, err
	}
	return img, nil
}

// SaveCard renders c and writes it into dir, returning the file path.
func SaveCard(fonts *Fonts, c Card, dir string, width, height int) (string, error) {
	img, err := RenderCard(fonts, c, width, height)
	if err != nil {
		return "", errors.Wrapf(err, "render card for %s", c.Element.Name)
	}
	path := filepath.Join(dir, c.Filename())
	outFile, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "create file for %s", c.Element.Name)
	}
	if err := png.Encode(outFile, img); err != nil {
		outFile.Close()
		return "", errors.Wrapf(err, "encode PNG for %s", c.Element.Name)
	}
	if err := outFile.Close(); err != nil {
		return "", errors.Wrapf(err, "close file for %s", c.Element.Name)
	}
	return path, nil
}

// drawCenteredText measures a string and draws it so its center is at the given point.
func drawCenteredText(c *freetype.Context, text string, pt fixed.Point26_6, f *truetype.Font, size float64) error {
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	drawer := &font.Drawer{Face: face}
	width := drawer.MeasureString(text)
	pt.X -= width / 2

	c.SetFontSize(size)
	if _, err := c.DrawString(text, pt); err != nil {
		return errors.Wrapf(err, "draw %q", text)
	}
	return nil
}
