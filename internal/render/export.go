package render

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// TightPad is the padding kept around drawn content when cropping, in
// inches.
const TightPad = 0.1

// Rasterize paints every axes of the figure and returns the full canvas
// together with the bounds of everything that was drawn.
func (f *Figure) Rasterize() (*image.RGBA, image.Rectangle, error) {
	c := newCanvas(f)
	for _, ax := range f.axes {
		for _, a := range ax.sorted() {
			a.draw(c, ax)
		}
	}
	if c.err != nil {
		return nil, image.Rectangle{}, c.err
	}
	return c.img, c.drawn, nil
}

// Image rasterizes the figure. With tight set the result is cropped to the
// drawn content plus TightPad.
func (f *Figure) Image(tight bool) (image.Image, error) {
	img, drawn, err := f.Rasterize()
	if err != nil {
		return nil, err
	}
	if !tight || drawn.Empty() {
		return img, nil
	}
	pad := int(TightPad*f.DPI + 0.5)
	crop := drawn.Inset(-pad).Intersect(img.Bounds())
	return img.SubImage(crop), nil
}

// EncodePNG writes the figure as PNG.
func (f *Figure) EncodePNG(w io.Writer, tight bool) error {
	img, err := f.Image(tight)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

// SavePNG writes the tightly cropped figure to path.
func (f *Figure) SavePNG(path string) error {
	outFile, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	bw := bufio.NewWriter(outFile)
	if err := f.EncodePNG(bw, true); err != nil {
		outFile.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		outFile.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := outFile.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
