package render

import (
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts is the regular/bold pair used for all text.
type Fonts struct {
	Regular *truetype.Font
	Bold    *truetype.Font
}

var (
	defaultFonts    *Fonts
	defaultFontsErr error
	defaultFontOnce sync.Once
)

// DefaultFonts returns the Go fonts embedded in golang.org/x/image, parsed
// once.
func DefaultFonts() (*Fonts, error) {
	defaultFontOnce.Do(func() {
		regular, err := freetype.ParseFont(goregular.TTF)
		if err != nil {
			defaultFontsErr = errors.Wrap(err, "parse embedded regular font")
			return
		}
		bold, err := freetype.ParseFont(gobold.TTF)
		if err != nil {
			defaultFontsErr = errors.Wrap(err, "parse embedded bold font")
			return
		}
		defaultFonts = &Fonts{Regular: regular, Bold: bold}
	})
	return defaultFonts, defaultFontsErr
}

// LoadFonts reads TTF files from disk. An empty path keeps the embedded
// font for that weight.
func LoadFonts(regularPath, boldPath string) (*Fonts, error) {
	def, err := DefaultFonts()
	if err != nil {
		return nil, err
	}
	out := *def
	if regularPath != "" {
		if out.Regular, err = loadTTF(regularPath); err != nil {
			return nil, err
		}
	}
	if boldPath != "" {
		if out.Bold, err = loadTTF(boldPath); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func loadTTF(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithHint(errors.Wrapf(err, "read font file %s", path),
			"point the font setting at a valid .ttf file or leave it empty")
	}
	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, errors.Wrapf(err, "parse font %s", path)
	}
	return f, nil
}

func (f *Fonts) pick(bold bool) *truetype.Font {
	if bold {
		return f.Bold
	}
	return f.Regular
}

// face builds a measuring face for size points at dpi.
func (f *Fonts) face(bold bool, size, dpi float64) font.Face {
	return truetype.NewFace(f.pick(bold), &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
