// Package palette defines the named colour gradients and the discrete accent
// colours used to paint the table.
//
// Gradients are selected by position in GradientNames. An index outside the
// list is an error; there is no fallback scale.
package palette

import (
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGradientIndex selects GnBu, the scale used for the reference output.
const DefaultGradientIndex = 10

// ErrIndexOutOfRange is returned by GradientAt for an invalid index.
var ErrIndexOutOfRange = errors.New("gradient index out of range")

// ErrUnknownGradient is returned by GradientNamed for an unknown name.
var ErrUnknownGradient = errors.New("unknown gradient")

var gradientNames = []string{
	"Reds", "Blues", "Greens", "Purples", "Oranges", "YlOrBr", "OrRd", "PuRd", "RdPu", "BuPu", "GnBu",
	"PuBu", "YlGnBu", "PuBuGn", "BuGn", "YlGn", "viridis", "plasma", "inferno", "magma", "cividis",
}

// GradientNames returns the ordered list of gradient names.
func GradientNames() []string {
	out := make([]string, len(gradientNames))
	copy(out, gradientNames)
	return out
}

// GradientAt returns the gradient at position index of GradientNames.
func GradientAt(index int) (Gradient, error) {
	if index < 0 || index >= len(gradientNames) {
		return Gradient{}, errors.WithHintf(
			errors.Wrapf(ErrIndexOutOfRange, "index %d", index),
			"valid indices are 0..%d", len(gradientNames)-1)
	}
	return GradientNamed(gradientNames[index])
}

// GradientNamed looks a gradient up by name.
func GradientNamed(name string) (Gradient, error) {
	if g, ok := brewer[name]; ok {
		g.Name = name
		return g, nil
	}
	if g, ok := uniform[name]; ok {
		g.Name = name
		return g, nil
	}
	return Gradient{}, errors.Wrapf(ErrUnknownGradient, "%q", name)
}

// Keypoint is a colour pinned at a position in [0,1].
type Keypoint struct {
	Col colorful.Color
	Pos float64
}

// Gradient maps [0,1] to a colour by interpolating sorted keypoints.
type Gradient struct {
	Name      string
	Keypoints []Keypoint
}

// At returns the colour at t. t is clamped to [0,1]; NaN maps to 0.
// Interpolation is linear in sRGB, matching how the named scales are
// published.
func (g Gradient) At(t float64) color.RGBA {
	if len(g.Keypoints) == 0 {
		return color.RGBA{A: 0xff}
	}
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	kp := g.Keypoints
	for i := 0; i < len(kp)-1; i++ {
		c1, c2 := kp[i], kp[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			u := (t - c1.Pos) / (c2.Pos - c1.Pos)
			return toRGBA(c1.Col.BlendRgb(c2.Col, u).Clamped())
		}
	}
	return toRGBA(kp[len(kp)-1].Col)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// evenly spaces hex colours over [0,1].
func evenly(hexes ...string) Gradient {
	kp := make([]Keypoint, len(hexes))
	for i, h := range hexes {
		kp[i] = Keypoint{Col: MustParseHex(h), Pos: float64(i) / float64(len(hexes)-1)}
	}
	return Gradient{Keypoints: kp}
}

// MustParseHex parses "#rrggbb" and panics on malformed input. It is meant
// for package-level tables only.
func MustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}

var accentHex = []string{
	"#c3121e", // Sangre
	"#0348a1", // Neptune
	"#ffb01c", // Pumpkin
	"#027608", // Clover
	"#1dace6", // Cerulean
	"#9c5300", // Cocoa
	"#9966cc", // Amethyst
	"#ff4500", // Orange Red
}

// AccentColors returns the fixed discrete palette.
func AccentColors() []color.RGBA {
	out := make([]color.RGBA, len(accentHex))
	for i, h := range accentHex {
		out[i] = toRGBA(MustParseHex(h))
	}
	return out
}
