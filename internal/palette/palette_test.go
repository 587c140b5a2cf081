package palette

import (
	"image/color"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientNames(t *testing.T) {
	names := GradientNames()
	require.Len(t, names, 21)
	assert.Equal(t, "Reds", names[0])
	assert.Equal(t, "GnBu", names[DefaultGradientIndex])
	assert.Equal(t, "cividis", names[20])

	names[0] = "changed"
	assert.Equal(t, "Reds", GradientNames()[0])
}

func TestEveryNameResolves(t *testing.T) {
	for i, name := range GradientNames() {
		g, err := GradientAt(i)
		require.NoErrorf(t, err, "index %d", i)
		assert.Equal(t, name, g.Name)
		assert.GreaterOrEqual(t, len(g.Keypoints), 2)
		assert.Equal(t, 0.0, g.Keypoints[0].Pos)
		assert.Equal(t, 1.0, g.Keypoints[len(g.Keypoints)-1].Pos)
	}
}

func TestGradientAtOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 21, 100} {
		_, err := GradientAt(idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
		assert.NotEmpty(t, errors.GetAllHints(err))
	}
}

func TestGradientNamedUnknown(t *testing.T) {
	_, err := GradientNamed("rainbow")
	assert.True(t, errors.Is(err, ErrUnknownGradient))
}

func TestGnBuEndpoints(t *testing.T) {
	g, err := GradientAt(DefaultGradientIndex)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 0xF7, G: 0xFC, B: 0xF0, A: 0xff}, g.At(0))
	assert.Equal(t, color.RGBA{R: 0x08, G: 0x40, B: 0x81, A: 0xff}, g.At(1))
	assert.Equal(t, color.RGBA{R: 0x7B, G: 0xCC, B: 0xC4, A: 0xff}, g.At(0.5))
}

func TestAtClamps(t *testing.T) {
	g, err := GradientNamed("viridis")
	require.NoError(t, err)

	assert.Equal(t, g.At(0), g.At(-3))
	assert.Equal(t, g.At(1), g.At(7))
	assert.Equal(t, g.At(0), g.At(math.NaN()))
}

func TestAtInterpolates(t *testing.T) {
	g := evenly("#000000", "#FFFFFF")
	mid := g.At(0.5)
	assert.InDelta(t, 128, int(mid.R), 1)
	assert.Equal(t, mid.R, mid.G)
	assert.Equal(t, mid.G, mid.B)
}

func TestSequentialScalesDarken(t *testing.T) {
	lum := func(c color.RGBA) float64 {
		return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
	}
	for _, name := range GradientNames()[:16] {
		g, err := GradientNamed(name)
		require.NoError(t, err)
		assert.Greaterf(t, lum(g.At(0)), lum(g.At(1)), "%s should run light to dark", name)
	}
}

func TestAccentColors(t *testing.T) {
	acc := AccentColors()
	require.Len(t, acc, 8)
	assert.Equal(t, color.RGBA{R: 195, G: 18, B: 30, A: 0xff}, acc[0])
	assert.Equal(t, color.RGBA{R: 255, G: 69, B: 0, A: 0xff}, acc[7])

	acc[0] = color.RGBA{}
	assert.NotEqual(t, acc[0], AccentColors()[0], "AccentColors must return a fresh slice")
}

func TestMustParseHexPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseHex("nope") })
}
