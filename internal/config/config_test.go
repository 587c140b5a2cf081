package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"element-heatmap/internal/heatmap"
	"element-heatmap/internal/palette"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, 500.0, cfg.DPI)
	assert.Equal(t, "symbol-value", cfg.Mode)
	assert.Equal(t, heatmap.SymbolAndValue, cfg.OverlayMode())
	assert.Equal(t, "mendeleev", cfg.Dataset)
	assert.Equal(t, palette.DefaultGradientIndex, cfg.GradientIndex)
	assert.Equal(t, "elements", cfg.Cards.Dir)
	assert.Empty(t, cfg.Font.Regular)
}

func TestNewReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatmap.toml")
	content := `
output = "out.png"
dpi = 72
mode = "symbol"
gradient = 16

[font]
bold = "/fonts/bold.ttf"

[cards]
dir = "tiles"
width = 400
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "out.png", cfg.Output)
	assert.Equal(t, 72.0, cfg.DPI)
	assert.Equal(t, heatmap.SymbolOnly, cfg.OverlayMode())
	assert.Equal(t, 16, cfg.GradientIndex)
	assert.Equal(t, "/fonts/bold.ttf", cfg.Font.Bold)
	assert.Equal(t, "tiles", cfg.Cards.Dir)
	assert.Equal(t, 400, cfg.Cards.Width)
	assert.Equal(t, "mendeleev", cfg.Dataset)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("ELEMENT_HEATMAP_DPI", "96")
	t.Setenv("ELEMENT_HEATMAP_CARDS_DIR", "from-env")

	v, err := New("")
	require.NoError(t, err)
	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, 96.0, cfg.DPI)
	assert.Equal(t, "from-env", cfg.Cards.Dir)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Output: "x.png", DPI: 100, Mode: "symbol", GradientIndex: 0}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"empty output", func(c *Config) { c.Output = "" }, false},
		{"zero dpi", func(c *Config) { c.DPI = 0 }, false},
		{"negative dpi", func(c *Config) { c.DPI = -5 }, false},
		{"bad mode", func(c *Config) { c.Mode = "glitter" }, false},
		{"category mode", func(c *Config) { c.Mode = "category" }, true},
		{"gradient too large", func(c *Config) { c.GradientIndex = 21 }, false},
		{"gradient negative", func(c *Config) { c.GradientIndex = -1 }, false},
		{"negative card size", func(c *Config) { c.Cards.Width = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}
