// Package config loads render settings with Viper.
//
// Precedence, lowest first: built-in defaults, an optional TOML config file,
// ELEMENT_HEATMAP_* environment variables, command-line flags bound by the
// CLI.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"element-heatmap/internal/heatmap"
	"element-heatmap/internal/palette"
	"element-heatmap/internal/render"
	"element-heatmap/internal/values"
)

// EnvPrefix prefixes environment overrides, e.g. ELEMENT_HEATMAP_DPI.
const EnvPrefix = "ELEMENT_HEATMAP"

// Keys shared by the config file, environment and flags.
const (
	KeyOutput      = "output"
	KeyDPI         = "dpi"
	KeyMode        = "mode"
	KeyDataset     = "dataset"
	KeyValuesFile  = "values_file"
	KeyGradient    = "gradient"
	KeyFontRegular = "font.regular"
	KeyFontBold    = "font.bold"
	KeyCardsDir    = "cards.dir"
	KeyCardsWidth  = "cards.width"
	KeyCardsHeight = "cards.height"
)

// DefaultOutput is the file written by the reference wiring.
const DefaultOutput = "mendeleev_colored_table_numbers.png"

// DefaultCardsDir receives per-element cards.
const DefaultCardsDir = "elements"

// ErrInvalid marks configuration that failed validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every render setting.
type Config struct {
	Output        string      `mapstructure:"output"`
	DPI           float64     `mapstructure:"dpi"`
	Mode          string      `mapstructure:"mode"`
	Dataset       string      `mapstructure:"dataset"`
	ValuesFile    string      `mapstructure:"values_file"`
	GradientIndex int         `mapstructure:"gradient"`
	Font          FontConfig  `mapstructure:"font"`
	Cards         CardsConfig `mapstructure:"cards"`
}

// FontConfig overrides the embedded fonts with TTF files.
type FontConfig struct {
	Regular string `mapstructure:"regular"`
	Bold    string `mapstructure:"bold"`
}

// CardsConfig controls per-element card export.
type CardsConfig struct {
	Dir    string `mapstructure:"dir"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyDPI, render.DefaultDPI)
	v.SetDefault(KeyMode, heatmap.SymbolAndValue.String())
	v.SetDefault(KeyDataset, values.DatasetMendeleev)
	v.SetDefault(KeyValuesFile, "")
	v.SetDefault(KeyGradient, palette.DefaultGradientIndex)
	v.SetDefault(KeyFontRegular, "")
	v.SetDefault(KeyFontBold, "")
	v.SetDefault(KeyCardsDir, DefaultCardsDir)
	v.SetDefault(KeyCardsWidth, render.CardWidth)
	v.SetDefault(KeyCardsHeight, render.CardHeight)
}

// New builds a Viper instance with defaults and environment binding. When
// path is not empty the TOML file is read as well.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}
	return v, nil
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.Wrap(ErrInvalid, "output path is empty")
	}
	if c.DPI <= 0 {
		return errors.Wrapf(ErrInvalid, "dpi must be positive, got %v", c.DPI)
	}
	if _, err := heatmap.ParseMode(c.Mode); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	if _, err := palette.GradientAt(c.GradientIndex); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	if c.Cards.Width < 0 || c.Cards.Height < 0 {
		return errors.Wrapf(ErrInvalid, "card size must not be negative, got %dx%d", c.Cards.Width, c.Cards.Height)
	}
	return nil
}

// OverlayMode returns the parsed mode. Call after Validate.
func (c *Config) OverlayMode() heatmap.Mode {
	m, _ := heatmap.ParseMode(c.Mode)
	return m
}
