package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

const DefaultFilename = "config.yaml"

func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lifespan")
}

// Config controls the views and rendering of a report. Any field omitted from
// a configuration file keeps its default value.
type Config struct {
	Limit        int       `yaml:"limit"`          // number of presidents in each ranking
	BinEdges     []float64 `yaml:"bin_edges"`      // histogram bucket boundaries in years
	FontFile     string    `yaml:"font_file"`      // regular truetype font
	BoldFontFile string    `yaml:"bold_font_file"` // bold truetype font for captions and headers
	FontSize     float64   `yaml:"font_size"`      // points
	Colors       Colors    `yaml:"colors"`
}

// Colors are hex RGB values such as "99ddff".
type Colors struct {
	YearOfBirth string `yaml:"year_of_birth"`
	LivedYears  string `yaml:"lived_years"`
	LivedMonths string `yaml:"lived_months"`
	LivedDays   string `yaml:"lived_days"`
	Histogram   string `yaml:"histogram"`
	Mode        string `yaml:"mode"`
	Median      string `yaml:"median"`
	Mean        string `yaml:"mean"`
}

func Default() *Config {
	return &Config{
		Limit:        10,
		BinEdges:     []float64{40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100},
		FontFile:     "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		BoldFontFile: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		FontSize:     10,
		Colors: Colors{
			YearOfBirth: "99ddff",
			LivedYears:  "66ccff",
			LivedMonths: "33bbff",
			LivedDays:   "00aaff",
			Histogram:   "80d4ff",
			Mode:        "008000",
			Median:      "ff0000",
			Mean:        "800080",
		},
	}
}

// Load reads configuration from a YAML file over the defaults. An empty
// filename or a file that does not exist yields the defaults.
func Load(filename string) (*Config, error) {
	c := Default()
	if filename == "" {
		return c, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no config file", "filename", filename)
			return c, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	slog.Info("reading config", "filename", filename)
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	if len(c.BinEdges) < 2 {
		return fmt.Errorf("need at least two bin edges")
	}
	for _, s := range []string{
		c.Colors.YearOfBirth, c.Colors.LivedYears, c.Colors.LivedMonths, c.Colors.LivedDays,
		c.Colors.Histogram, c.Colors.Mode, c.Colors.Median, c.Colors.Mean,
	} {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("color %q: %w", s, err)
		}
	}
	return nil
}

// ParseColor parses a hex RGB value, with or without a leading '#'.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("want 6 hex digits")
	}
	intColor, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}

	return color.RGBA{uint8((intColor & 0xFF0000) >> 16), uint8((intColor & 0x00FF00) >> 8), uint8((intColor & 0x0000FF)), 0xFF}, nil
}

// MustColor parses a color already checked by Validate.
func MustColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return color.Black
	}
	return c
}
