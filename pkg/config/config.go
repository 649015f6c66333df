// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/user/instantfilm/pkg/film"
	"github.com/user/instantfilm/pkg/painter"
	"github.com/user/instantfilm/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration of the film command.
type Config struct {
	// Resources
	Font    string `yaml:"font"`
	SubFont string `yaml:"sub_font"`
	Logos   string `yaml:"logos"`

	// Input/Output
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Painting
	Painter  string      `yaml:"painter"`
	Position string      `yaml:"position"`
	Pad      bool        `yaml:"pad"`
	Theme    ThemeConfig `yaml:"theme"`

	// Encoding
	Format     string `yaml:"format"`
	Quality    int    `yaml:"quality"`
	AutoOrient bool   `yaml:"auto_orient"`

	// Batch
	Workers int `yaml:"workers"`

	// Logging
	LogLevel ports.LogLevel `yaml:"log_level"`

	// HTTP server
	Server ServerConfig `yaml:"server"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// ThemeConfig represents theme colors as "#rrggbb" strings.
// Empty values keep the default theme color.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
}

// ServerConfig represents HTTP server settings.
type ServerConfig struct {
	Port          int   `yaml:"port"`
	MaxUploadMB   int64 `yaml:"max_upload_mb"`
	MaxConcurrent int   `yaml:"max_concurrent"`
	RatePerMinute int   `yaml:"rate_per_minute"` // per client IP, 0 disables
	Burst         int   `yaml:"burst"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Painting
		Painter: painter.StyleTriangular,

		// Encoding
		Format:     "jpeg",
		Quality:    90,
		AutoOrient: true,

		// Logging
		LogLevel: ports.LevelInfo,

		// HTTP server
		Server: ServerConfig{
			Port:        3000,
			MaxUploadMB: 200,
		},

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that flags and files cannot constrain by type.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "jpeg", "jpg", "png":
	default:
		return fmt.Errorf("unknown format %q (expected jpeg or png)", c.Format)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", c.Quality)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Server.MaxConcurrent < 0 {
		return fmt.Errorf("server max_concurrent must not be negative, got %d", c.Server.MaxConcurrent)
	}
	if c.Server.RatePerMinute < 0 || c.Server.Burst < 0 {
		return fmt.Errorf("server rate_per_minute and burst must not be negative")
	}
	if _, err := c.Theme.ToTheme(); err != nil {
		return err
	}
	return nil
}

// WarnFallbacks logs painter and position names that are not recognized.
// They are not errors: the painter factory falls back to its defaults.
func (c Config) WarnFallbacks(log ports.Logger) {
	if style := strings.ToLower(strings.TrimSpace(c.Painter)); style != "" && !painter.IsStyle(style) {
		log.Warn("Unknown painter %q, using %s", c.Painter, painter.StyleTriangular)
	}
	if strings.TrimSpace(c.Position) != "" && film.ParsePosition(c.Position) == film.PositionNone {
		log.Warn("Unknown position %q, using the painter default", c.Position)
	}
}

// ToTheme converts the configured colors to a film.Theme. Empty colors stay
// unset so painters fall back to film.DefaultTheme.
func (t ThemeConfig) ToTheme() (film.Theme, error) {
	var theme film.Theme
	for _, f := range []struct {
		name  string
		value string
		dst   *color.Color
	}{
		{"background", t.Background, &theme.Background},
		{"primary", t.Primary, &theme.Primary},
		{"secondary", t.Secondary, &theme.Secondary},
	} {
		if f.value == "" {
			continue
		}
		c, err := ParseColor(f.value)
		if err != nil {
			return film.Theme{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return theme, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the "#" is optional).
func ParseColor(hex string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", hex)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
