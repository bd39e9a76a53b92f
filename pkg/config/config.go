// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"github.com/user/gifplay/pkg/gifplay"
	"github.com/user/gifplay/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for the gifplay CLI.
type Config struct {
	// Export
	Workers    int     `yaml:"workers"`
	Format     string  `yaml:"format"` // "png" or "jpeg"
	Quality    int     `yaml:"quality"`
	Scale      float64 `yaml:"scale"`
	Background string  `yaml:"background"` // hex color; empty keeps transparency

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Workers:  0,
		Format:   "png",
		Quality:  90,
		Scale:    1.0,
		DebugDir: "./debug",
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToExportConfig converts Config to gifplay.Config.
func (c Config) ToExportConfig() gifplay.Config {
	builder := gifplay.NewConfigBuilder().
		WithWorkers(c.Workers).
		WithQuality(c.Quality).
		WithScale(c.Scale)

	if c.Format == "jpeg" || c.Format == "jpg" {
		builder.WithFormat(ports.FormatJPEG)
	}
	if c.Background != "" {
		builder.WithBackground(ParseColor(c.Background))
	}

	return builder.Build()
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
