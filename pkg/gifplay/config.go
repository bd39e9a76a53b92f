package gifplay

import (
	"image/color"

	"github.com/user/gifplay/pkg/ports"
)

// Config represents the configuration for frame export.
type Config struct {
	// Workers is the number of parallel encode workers (0 = NumCPU).
	Workers int

	// Format is the still image format for exported frames.
	Format ports.ImageFormat

	// Quality is the JPEG quality (1-100). Ignored for PNG.
	Quality int

	// Scale resizes exported frames by this factor (1.0 = original size).
	Scale float64

	// Background flattens transparency onto a solid color when set.
	// nil preserves transparency (PNG only).
	Background color.Color
}

// ConfigBuilder builds a Config with a fluent interface.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a builder with lossless defaults: PNG frames at
// original size with transparency preserved.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{
			Workers: 0,
			Format:  ports.FormatPNG,
			Quality: 90,
			Scale:   1.0,
		},
	}
}

// NewPreviewConfigBuilder creates a builder tuned for quick previews: JPEG
// frames at half size flattened onto white.
func NewPreviewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{
			Workers:    0,
			Format:     ports.FormatJPEG,
			Quality:    80,
			Scale:      0.5,
			Background: color.White,
		},
	}
}

// WithWorkers sets the number of encode workers.
func (b *ConfigBuilder) WithWorkers(workers int) *ConfigBuilder {
	b.config.Workers = workers
	return b
}

// WithFormat sets the still image format.
func (b *ConfigBuilder) WithFormat(format ports.ImageFormat) *ConfigBuilder {
	b.config.Format = format
	return b
}

// WithQuality sets the JPEG quality.
func (b *ConfigBuilder) WithQuality(quality int) *ConfigBuilder {
	b.config.Quality = quality
	return b
}

// WithScale sets the export scale factor.
func (b *ConfigBuilder) WithScale(scale float64) *ConfigBuilder {
	b.config.Scale = scale
	return b
}

// WithBackground sets the flattening background color.
func (b *ConfigBuilder) WithBackground(c color.Color) *ConfigBuilder {
	b.config.Background = c
	return b
}

// Build returns the final Config.
func (b *ConfigBuilder) Build() Config {
	return b.config
}
