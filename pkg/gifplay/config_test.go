package gifplay

import (
	"image/color"
	"testing"

	"github.com/user/gifplay/pkg/ports"
)

func TestNewConfigBuilder_Defaults(t *testing.T) {
	cfg := NewConfigBuilder().Build()

	if cfg.Format != ports.FormatPNG {
		t.Errorf("Format = %v, want FormatPNG", cfg.Format)
	}
	if cfg.Quality != 90 {
		t.Errorf("Quality = %d, want 90", cfg.Quality)
	}
	if cfg.Scale != 1.0 {
		t.Errorf("Scale = %f, want 1.0", cfg.Scale)
	}
	if cfg.Background != nil {
		t.Errorf("Background = %v, want nil", cfg.Background)
	}
}

func TestNewPreviewConfigBuilder(t *testing.T) {
	cfg := NewPreviewConfigBuilder().Build()

	if cfg.Format != ports.FormatJPEG {
		t.Errorf("Format = %v, want FormatJPEG", cfg.Format)
	}
	if cfg.Quality != 80 {
		t.Errorf("Quality = %d, want 80", cfg.Quality)
	}
	if cfg.Scale != 0.5 {
		t.Errorf("Scale = %f, want 0.5", cfg.Scale)
	}
	if cfg.Background == nil {
		t.Error("Background = nil, want white")
	}
}

func TestConfigBuilder_Chaining(t *testing.T) {
	cfg := NewConfigBuilder().
		WithWorkers(8).
		WithFormat(ports.FormatJPEG).
		WithQuality(60).
		WithScale(0.25).
		WithBackground(color.Black).
		Build()

	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Format != ports.FormatJPEG {
		t.Errorf("Format = %v, want FormatJPEG", cfg.Format)
	}
	if cfg.Quality != 60 {
		t.Errorf("Quality = %d, want 60", cfg.Quality)
	}
	if cfg.Scale != 0.25 {
		t.Errorf("Scale = %f, want 0.25", cfg.Scale)
	}
	if cfg.Background != color.Black {
		t.Errorf("Background = %v, want black", cfg.Background)
	}
}
