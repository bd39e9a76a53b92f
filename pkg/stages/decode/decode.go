// Package decode implements the container decoding stage.
package decode

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/gifplay/pkg/pipeline"
	"github.com/user/gifplay/pkg/ports"
)

// ErrNotAnimated is returned when the decoder yields fewer than two usable
// frames. The host treats the image as static and renders it without a
// timeline; this is not a failure of the image itself.
var ErrNotAnimated = errors.New("decode: image has fewer than two frames")

// Stage adapts the external container decoder into the build pipeline.
type Stage struct {
	decoder ports.AnimationDecoder
	logger  ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(decoder ports.AnimationDecoder, logger ports.Logger) *Stage {
	return &Stage{
		decoder: decoder,
		logger:  logger.WithComponent("decode"),
	}
}

// Execute decodes the raw sub-frames and metadata for one image.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	select {
	case <-ctx.Done():
		return pipeline.DecodeResult{}, ctx.Err()
	default:
	}

	anim, err := s.decoder.Decode(input.Data)
	if err != nil {
		return pipeline.DecodeResult{}, fmt.Errorf("decode %s: %w", input.Identity, err)
	}
	if len(anim.Frames) < 2 {
		return pipeline.DecodeResult{}, ErrNotAnimated
	}

	s.logger.Debug("Decoded %d frames (%dx%d canvas)", len(anim.Frames), anim.CanvasWidth, anim.CanvasHeight)
	return pipeline.DecodeResult{Animation: anim}, nil
}
