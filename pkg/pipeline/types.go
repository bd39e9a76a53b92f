package pipeline

import (
	"github.com/user/gifplay/pkg/ports"
	"github.com/user/gifplay/pkg/timeline"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput contains parameters for container decoding.
type DecodeInput struct {
	// Identity is the canonical cache key for the image. Used in logs and
	// error messages only; the decoder works on Data.
	Identity string

	// Data is the encoded image.
	Data []byte
}

// DecodeResult contains the decoder's output.
type DecodeResult struct {
	Animation *ports.DecodedAnimation
}

// =============================================================================
// Assemble Stage Types
// =============================================================================

// AssembleInput carries everything the assembly stage needs to build one
// timeline.
type AssembleInput struct {
	CanvasSize Dimension

	// Frames holds the raw sub-frames in file order. At least two are
	// required; single-frame images are not animations.
	Frames []ports.DecodedFrame

	// LoopCount is the container's explicit repeat count, valid only when
	// HasLoopCount is true. 0 means repeat forever.
	LoopCount    int
	HasLoopCount bool

	// Extensions holds raw application-extension payloads used as the
	// fallback loop count channel.
	Extensions [][]byte
}

// AssembleResult contains the built timeline.
type AssembleResult struct {
	Timeline *timeline.Timeline
}
