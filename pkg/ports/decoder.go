package ports

import (
	"image"

	"github.com/user/gifplay/pkg/timeline"
)

// DecodedFrame is one raw sub-frame as delivered by the container decoder:
// pixels rebased to a (0,0) origin plus placement and timing metadata.
type DecodedFrame struct {
	Image    image.Image
	Metadata timeline.FrameMetadata
}

// DecodedAnimation is the decoder's complete output for one image.
type DecodedAnimation struct {
	CanvasWidth  int
	CanvasHeight int

	// Frames holds the raw sub-frames in file order.
	Frames []DecodedFrame

	// LoopCount is the authoritative repeat count when the container
	// surfaced one. Valid only when HasLoopCount is true. A count of 0
	// means repeat forever.
	LoopCount    int
	HasLoopCount bool

	// Extensions holds raw application-extension payloads. Decoders that
	// cannot supply a trustworthy loop count channel pass them through
	// here; the assembly stage reads the repeat count out of them as a
	// fallback.
	Extensions [][]byte
}

// AnimationDecoder abstracts the binary container decoder. Implementations
// parse an encoded image and hand back raw sub-frames with metadata; they
// never composite.
type AnimationDecoder interface {
	// Decode parses encoded image data into raw frames and metadata.
	Decode(data []byte) (*DecodedAnimation, error)
}
