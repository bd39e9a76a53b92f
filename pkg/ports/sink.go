package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveTimelineJSON saves the assembled timeline summary as JSON.
	SaveTimelineJSON(data []byte) error

	// SaveComposedFrame saves a composited frame.
	SaveComposedFrame(index int, img image.Image) error
}
