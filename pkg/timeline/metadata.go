// Package timeline defines the data model for composited animations.
package timeline

import (
	"image"
	"time"
)

// DefaultFrameDelay replaces a zero delay reported by the container.
// Browsers apply the same floor, so playback timing matches what users
// see elsewhere.
const DefaultFrameDelay = 100 * time.Millisecond

// DisposalMethod tells the compositor how the canvas is prepared before the
// next frame is drawn.
type DisposalMethod int

const (
	// DisposalNone specifies no disposal: the composited frame stays in
	// place as the base for the next frame.
	DisposalNone DisposalMethod = iota

	// DisposalKeep is "do not dispose". Treated identically to DisposalNone.
	DisposalKeep

	// DisposalBackground clears the frame's own rectangle back to
	// transparent before the next frame composites.
	DisposalBackground

	// DisposalPrevious discards the frame's pixels as a base: the next
	// frame composites over the same base this frame was drawn on.
	DisposalPrevious
)

// String returns the string representation of the disposal method.
func (d DisposalMethod) String() string {
	switch d {
	case DisposalNone:
		return "none"
	case DisposalKeep:
		return "keep"
	case DisposalBackground:
		return "background"
	case DisposalPrevious:
		return "previous"
	default:
		return "unknown"
	}
}

// FrameMetadata describes the placement, timing and disposal of one raw
// sub-frame. Produced by the decoder adapter, one per frame, immutable.
type FrameMetadata struct {
	Left   int
	Top    int
	Width  int
	Height int

	// Delay is how long the frame stays visible. The decoder adapter
	// normalizes a reported zero to DefaultFrameDelay.
	Delay time.Duration

	Disposal DisposalMethod
}

// Bounds returns the frame's rectangle in canvas coordinates.
func (m FrameMetadata) Bounds() image.Rectangle {
	return image.Rect(m.Left, m.Top, m.Left+m.Width, m.Top+m.Height)
}

// CoversCanvas reports whether the frame occupies the full canvas.
func (m FrameMetadata) CoversCanvas(width, height int) bool {
	return m.Left == 0 && m.Top == 0 && m.Width == width && m.Height == height
}
