// Package compose implements the frame compositor.
package compose

import (
	"image"

	"github.com/user/gifplay/pkg/pipeline"
	"github.com/user/gifplay/pkg/ports"
	"github.com/user/gifplay/pkg/timeline"
)

// Compositor turns raw sub-frames into full-canvas composited frames and
// derives the base frame for the next composition step from the disposal
// method. It holds no per-animation state; the caller threads the base
// frame through successive calls.
type Compositor struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a new Compositor.
func New(renderer ports.Renderer, logger ports.Logger) *Compositor {
	return &Compositor{
		renderer: renderer,
		logger:   logger.WithComponent("compose"),
	}
}

// Compose produces the fully composited frame for one step and the base the
// following frame composites over. base may be nil for the first frame or
// after a full-canvas background restore. The returned images are never
// mutated by later steps and are safe to share read-only.
func (c *Compositor) Compose(canvas pipeline.Dimension, raw image.Image, md timeline.FrameMetadata, base image.Image) (composited, nextBase image.Image) {
	composited = c.flatten(canvas, raw, md, base)

	switch md.Disposal {
	case timeline.DisposalBackground:
		if md.CoversCanvas(canvas.Width, canvas.Height) {
			nextBase = nil
		} else {
			nextBase = c.clearRegion(canvas, composited, md)
		}
	case timeline.DisposalPrevious:
		// This frame's pixels are never used as a future base.
		nextBase = base
	default:
		nextBase = composited
	}
	return composited, nextBase
}

// flatten draws base and raw onto a full-canvas buffer. When the sub-frame
// already covers the whole canvas and there is no base, the raw frame is
// used as-is without allocating a canvas.
func (c *Compositor) flatten(canvas pipeline.Dimension, raw image.Image, md timeline.FrameMetadata, base image.Image) image.Image {
	if base == nil && md.CoversCanvas(canvas.Width, canvas.Height) {
		return raw
	}

	dc := c.renderer.CreateCanvas(canvas.Width, canvas.Height)
	if base != nil {
		dc.DrawImage(base, 0, 0)
	}
	dc.DrawImage(raw, md.Left, md.Top)
	return dc.ToImage()
}

// clearRegion copies the composited frame and resets the frame's own
// rectangle to transparent. The composited frame itself stays untouched.
func (c *Compositor) clearRegion(canvas pipeline.Dimension, composited image.Image, md timeline.FrameMetadata) image.Image {
	dc := c.renderer.CreateCanvas(canvas.Width, canvas.Height)
	dc.DrawImage(composited, 0, 0)
	dc.ClearRect(md.Left, md.Top, md.Width, md.Height)
	return dc.ToImage()
}
