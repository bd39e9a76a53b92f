package compose

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/user/gifplay/pkg/adapters/logger"
	"github.com/user/gifplay/pkg/mocks"
	"github.com/user/gifplay/pkg/pipeline"
	"github.com/user/gifplay/pkg/timeline"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func newCompositor() *Compositor {
	return New(&mocks.Renderer{}, logger.NewNoop())
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func pixelAt(t *testing.T, img image.Image, x, y int) color.RGBA {
	t.Helper()
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func fullCanvasMetadata(disposal timeline.DisposalMethod) timeline.FrameMetadata {
	return timeline.FrameMetadata{
		Width:    4,
		Height:   4,
		Delay:    100 * time.Millisecond,
		Disposal: disposal,
	}
}

func TestCompositor_Compose_IdentityShortcut(t *testing.T) {
	c := newCompositor()
	canvas := pipeline.Dimension{Width: 4, Height: 4}
	raw := solid(4, 4, red)

	composited, nextBase := c.Compose(canvas, raw, fullCanvasMetadata(timeline.DisposalKeep), nil)

	// A full-canvas frame with no base is returned as-is, no copy.
	if composited != image.Image(raw) {
		t.Error("expected the raw frame to be returned unchanged")
	}
	if nextBase != composited {
		t.Error("expected the composited frame as the next base")
	}
}

func TestCompositor_Compose_NoShortcutWithBase(t *testing.T) {
	c := newCompositor()
	canvas := pipeline.Dimension{Width: 4, Height: 4}
	base := solid(4, 4, red)
	raw := solid(4, 4, green)

	composited, _ := c.Compose(canvas, raw, fullCanvasMetadata(timeline.DisposalKeep), base)

	if composited == image.Image(raw) {
		t.Error("expected a fresh buffer when a base frame is present")
	}
	if got := pixelAt(t, composited, 0, 0); got != green {
		t.Errorf("pixel (0,0) = %v, want %v", got, green)
	}
}

func TestCompositor_Compose_DoNotDisposeAccumulates(t *testing.T) {
	c := newCompositor()
	canvas := pipeline.Dimension{Width: 4, Height: 4}

	frame0, base := c.Compose(canvas, solid(4, 4, red), fullCanvasMetadata(timeline.DisposalKeep), nil)

	md := timeline.FrameMetadata{
		Left: 1, Top: 1, Width: 2, Height: 2,
		Delay:    100 * time.Millisecond,
		Disposal: timeline.DisposalKeep,
	}
	frame1, nextBase := c.Compose(canvas, solid(2, 2, green), md, base)

	// Pixels outside the sub-frame region keep the first frame's values.
	if got := pixelAt(t, frame1, 0, 0); got != red {
		t.Errorf("pixel (0,0) = %v, want %v", got, red)
	}
	if got := pixelAt(t, frame1, 1, 1); got != green {
		t.Errorf("pixel (1,1) = %v, want %v", got, green)
	}
	if got := pixelAt(t, frame1, 3, 3); got != red {
		t.Errorf("pixel (3,3) = %v, want %v", got, red)
	}
	if nextBase != frame1 {
		t.Error("expected frame1 as the next base")
	}
	if got := pixelAt(t, frame0, 1, 1); got != red {
		t.Errorf("frame0 was mutated: pixel (1,1) = %v, want %v", got, red)
	}
}

func TestCompositor_Compose_RestoreBackgroundFullCanvas(t *testing.T) {
	c := newCompositor()
	canvas := pipeline.Dimension{Width: 4, Height: 4}

	_, nextBase := c.Compose(canvas, solid(4, 4, red), fullCanvasMetadata(timeline.DisposalBackground), nil)

	if nextBase != nil {
		t.Error("expected nil next base after a full-canvas background restore")
	}
}

func TestCompositor_Compose_RestoreBackgroundPartial(t *testing.T) {
	c := newCompositor()
	canvas := pipeline.Dimension{Width: 4, Height: 4}

	_, base := c.Compose(canvas, solid(4, 4, red), fullCanvasMetadata(timeline.DisposalKeep), nil)

	md := timeline.FrameMetadata{
		Left: 1, Top: 1, Width: 2, Height: 2,
		Delay:    100 * time.Millisecond,
		Disposal: timeline.DisposalBackground,
	}
	composited, nextBase := c.Compose(canvas, solid(2, 2, green), md, base)

	// Only the frame's own rectangle is cleared in the next base.
	if got := pixelAt(t, nextBase, 1, 1); got.A != 0 {
		t.Errorf("next base pixel (1,1) = %v, want transparent", got)
	}
	if got := pixelAt(t, nextBase, 2, 2); got.A != 0 {
		t.Errorf("next base pixel (2,2) = %v, want transparent", got)
	}
	if got := pixelAt(t, nextBase, 0, 0); got != red {
		t.Errorf("next base pixel (0,0) = %v, want %v", got, red)
	}
	if got := pixelAt(t, nextBase, 3, 3); got != red {
		t.Errorf("next base pixel (3,3) = %v, want %v", got, red)
	}

	// The composited frame itself stays intact.
	if got := pixelAt(t, composited, 1, 1); got != green {
		t.Errorf("composited pixel (1,1) = %v, want %v", got, green)
	}
}

func TestCompositor_Compose_RestorePrevious(t *testing.T) {
	c := newCompositor()
	canvas := pipeline.Dimension{Width: 4, Height: 4}

	_, base := c.Compose(canvas, solid(4, 4, red), fullCanvasMetadata(timeline.DisposalKeep), nil)

	md := timeline.FrameMetadata{
		Left: 0, Top: 0, Width: 2, Height: 2,
		Delay:    100 * time.Millisecond,
		Disposal: timeline.DisposalPrevious,
	}
	composited, nextBase := c.Compose(canvas, solid(2, 2, green), md, base)

	// The base passes through untouched regardless of what was composited.
	if nextBase != base {
		t.Error("expected the incoming base as the next base")
	}
	if got := pixelAt(t, base, 0, 0); got != red {
		t.Errorf("base was mutated: pixel (0,0) = %v, want %v", got, red)
	}
	if got := pixelAt(t, composited, 0, 0); got != green {
		t.Errorf("composited pixel (0,0) = %v, want %v", got, green)
	}
}

func TestCompositor_Compose_RestorePreviousNilBase(t *testing.T) {
	c := newCompositor()
	canvas := pipeline.Dimension{Width: 4, Height: 4}

	md := fullCanvasMetadata(timeline.DisposalPrevious)
	_, nextBase := c.Compose(canvas, solid(4, 4, green), md, nil)

	if nextBase != nil {
		t.Error("expected nil next base when the incoming base was nil")
	}
}
