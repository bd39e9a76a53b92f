// Package gifdecoder adapts the standard library GIF decoder to the
// animation decoder port.
package gifdecoder

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"time"

	"golang.org/x/image/draw"

	"github.com/user/gifplay/pkg/ports"
	"github.com/user/gifplay/pkg/timeline"
)

// Decoder implements ports.AnimationDecoder for GIF data.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode parses an encoded GIF into raw sub-frames with placement metadata.
func (d *Decoder) Decode(data []byte) (*ports.DecodedAnimation, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gifdecoder: %w", err)
	}

	anim := &ports.DecodedAnimation{
		CanvasWidth:  g.Config.Width,
		CanvasHeight: g.Config.Height,
		Frames:       make([]ports.DecodedFrame, 0, len(g.Image)),
	}

	// The standard decoder reports -1 when the file carries no NETSCAPE
	// loop extension; any other value came from the container.
	if g.LoopCount >= 0 {
		anim.LoopCount = g.LoopCount
		anim.HasLoopCount = true
	}

	for i, img := range g.Image {
		md := timeline.FrameMetadata{
			Left:     img.Rect.Min.X,
			Top:      img.Rect.Min.Y,
			Width:    img.Rect.Dx(),
			Height:   img.Rect.Dy(),
			Delay:    delayFor(g.Delay, i),
			Disposal: disposalFor(g.Disposal, i),
		}
		anim.Frames = append(anim.Frames, ports.DecodedFrame{
			Image:    rebase(img),
			Metadata: md,
		})
	}

	return anim, nil
}

// delayFor converts the container's 10ms units, applying the default for
// frames that report no delay.
func delayFor(delays []int, i int) time.Duration {
	if i >= len(delays) || delays[i] <= 0 {
		return timeline.DefaultFrameDelay
	}
	return time.Duration(delays[i]) * 10 * time.Millisecond
}

// disposalFor maps the container's disposal byte. An unspecified disposal
// behaves like "none".
func disposalFor(disposals []byte, i int) timeline.DisposalMethod {
	if i >= len(disposals) {
		return timeline.DisposalNone
	}
	switch disposals[i] {
	case gif.DisposalNone:
		return timeline.DisposalKeep
	case gif.DisposalBackground:
		return timeline.DisposalBackground
	case gif.DisposalPrevious:
		return timeline.DisposalPrevious
	default:
		return timeline.DisposalNone
	}
}

// rebase copies a sub-frame so its bounds start at (0,0). Placement is
// carried by the metadata, and downstream drawing libraries expect
// zero-origin images.
func rebase(img *image.Paletted) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))
	draw.Copy(dst, image.Point{}, img, img.Rect, draw.Src, nil)
	return dst
}

// Ensure Decoder implements ports.AnimationDecoder
var _ ports.AnimationDecoder = (*Decoder)(nil)
