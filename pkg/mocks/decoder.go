package mocks

import (
	"image"

	"github.com/user/gifplay/pkg/ports"
	"github.com/user/gifplay/pkg/timeline"
)

// Decoder is a mock implementation of ports.AnimationDecoder.
type Decoder struct {
	DecodeFunc func(data []byte) (*ports.DecodedAnimation, error)

	// Calls counts Decode invocations.
	Calls int
}

func (m *Decoder) Decode(data []byte) (*ports.DecodedAnimation, error) {
	m.Calls++
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return TwoFrameAnimation(4, 4), nil
}

var _ ports.AnimationDecoder = (*Decoder)(nil)

// TwoFrameAnimation builds a minimal decoded animation: two full-canvas
// frames with default delays and no disposal.
func TwoFrameAnimation(width, height int) *ports.DecodedAnimation {
	md := timeline.FrameMetadata{
		Width:  width,
		Height: height,
		Delay:  timeline.DefaultFrameDelay,
	}
	frame := func() ports.DecodedFrame {
		return ports.DecodedFrame{
			Image:    image.NewRGBA(image.Rect(0, 0, width, height)),
			Metadata: md,
		}
	}
	return &ports.DecodedAnimation{
		CanvasWidth:  width,
		CanvasHeight: height,
		Frames:       []ports.DecodedFrame{frame(), frame()},
	}
}
