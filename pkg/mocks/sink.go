package mocks

import (
	"image"

	"github.com/user/gifplay/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink that records what
// was saved.
type DebugSink struct {
	enabled bool

	ComposedFrames map[int]image.Image
	TimelineJSON   [][]byte
}

// NewDebugSink creates a debug sink that reports the given enabled state.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:        enabled,
		ComposedFrames: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveTimelineJSON(data []byte) error {
	m.TimelineJSON = append(m.TimelineJSON, data)
	return nil
}

func (m *DebugSink) SaveComposedFrame(index int, img image.Image) error {
	m.ComposedFrames[index] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
