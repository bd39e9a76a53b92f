// Package assemble implements the animation assembly stage.
package assemble

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"image"
	"time"

	"github.com/user/gifplay/pkg/compose"
	"github.com/user/gifplay/pkg/pipeline"
	"github.com/user/gifplay/pkg/ports"
	"github.com/user/gifplay/pkg/timeline"
)

// ErrTooFewFrames is returned when the input holds fewer than two frames.
// Single-frame images are static and never assembled into a timeline.
var ErrTooFewFrames = errors.New("assemble: animation requires at least two frames")

// loopExtensionSize is the minimum application-extension payload that can
// carry a repeat count: sub-block id, buffered flag, then the little-endian
// 16-bit count.
const loopExtensionSize = 4

// Stage walks the raw frames once, drives the compositor and accumulates
// per-frame start offsets into a timeline.
type Stage struct {
	compositor *compose.Compositor
	sink       ports.DebugSink
	logger     ports.Logger
}

// NewStage creates a new assembly stage.
func NewStage(compositor *compose.Compositor, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		compositor: compositor,
		sink:       sink,
		logger:     logger.WithComponent("assemble"),
	}
}

// Execute builds the composited timeline for one animation.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	if len(input.Frames) < 2 {
		return pipeline.AssembleResult{}, ErrTooFewFrames
	}

	s.logger.Debug("Assembling %d frames (%dx%d canvas)", len(input.Frames), input.CanvasSize.Width, input.CanvasSize.Height)

	var base image.Image
	var elapsed time.Duration
	frames := make([]timeline.Frame, 0, len(input.Frames))

	for i, f := range input.Frames {
		select {
		case <-ctx.Done():
			return pipeline.AssembleResult{}, ctx.Err()
		default:
		}

		composited, nextBase := s.compositor.Compose(input.CanvasSize, f.Image, f.Metadata, base)
		frames = append(frames, timeline.Frame{Image: composited, Start: elapsed})

		if s.sink.Enabled() {
			s.sink.SaveComposedFrame(i, composited)
		}

		base = nextBase
		elapsed += f.Metadata.Delay
	}

	tl := &timeline.Timeline{
		Frames:        frames,
		TotalDuration: elapsed,
		LoopCount:     resolveLoopCount(input),
	}

	if s.sink.Enabled() {
		s.saveTimelineJSON(tl)
	}

	s.logger.Debug("Timeline assembled: %d frames, %s total, loop count %d", len(frames), elapsed, tl.LoopCount)
	return pipeline.AssembleResult{Timeline: tl}, nil
}

// saveTimelineJSON writes the timeline metadata to the debug sink.
func (s *Stage) saveTimelineJSON(tl *timeline.Timeline) {
	starts := make([]int64, tl.FrameCount())
	for i, f := range tl.Frames {
		starts[i] = f.Start.Milliseconds()
	}
	data, err := json.Marshal(struct {
		FrameCount int     `json:"frame_count"`
		TotalMs    int64   `json:"total_ms"`
		LoopCount  int     `json:"loop_count"`
		StartsMs   []int64 `json:"starts_ms"`
	}{
		FrameCount: tl.FrameCount(),
		TotalMs:    tl.TotalDuration.Milliseconds(),
		LoopCount:  tl.LoopCount,
		StartsMs:   starts,
	})
	if err != nil {
		return
	}
	if err := s.sink.SaveTimelineJSON(data); err != nil {
		s.logger.Warn("Failed to save timeline JSON: %s", err)
	}
}

// resolveLoopCount prefers the container's explicit count, then the raw
// application-extension payload, then a single play-through. A resolved
// count of 0 repeats forever.
func resolveLoopCount(input pipeline.AssembleInput) int {
	if input.HasLoopCount {
		return input.LoopCount
	}
	for _, ext := range input.Extensions {
		if len(ext) >= loopExtensionSize {
			return int(binary.LittleEndian.Uint16(ext[2:4]))
		}
	}
	return 1
}
