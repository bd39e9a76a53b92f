package assemble

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/user/gifplay/pkg/adapters/logger"
	"github.com/user/gifplay/pkg/compose"
	"github.com/user/gifplay/pkg/mocks"
	"github.com/user/gifplay/pkg/pipeline"
	"github.com/user/gifplay/pkg/ports"
	"github.com/user/gifplay/pkg/timeline"
)

func newStage(sink ports.DebugSink) *Stage {
	log := logger.NewNoop()
	return NewStage(compose.New(&mocks.Renderer{}, log), sink, log)
}

func fullFrame(size pipeline.Dimension, delay time.Duration) ports.DecodedFrame {
	return ports.DecodedFrame{
		Image: image.NewRGBA(image.Rect(0, 0, size.Width, size.Height)),
		Metadata: timeline.FrameMetadata{
			Width:  size.Width,
			Height: size.Height,
			Delay:  delay,
		},
	}
}

func TestStage_Execute_CumulativeOffsets(t *testing.T) {
	size := pipeline.Dimension{Width: 4, Height: 4}
	input := pipeline.AssembleInput{
		CanvasSize: size,
		Frames: []ports.DecodedFrame{
			fullFrame(size, 100*time.Millisecond),
			fullFrame(size, 50*time.Millisecond),
			fullFrame(size, 200*time.Millisecond),
		},
	}

	result, err := newStage(mocks.NewDebugSink(false)).Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	tl := result.Timeline
	if tl.FrameCount() != 3 {
		t.Fatalf("FrameCount() = %d, want 3", tl.FrameCount())
	}

	wantStarts := []time.Duration{0, 100 * time.Millisecond, 150 * time.Millisecond}
	for i, want := range wantStarts {
		if got := tl.Frames[i].Start; got != want {
			t.Errorf("frame %d start = %s, want %s", i, got, want)
		}
	}
	if tl.TotalDuration != 350*time.Millisecond {
		t.Errorf("TotalDuration = %s, want 350ms", tl.TotalDuration)
	}
}

func TestStage_Execute_TooFewFrames(t *testing.T) {
	size := pipeline.Dimension{Width: 4, Height: 4}
	input := pipeline.AssembleInput{
		CanvasSize: size,
		Frames:     []ports.DecodedFrame{fullFrame(size, 100*time.Millisecond)},
	}

	_, err := newStage(mocks.NewDebugSink(false)).Execute(context.Background(), input)
	if !errors.Is(err, ErrTooFewFrames) {
		t.Errorf("Execute error = %v, want ErrTooFewFrames", err)
	}
}

func TestStage_Execute_LoopCountResolution(t *testing.T) {
	size := pipeline.Dimension{Width: 4, Height: 4}

	tests := []struct {
		name         string
		loopCount    int
		hasLoopCount bool
		extensions   [][]byte
		want         int
	}{
		{"explicit zero means forever", 0, true, nil, 0},
		{"explicit count wins over extensions", 3, true, [][]byte{{1, 0, 9, 0}}, 3},
		{"extension payload fallback", 0, false, [][]byte{{1, 0, 5, 0}}, 5},
		{"short extension skipped", 0, false, [][]byte{{1, 0, 5}}, 1},
		{"first usable extension wins", 0, false, [][]byte{{1}, {1, 0, 7, 0}, {1, 0, 2, 0}}, 7},
		{"no signal defaults to one play", 0, false, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := pipeline.AssembleInput{
				CanvasSize:   size,
				Frames:       []ports.DecodedFrame{fullFrame(size, 100*time.Millisecond), fullFrame(size, 100*time.Millisecond)},
				LoopCount:    tt.loopCount,
				HasLoopCount: tt.hasLoopCount,
				Extensions:   tt.extensions,
			}

			result, err := newStage(mocks.NewDebugSink(false)).Execute(context.Background(), input)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if got := result.Timeline.LoopCount; got != tt.want {
				t.Errorf("LoopCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStage_Execute_SavesComposedFrames(t *testing.T) {
	size := pipeline.Dimension{Width: 4, Height: 4}
	sink := mocks.NewDebugSink(true)
	input := pipeline.AssembleInput{
		CanvasSize: size,
		Frames:     []ports.DecodedFrame{fullFrame(size, 100*time.Millisecond), fullFrame(size, 100*time.Millisecond)},
	}

	if _, err := newStage(sink).Execute(context.Background(), input); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(sink.ComposedFrames) != 2 {
		t.Errorf("saved %d composed frames, want 2", len(sink.ComposedFrames))
	}
	if len(sink.TimelineJSON) != 1 {
		t.Errorf("saved %d timeline JSON documents, want 1", len(sink.TimelineJSON))
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	size := pipeline.Dimension{Width: 4, Height: 4}
	input := pipeline.AssembleInput{
		CanvasSize: size,
		Frames:     []ports.DecodedFrame{fullFrame(size, 100*time.Millisecond), fullFrame(size, 100*time.Millisecond)},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newStage(mocks.NewDebugSink(false)).Execute(ctx, input)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute error = %v, want context.Canceled", err)
	}
}
