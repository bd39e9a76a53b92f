package timeline

import (
	"image"
	"sort"
	"time"
)

// LoopForever marks a timeline that repeats until its consumer stops it.
const LoopForever = 0

// Frame pairs a fully composited bitmap with its start offset into the
// animation cycle. Frame images are built once, never mutated afterwards,
// and shared read-only between all consumers of the same timeline.
type Frame struct {
	Image image.Image
	Start time.Duration
}

// Timeline is one full animation cycle: composited frames in display order
// with monotonically non-decreasing start offsets.
type Timeline struct {
	Frames []Frame

	// TotalDuration is the sum of all per-frame delays.
	TotalDuration time.Duration

	// LoopCount is the number of cycles to play. LoopForever (0) repeats
	// without end.
	LoopCount int
}

// FrameCount returns the number of composited frames.
func (t *Timeline) FrameCount() int {
	return len(t.Frames)
}

// IndexAt maps an offset into the cycle to a frame index: the first frame
// whose start offset is >= offset. Returns -1 when the offset lies past
// every start offset.
func (t *Timeline) IndexAt(offset time.Duration) int {
	i := sort.Search(len(t.Frames), func(i int) bool {
		return t.Frames[i].Start >= offset
	})
	if i == len(t.Frames) {
		return -1
	}
	return i
}
