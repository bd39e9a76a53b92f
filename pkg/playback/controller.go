// Package playback implements the per-consumer playback controller.
package playback

import (
	"fmt"
	"image"
	"time"

	"github.com/user/gifplay/pkg/timeline"
)

// Controller maps host-pushed clock time to a frame index over a cached
// timeline. It exposes transport controls and an orthogonal suspension flag
// so a hidden viewer can stop animating without disturbing user intent.
//
// A controller belongs to exactly one consumer. All methods must be called
// from the host's single coordinating context; the controller performs no
// locking and owns no goroutines or timers.
type Controller struct {
	tl    *timeline.Timeline
	speed float64

	offset time.Duration
	cycles int

	paused    bool
	suspended bool
	complete  bool
	disposed  bool

	// completionFired keeps the completion notification one-shot until a
	// seek re-arms it.
	completionFired bool

	lastFrame  int
	onFrame    func(index int)
	onComplete func()
	releases   []func()
}

// New creates a controller over a fully built timeline.
func New(tl *timeline.Timeline, opts Options) (*Controller, error) {
	if tl == nil || tl.FrameCount() == 0 {
		return nil, fmt.Errorf("%w: empty timeline", ErrInvalidConfiguration)
	}
	speed, err := resolveSpeed(tl, opts)
	if err != nil {
		return nil, err
	}
	return &Controller{
		tl:     tl,
		speed:  speed,
		paused: !opts.AutoStart,
	}, nil
}

// Play clears the user pause. Advancement resumes unless suspended.
// Idempotent.
func (c *Controller) Play() {
	if c.disposed {
		return
	}
	c.paused = false
}

// Pause halts advancement until Play. Idempotent.
func (c *Controller) Pause() {
	if c.disposed {
		return
	}
	c.paused = true
}

// SetSuspended halts or resumes advancement independently of the user
// pause. Unsuspending resumes only when the user has not paused.
func (c *Controller) SetSuspended(suspended bool) {
	if c.disposed {
		return
	}
	c.suspended = suspended
}

// Seek moves the current offset to the start of the given frame, regardless
// of pause or suspension, and re-arms completion. Out-of-range indices are
// reported, not clamped.
func (c *Controller) Seek(index int) error {
	if c.disposed {
		return nil
	}
	if index < 0 || index >= c.tl.FrameCount() {
		return &SeekError{Index: index, FrameCount: c.tl.FrameCount()}
	}
	c.offset = c.tl.Frames[index].Start
	c.cycles = 0
	c.complete = false
	c.completionFired = false
	c.notifyFrame()
	return nil
}

// Advance moves playback forward by dt of wall time. The host pushes clock
// ticks; a paused, suspended or completed controller ignores them.
func (c *Controller) Advance(dt time.Duration) {
	if c.disposed || c.complete || c.paused || c.suspended || dt <= 0 {
		return
	}

	c.offset += time.Duration(float64(dt) * c.speed)

	total := c.tl.TotalDuration
	if total <= 0 {
		c.notifyFrame()
		return
	}
	for c.offset >= total {
		if c.tl.LoopCount == timeline.LoopForever {
			c.offset -= total
			continue
		}
		c.cycles++
		if c.cycles >= c.tl.LoopCount {
			c.finish()
			return
		}
		c.offset -= total
	}

	c.notifyFrame()
}

// finish clamps playback to the final frame and fires the one-shot
// completion notification.
func (c *Controller) finish() {
	c.complete = true
	c.offset = c.tl.Frames[c.tl.FrameCount()-1].Start
	c.notifyFrame()
	if !c.completionFired {
		c.completionFired = true
		if c.onComplete != nil {
			c.onComplete()
		}
	}
}

// notifyFrame fires the frame-changed callback when the externally visible
// frame index moved since the last notification.
func (c *Controller) notifyFrame() {
	frame := c.tl.IndexAt(c.offset)
	if frame == c.lastFrame {
		return
	}
	c.lastFrame = frame
	if c.onFrame != nil {
		c.onFrame(frame)
	}
}

// CurrentFrame returns the index of the frame the controller currently
// selects: the first timeline entry whose start offset is >= the current
// offset. Returns -1 when no frame qualifies.
func (c *Controller) CurrentFrame() int {
	if c.disposed {
		return -1
	}
	return c.tl.IndexAt(c.offset)
}

// CurrentImage returns the composited bitmap for the current frame, or nil
// when no frame is selected.
func (c *Controller) CurrentImage() image.Image {
	if c.disposed {
		return nil
	}
	i := c.tl.IndexAt(c.offset)
	if i < 0 {
		return nil
	}
	return c.tl.Frames[i].Image
}

// FrameCount returns the number of frames in the timeline.
func (c *Controller) FrameCount() int {
	if c.disposed {
		return 0
	}
	return c.tl.FrameCount()
}

// Duration returns the effective length of one cycle at the configured
// playback speed.
func (c *Controller) Duration() time.Duration {
	if c.disposed {
		return 0
	}
	return time.Duration(float64(c.tl.TotalDuration) / c.speed)
}

// IsPaused reports whether the user has paused playback.
func (c *Controller) IsPaused() bool {
	return c.paused
}

// IsSuspended reports whether the host has suspended playback.
func (c *Controller) IsSuspended() bool {
	return c.suspended
}

// IsComplete reports whether playback has finished all cycles.
func (c *Controller) IsComplete() bool {
	return c.complete
}

// OnFrameChanged registers the callback fired whenever the externally
// visible frame index changes.
func (c *Controller) OnFrameChanged(fn func(index int)) {
	if c.disposed {
		return
	}
	c.onFrame = fn
}

// OnCompleted registers the callback fired once per completed playback.
func (c *Controller) OnCompleted(fn func()) {
	if c.disposed {
		return
	}
	c.onComplete = fn
}

// OnDispose registers a release hook run exactly once when the controller
// is disposed. Used to detach the controller's cache registration.
func (c *Controller) OnDispose(fn func()) {
	if c.disposed {
		return
	}
	c.releases = append(c.releases, fn)
}

// Dispose releases the controller synchronously: release hooks run, the
// callbacks are dropped and the timeline reference is cleared so no frame
// buffer outlives the controller. Safe to call more than once.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	for _, fn := range c.releases {
		fn()
	}
	c.releases = nil
	c.onFrame = nil
	c.onComplete = nil
	c.tl = nil
}
