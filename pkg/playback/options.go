package playback

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/user/gifplay/pkg/timeline"
)

// ErrInvalidConfiguration is returned for conflicting or out-of-range
// playback options. The options are reported back to the caller, never
// silently coerced.
var ErrInvalidConfiguration = errors.New("playback: invalid configuration")

// SeekError reports a seek outside the timeline's frame range.
type SeekError struct {
	Index      int
	FrameCount int
}

// Error implements the error interface.
func (e *SeekError) Error() string {
	return fmt.Sprintf("playback: seek index %d out of range [0,%d)", e.Index, e.FrameCount)
}

// Options configures a controller. SpeedRatio and Duration are mutually
// exclusive; nil leaves the timeline's native timing in effect.
type Options struct {
	// AutoStart constructs the controller playing instead of paused.
	AutoStart bool

	// SpeedRatio scales the timeline's native timing.
	// Must be positive and finite.
	SpeedRatio *float64

	// Duration stretches or compresses one full cycle to an explicit
	// length. Must be positive.
	Duration *time.Duration
}

// resolveSpeed validates the options and reduces them to a single time
// scale factor.
func resolveSpeed(tl *timeline.Timeline, opts Options) (float64, error) {
	if opts.SpeedRatio != nil && opts.Duration != nil {
		return 0, fmt.Errorf("%w: speed ratio and explicit duration are mutually exclusive", ErrInvalidConfiguration)
	}
	if opts.SpeedRatio != nil {
		r := *opts.SpeedRatio
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return 0, fmt.Errorf("%w: speed ratio must be positive and finite, got %v", ErrInvalidConfiguration, r)
		}
		return r, nil
	}
	if opts.Duration != nil {
		d := *opts.Duration
		if d <= 0 {
			return 0, fmt.Errorf("%w: explicit duration must be positive, got %v", ErrInvalidConfiguration, d)
		}
		return float64(tl.TotalDuration) / float64(d), nil
	}
	return 1.0, nil
}
