package sim

import "time"

// FixedStep decides when a frame-driven host should advance the loop so
// that steps happen once per interval regardless of the host's frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep that fires on the first call and then
// once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the cadence. Non-positive values fall back to the default interval.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	f.step = interval
}

// ShouldStep reports whether a step is due at now. Consecutive steps are
// always at least one interval apart; time lost to a slow frame is dropped
// rather than paid back with a burst of steps.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}

// Reset discards elapsed time. The next step is due one interval after the
// first ShouldStep call that follows.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
