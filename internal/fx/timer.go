package fx

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
)

// Timer accumulates elapsed time towards a fixed duration and eases the
// resulting progress through an Interpolation.
// Elapsed time is not clamped at the duration.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	curve    Interpolation
}

// NewTimer creates a timer running for d with the given curve.
func NewTimer(d time.Duration, curve Interpolation) Timer {
	return Timer{duration: d, curve: curve}
}

// Millis creates a linear timer running for ms milliseconds.
func Millis(ms int) Timer {
	return NewTimer(time.Duration(ms)*time.Millisecond, Linear)
}

// Advance adds delta to the elapsed time. Negative deltas count as zero.
// Returns the part of delta that lies past the end of the timer.
func (t *Timer) Advance(delta time.Duration) time.Duration {
	if delta < 0 {
		delta = 0
	}
	before := t.elapsed
	t.elapsed += delta
	if t.elapsed <= t.duration {
		return 0
	}
	return t.elapsed - max(before, t.duration)
}

// Done reports whether the elapsed time has reached the duration.
// Timers with zero or negative duration are always done.
func (t Timer) Done() bool {
	return t.elapsed >= t.duration
}

// Progress returns elapsed/duration clamped to [0, 1].
func (t Timer) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return core.ClampF(float64(t.elapsed)/float64(t.duration), 0, 1)
}

// Alpha returns the eased progress.
func (t Timer) Alpha() float64 {
	return t.curve.Apply(t.Progress())
}

// Elapsed returns the accumulated time.
func (t Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the configured length.
func (t Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns the time left, never negative.
func (t Timer) Remaining() time.Duration {
	return max(t.duration-t.elapsed, 0)
}

// Curve returns the easing curve.
func (t Timer) Curve() Interpolation {
	return t.curve
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
}
