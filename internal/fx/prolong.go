package fx

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
)

type prolongKind uint8

const (
	prolongStart prolongKind = iota
	prolongEnd
)

// Prolong stretches a child effect with a silent lead-in (ProlongStart) or a
// hold of its terminal state (ProlongEnd).
type Prolong struct {
	kind   prolongKind
	hold   Timer
	effect Effect
}

// ProlongStart delays effect by d. Nothing is painted during the delay.
// The frame that crosses the delay forwards the excess time to effect, so
// the child starts without losing part of a frame.
func ProlongStart(d time.Duration, effect Effect) *Prolong {
	return &Prolong{kind: prolongStart, hold: NewTimer(d, Linear), effect: effect}
}

// ProlongEnd keeps painting effect's terminal state for d after it finishes.
// The hold starts on the frame after the child finishes.
func ProlongEnd(d time.Duration, effect Effect) *Prolong {
	return &Prolong{kind: prolongEnd, hold: NewTimer(d, Linear), effect: effect}
}

// WithFilter narrows the wrapped effect by filter.
func (p *Prolong) WithFilter(filter CellFilter) *Prolong {
	p.SetFilter(filter)
	return p
}

// Effect returns the wrapped effect.
func (p *Prolong) Effect() Effect {
	return p.effect
}

// Hold returns a copy of the delay or hold timer.
func (p *Prolong) Hold() Timer {
	return p.hold
}

// Advance implements Effect.
func (p *Prolong) Advance(delta time.Duration) {
	if p.effect == nil {
		p.hold.Advance(delta)
		return
	}
	switch p.kind {
	case prolongStart:
		if p.hold.Done() {
			p.effect.Advance(delta)
			return
		}
		excess := p.hold.Advance(delta)
		if p.hold.Done() {
			p.effect.Advance(excess)
		}
	case prolongEnd:
		if !p.effect.Done() {
			p.effect.Advance(delta)
			return
		}
		p.hold.Advance(delta)
	}
}

// Paint implements Effect.
func (p *Prolong) Paint(buf Grid, area core.Rect) {
	if p.effect == nil {
		return
	}
	if p.kind == prolongStart && !p.hold.Done() {
		return
	}
	p.effect.Paint(buf, area)
}

// Done implements Effect.
func (p *Prolong) Done() bool {
	if p.effect == nil {
		return p.hold.Done()
	}
	return p.hold.Done() && p.effect.Done()
}

// Filter implements Effect.
func (p *Prolong) Filter() CellFilter {
	if p.effect == nil {
		return All()
	}
	return p.effect.Filter()
}

// SetFilter implements Effect.
func (p *Prolong) SetFilter(filter CellFilter) {
	if p.effect != nil {
		p.effect.SetFilter(filter)
	}
}

// Sleep paints nothing for its duration.
type Sleep struct {
	timer Timer
}

// NewSleep creates an effect that only lets time pass.
func NewSleep(d time.Duration) *Sleep {
	return &Sleep{timer: NewTimer(d, Linear)}
}

// Advance implements Effect.
func (s *Sleep) Advance(delta time.Duration) {
	s.timer.Advance(delta)
}

// Paint implements Effect.
func (s *Sleep) Paint(Grid, core.Rect) {}

// Done implements Effect.
func (s *Sleep) Done() bool {
	return s.timer.Done()
}

// Filter implements Effect.
func (s *Sleep) Filter() CellFilter {
	return All()
}

// SetFilter implements Effect.
func (s *Sleep) SetFilter(CellFilter) {}
