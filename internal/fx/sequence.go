package fx

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
)

// Sequence runs its children one after another.
//
// Only the active child receives time. The frame that finishes a child
// still paints it at its terminal state; the next child starts on the
// following Advance, and time left over from the finishing frame is not
// carried into it.
type Sequence struct {
	effects []Effect
	index   int
	filter  CellFilter
	repaint RepaintPolicy
}

// NewSequence creates a sequence of effects. An empty sequence is done
// immediately.
func NewSequence(effects ...Effect) *Sequence {
	return &Sequence{effects: compact(effects)}
}

// WithFilter narrows every child by filter.
func (s *Sequence) WithFilter(filter CellFilter) *Sequence {
	s.SetFilter(filter)
	return s
}

// WithRepaint sets whether finished children keep painting.
// The default is RepaintActive.
func (s *Sequence) WithRepaint(p RepaintPolicy) *Sequence {
	s.repaint = p
	return s
}

// Effects returns the children in order.
func (s *Sequence) Effects() []Effect {
	return s.effects
}

// Active returns the index of the child currently receiving time.
func (s *Sequence) Active() int {
	return s.index
}

// Advance implements Effect.
func (s *Sequence) Advance(delta time.Duration) {
	if len(s.effects) == 0 {
		return
	}
	last := len(s.effects) - 1
	for s.index < last && s.effects[s.index].Done() {
		s.index++
	}
	if cur := s.effects[s.index]; !cur.Done() {
		cur.Advance(delta)
	}
}

// Paint implements Effect.
func (s *Sequence) Paint(buf Grid, area core.Rect) {
	if len(s.effects) == 0 {
		return
	}
	if s.repaint == RepaintFinished {
		for _, e := range s.effects[:s.index] {
			e.Paint(buf, area)
		}
	}
	s.effects[s.index].Paint(buf, area)
}

// Done implements Effect.
func (s *Sequence) Done() bool {
	if len(s.effects) == 0 {
		return true
	}
	return s.index == len(s.effects)-1 && s.effects[s.index].Done()
}

// Filter implements Effect.
func (s *Sequence) Filter() CellFilter {
	return s.filter
}

// SetFilter implements Effect.
func (s *Sequence) SetFilter(filter CellFilter) {
	s.filter = s.filter.And(filter)
	narrowChildren(s.effects, filter)
}

// compact drops nil effects.
func compact(effects []Effect) []Effect {
	out := make([]Effect, 0, len(effects))
	for _, e := range effects {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
