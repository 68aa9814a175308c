package fx

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
)

// Parallel runs its children concurrently. Every unfinished child receives
// the same delta; the parallel is done when all children are done.
type Parallel struct {
	effects []Effect
	settled []bool // child painted at least once after finishing
	filter  CellFilter
	repaint RepaintPolicy
}

// NewParallel creates a parallel group. An empty group is done immediately.
// Finished children keep painting their terminal state (RepaintFinished).
func NewParallel(effects ...Effect) *Parallel {
	effects = compact(effects)
	return &Parallel{
		effects: effects,
		settled: make([]bool, len(effects)),
		repaint: RepaintFinished,
	}
}

// WithFilter narrows every child by filter.
func (p *Parallel) WithFilter(filter CellFilter) *Parallel {
	p.SetFilter(filter)
	return p
}

// WithRepaint sets whether finished children keep painting.
func (p *Parallel) WithRepaint(policy RepaintPolicy) *Parallel {
	p.repaint = policy
	return p
}

// Effects returns the children.
func (p *Parallel) Effects() []Effect {
	return p.effects
}

// Advance implements Effect.
func (p *Parallel) Advance(delta time.Duration) {
	for _, e := range p.effects {
		if !e.Done() {
			e.Advance(delta)
		}
	}
}

// Paint implements Effect.
func (p *Parallel) Paint(buf Grid, area core.Rect) {
	for i, e := range p.effects {
		if p.repaint == RepaintActive && p.settled[i] {
			continue
		}
		e.Paint(buf, area)
		if e.Done() {
			p.settled[i] = true
		}
	}
}

// Done implements Effect.
func (p *Parallel) Done() bool {
	for _, e := range p.effects {
		if !e.Done() {
			return false
		}
	}
	return true
}

// Filter implements Effect.
func (p *Parallel) Filter() CellFilter {
	return p.filter
}

// SetFilter implements Effect.
func (p *Parallel) SetFilter(filter CellFilter) {
	p.filter = p.filter.And(filter)
	narrowChildren(p.effects, filter)
}
