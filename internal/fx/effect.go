package fx

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
)

// Grid is the mutable cell surface effects paint into.
// Effects only ever change cell colors, never glyphs.
type Grid interface {
	// Bounds returns the addressable area of the grid.
	Bounds() core.Rect

	// Cell returns the cell at (x, y), or nil outside Bounds.
	Cell(x, y int) *core.Cell
}

// Effect is a time-driven transformation of a grid region.
//
// The driver calls Advance with the frame delta, then Paint with the grid
// and area, then checks Done. Painting is idempotent for a fixed elapsed
// time: calling Paint twice without Advance yields the same colors.
type Effect interface {
	// Advance moves the effect's clock forward by delta.
	Advance(delta time.Duration)

	// Paint writes the effect's current state into area of buf.
	// Cells outside buf are skipped; a nil buf paints nothing.
	Paint(buf Grid, area core.Rect)

	// Done reports whether the effect has finished.
	Done() bool

	// Filter returns the cell filter restricting this effect.
	Filter() CellFilter

	// SetFilter narrows the effect to cells matched by f, ANDing it with
	// any filter already set. Combinators narrow every child the same way.
	SetFilter(f CellFilter)
}

// RepaintPolicy controls whether a combinator keeps painting children that
// have already finished.
type RepaintPolicy uint8

const (
	// RepaintActive paints a finished child one last time at its terminal
	// state and then leaves its cells alone.
	RepaintActive RepaintPolicy = iota

	// RepaintFinished keeps painting finished children every frame so their
	// terminal state stays visible over fresh content.
	RepaintFinished
)

// String returns the policy name.
func (p RepaintPolicy) String() string {
	switch p {
	case RepaintActive:
		return "active"
	case RepaintFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// forEachCell calls fn for every cell of area that lies inside buf and
// passes filter.
func forEachCell(buf Grid, area core.Rect, filter CellFilter, fn func(x, y int, c *core.Cell)) {
	if buf == nil {
		return
	}
	clip := area.Intersect(buf.Bounds())
	for y := clip.Y; y < clip.Bottom(); y++ {
		for x := clip.X; x < clip.Right(); x++ {
			c := buf.Cell(x, y)
			if c == nil || !filter.Matches(x, y, *c, area) {
				continue
			}
			fn(x, y, c)
		}
	}
}

// narrowChildren ANDs f into the filter of every child.
func narrowChildren(children []Effect, f CellFilter) {
	for _, e := range children {
		e.SetFilter(f)
	}
}
