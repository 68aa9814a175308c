package fx

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
)

type fadeMode uint8

const (
	fadeBetween    fadeMode = iota // explicit start and end colors
	fadeFromColors                 // given colors -> cell's own colors
	fadeToColors                   // cell's own colors -> given colors
)

type fadeChannel struct {
	on       bool
	from, to core.Color
}

// cellMemo remembers, per cell, the underlying color seen before the fade
// wrote to it and the color it wrote. If the cell still holds the written
// color on the next paint, the content underneath has not been redrawn and
// the remembered color is used instead.
type cellMemo struct {
	fgUnder, fgWrote core.Color
	bgUnder, bgWrote core.Color
}

// Fade interpolates cell foreground and/or background colors over time.
type Fade struct {
	timer   Timer
	filter  CellFilter
	mode    fadeMode
	fg, bg  fadeChannel
	memo    map[[2]int]cellMemo
	painted bool // painted at least once after the timer finished
}

// NewFade creates a fade that touches no channel yet; configure it with
// Foreground and/or Background.
func NewFade(timer Timer) *Fade {
	return &Fade{timer: timer}
}

// Foreground fades the foreground from one color to another.
func (f *Fade) Foreground(from, to core.Color) *Fade {
	f.mode = fadeBetween
	f.fg = fadeChannel{on: true, from: from, to: to}
	return f
}

// Background fades the background from one color to another.
func (f *Fade) Background(from, to core.Color) *Fade {
	f.mode = fadeBetween
	f.bg = fadeChannel{on: true, from: from, to: to}
	return f
}

// FadeFrom fades both channels from the given colors to each cell's own
// colors.
//
// Cell-relative fades read the colors already in the grid. One such fade
// repaints idempotently, but two stacked over the same cells each see the
// other's output as fresh content, so the owner must redraw the grid before
// every Process call when it stacks them.
func FadeFrom(fg, bg core.Color, timer Timer) *Fade {
	return &Fade{
		timer: timer,
		mode:  fadeFromColors,
		fg:    fadeChannel{on: true, from: fg},
		bg:    fadeChannel{on: true, from: bg},
	}
}

// FadeFromFg fades the foreground from fg to each cell's own foreground.
func FadeFromFg(fg core.Color, timer Timer) *Fade {
	return &Fade{
		timer: timer,
		mode:  fadeFromColors,
		fg:    fadeChannel{on: true, from: fg},
	}
}

// FadeTo fades both channels from each cell's own colors to the given ones.
// The redraw rule of FadeFrom applies.
func FadeTo(fg, bg core.Color, timer Timer) *Fade {
	return &Fade{
		timer: timer,
		mode:  fadeToColors,
		fg:    fadeChannel{on: true, to: fg},
		bg:    fadeChannel{on: true, to: bg},
	}
}

// FadeToFg fades the foreground from each cell's own foreground to fg.
func FadeToFg(fg core.Color, timer Timer) *Fade {
	return &Fade{
		timer: timer,
		mode:  fadeToColors,
		fg:    fadeChannel{on: true, to: fg},
	}
}

// WithFilter restricts the fade to cells matched by filter.
func (f *Fade) WithFilter(filter CellFilter) *Fade {
	f.SetFilter(filter)
	return f
}

// Timer returns a copy of the fade's timer.
func (f *Fade) Timer() Timer {
	return f.timer
}

// Advance implements Effect.
func (f *Fade) Advance(delta time.Duration) {
	f.timer.Advance(delta)
}

// Paint implements Effect.
func (f *Fade) Paint(buf Grid, area core.Rect) {
	alpha := f.timer.Alpha()
	forEachCell(buf, area, f.filter, func(x, y int, c *core.Cell) {
		if f.mode == fadeBetween {
			if f.fg.on {
				c.Fg = f.fg.from.Lerp(f.fg.to, alpha, core.DefaultForeground)
			}
			if f.bg.on {
				c.Bg = f.bg.from.Lerp(f.bg.to, alpha, core.DefaultBackground)
			}
			return
		}
		f.paintRelative(x, y, c, alpha)
	})
	if f.timer.Done() {
		f.painted = true
	}
}

func (f *Fade) paintRelative(x, y int, c *core.Cell, alpha float64) {
	if f.memo == nil {
		f.memo = make(map[[2]int]cellMemo)
	}
	key := [2]int{x, y}
	m, seen := f.memo[key]

	if f.fg.on {
		under := c.Fg
		if seen && c.Fg == m.fgWrote {
			under = m.fgUnder
		}
		c.Fg = f.blend(f.fg, under, alpha, core.DefaultForeground)
		m.fgUnder, m.fgWrote = under, c.Fg
	}
	if f.bg.on {
		under := c.Bg
		if seen && c.Bg == m.bgWrote {
			under = m.bgUnder
		}
		c.Bg = f.blend(f.bg, under, alpha, core.DefaultBackground)
		m.bgUnder, m.bgWrote = under, c.Bg
	}
	f.memo[key] = m
}

func (f *Fade) blend(ch fadeChannel, under core.Color, alpha float64, fallback core.Color) core.Color {
	if f.mode == fadeToColors {
		return under.Lerp(ch.to, alpha, fallback)
	}
	return ch.from.Lerp(under, alpha, fallback)
}

// Done implements Effect. A fade with zero or negative duration is done only
// once it has painted its final state.
func (f *Fade) Done() bool {
	if !f.timer.Done() {
		return false
	}
	return f.timer.Duration() > 0 || f.painted
}

// Filter implements Effect.
func (f *Fade) Filter() CellFilter {
	return f.filter
}

// SetFilter implements Effect.
func (f *Fade) SetFilter(filter CellFilter) {
	f.filter = f.filter.And(filter)
}
