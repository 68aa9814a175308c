package fx

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
)

func TestFadeIdempotentPaint(t *testing.T) {
	s := newGrid(6, 3)
	f := NewFade(NewTimer(200*time.Millisecond, CircIn)).Foreground(colorA, colorB).Background(colorB, colorA)

	f.Advance(70 * time.Millisecond)
	f.Paint(s, s.Bounds())
	first := s.GetCell(2, 1)

	f.Paint(s, s.Bounds())
	second := s.GetCell(2, 1)

	if first != second {
		t.Errorf("Repaint changed cell: %+v then %+v", first, second)
	}
}

func TestFadeLinearMonotonic(t *testing.T) {
	s := newGrid(1, 1)
	f := NewFade(NewTimer(200*time.Millisecond, Linear)).Foreground(colorA, colorB)

	prev := colorA
	for i := 0; i < 20; i++ {
		f.Advance(10 * time.Millisecond)
		f.Paint(s, s.Bounds())
		got := s.GetCell(0, 0).Fg
		if got.R < prev.R || got.G < prev.G || got.B < prev.B {
			t.Fatalf("step %d: color moved away from end: %+v after %+v", i, got, prev)
		}
		prev = got
	}
	if prev != colorB {
		t.Errorf("final color = %+v, expected %+v", prev, colorB)
	}
}

func TestFadeCompletionBoundary(t *testing.T) {
	s := newGrid(3, 3)
	f := NewFade(NewTimer(100*time.Millisecond, QuadIn)).Foreground(colorA, colorB)

	f.Advance(99 * time.Millisecond)
	if f.Done() {
		t.Error("Done() = true at 99ms of 100ms")
	}

	f.Advance(1 * time.Millisecond)
	if !f.Done() {
		t.Error("Done() = false at exactly 100ms")
	}
	f.Paint(s, s.Bounds())
	assertAllFg(t, s, colorB)

	f.Advance(50 * time.Millisecond)
	if !f.Done() {
		t.Error("Done() = false past the duration")
	}
}

func TestFadeQuadInScenario(t *testing.T) {
	s := newGrid(4, 2)
	f := NewFade(NewTimer(900*time.Millisecond, QuadIn)).Foreground(colorA, colorB)

	f.Advance(450 * time.Millisecond)
	f.Paint(s, s.Bounds())

	eased := colorA.Lerp(colorB, QuadIn.Apply(0.5), core.DefaultForeground)
	linear := colorA.Lerp(colorB, 0.5, core.DefaultForeground)

	got := s.GetCell(0, 0).Fg
	if got != eased {
		t.Errorf("painted %+v, expected eased %+v", got, eased)
	}
	if got == linear {
		t.Errorf("painted the linear midpoint %+v, curve was ignored", linear)
	}
	if eased != core.RGB(50, 25, 10) {
		t.Errorf("eased color = %+v, expected {50 25 10}", eased)
	}
}

func TestFadeZeroDurationPaintsOnce(t *testing.T) {
	s := newGrid(2, 2)
	f := NewFade(NewTimer(0, Linear)).Foreground(colorA, colorB)

	if f.Done() {
		t.Error("Zero duration fade should not be done before painting")
	}

	f.Advance(16 * time.Millisecond)
	f.Paint(s, s.Bounds())
	assertAllFg(t, s, colorB)

	if !f.Done() {
		t.Error("Zero duration fade should be done after its first paint")
	}
}

func TestFadeOnlyTouchesColors(t *testing.T) {
	s := newGrid(3, 1)
	s.SetPen(core.Style{Fg: core.ColorWhite, Attr: core.AttrBold})
	s.DrawText(0, 0, "abc")

	f := NewFade(Millis(10)).Background(colorA, colorB)
	f.Advance(10 * time.Millisecond)
	f.Paint(s, s.Bounds())

	c := s.GetCell(1, 0)
	if c.Rune != 'b' || c.Attr != core.AttrBold || c.Fg != core.ColorWhite {
		t.Errorf("Fade changed more than the background: %+v", c)
	}
	if c.Bg != colorB {
		t.Errorf("Bg = %+v, expected %+v", c.Bg, colorB)
	}
}

func TestFadeClipsToGrid(t *testing.T) {
	s := newGrid(4, 4)
	f := NewFade(Millis(10)).Foreground(colorA, colorB)
	f.Advance(10 * time.Millisecond)

	// Area hangs off every edge of the grid
	f.Paint(s, core.NewRect(-3, -3, 20, 20))
	assertAllFg(t, s, colorB)

	// Area entirely outside is a no-op
	f.Paint(s, core.NewRect(50, 50, 5, 5))
}

func TestFadeWithTextFilter(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawText(0, 0, "a b")

	f := NewFade(Millis(10)).Foreground(colorA, colorB).WithFilter(Text())
	f.Advance(10 * time.Millisecond)
	f.Paint(s, s.Bounds())

	if s.GetCell(0, 0).Fg != colorB || s.GetCell(2, 0).Fg != colorB {
		t.Error("Text cells should be faded")
	}
	if s.GetCell(1, 0).Fg != core.ColorDefault || s.GetCell(4, 0).Fg != core.ColorDefault {
		t.Error("Blank cells should be left alone")
	}
}

func TestFadeFromTargetsCellColors(t *testing.T) {
	s := newGrid(2, 1)
	under := core.ColorWhite
	f := FadeFrom(colorA, colorA, NewTimer(100*time.Millisecond, Linear))

	f.Advance(50 * time.Millisecond)
	f.Paint(s, s.Bounds())
	mid := s.GetCell(0, 0).Fg
	expected := colorA.Lerp(under, 0.5, core.DefaultForeground)
	if mid != expected {
		t.Fatalf("fg = %+v, expected %+v", mid, expected)
	}

	// Repainting without redrawn content is idempotent
	f.Paint(s, s.Bounds())
	if got := s.GetCell(0, 0).Fg; got != mid {
		t.Errorf("repaint fg = %+v, expected %+v", got, mid)
	}

	// The app redraws its content; the fade picks the fresh color up
	s.SetPen(core.NewStyle(core.ColorWhite, core.ColorBlack))
	s.Fill('x')
	f.Paint(s, s.Bounds())
	if got := s.GetCell(0, 0).Fg; got != mid {
		t.Errorf("fg after redraw = %+v, expected %+v", got, mid)
	}

	f.Advance(50 * time.Millisecond)
	f.Paint(s, s.Bounds())
	if got := s.GetCell(1, 0).Fg; got != under {
		t.Errorf("final fg = %+v, expected the cell's own %+v", got, under)
	}
	if got := s.GetCell(1, 0).Bg; got != core.ColorBlack {
		t.Errorf("final bg = %+v, expected the cell's own %+v", got, core.ColorBlack)
	}
}

func TestFadeToFromCellColors(t *testing.T) {
	s := newGrid(1, 1)
	f := FadeToFg(colorB, NewTimer(100*time.Millisecond, Linear))

	f.Advance(100 * time.Millisecond)
	f.Paint(s, s.Bounds())
	if got := s.GetCell(0, 0).Fg; got != colorB {
		t.Errorf("fg = %+v, expected %+v", got, colorB)
	}
	if got := s.GetCell(0, 0).Bg; got != core.ColorBlack {
		t.Errorf("FadeToFg touched the background: %+v", got)
	}
}

func TestStackedRelativeFadesWithRedraw(t *testing.T) {
	bg := core.Hex(0x1d2021)
	redraw := func(s *core.Screen) {
		s.SetPen(core.NewStyle(core.ColorWhite, core.ColorBlack))
		s.Fill('x')
	}
	par := NewParallel(
		FadeFrom(bg, bg, Millis(300)),
		FadeFrom(bg, bg, Millis(900)).WithFilter(Text()),
	)
	par.Advance(150 * time.Millisecond)

	s := newGrid(3, 1)
	par.Paint(s, s.Bounds())
	first := s.GetCell(1, 0)

	inner := bg.Lerp(core.ColorWhite, 0.5, core.DefaultForeground)
	expected := bg.Lerp(inner, 150.0/900.0, core.DefaultForeground)
	if first.Fg != expected {
		t.Fatalf("fg = %v, expected %v", first.Fg, expected)
	}

	for i := 0; i < 3; i++ {
		redraw(s)
		par.Paint(s, s.Bounds())
		if got := s.GetCell(1, 0); got != first {
			t.Fatalf("paint %d after redraw = %+v, expected %+v", i+2, got, first)
		}
	}
}
