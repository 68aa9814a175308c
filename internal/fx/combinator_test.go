package fx

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
)

const ms = time.Millisecond

func fade(d time.Duration, from, to core.Color) *Fade {
	return NewFade(NewTimer(d, Linear)).Foreground(from, to)
}

func TestSequenceOrdering(t *testing.T) {
	first := fade(100*ms, colorA, colorB)
	second := fade(200*ms, colorB, colorA)
	seq := NewSequence(first, second)
	s := newGrid(2, 2)

	seq.Advance(100 * ms)
	seq.Paint(s, s.Bounds())

	if !first.Done() {
		t.Fatal("first child should be done after 100ms")
	}
	if second.Timer().Elapsed() != 0 {
		t.Errorf("second child elapsed = %v, expected 0", second.Timer().Elapsed())
	}
	// The finishing frame paints the first child's terminal state
	assertAllFg(t, s, colorB)

	seq.Advance(10 * ms)
	if got := second.Timer().Elapsed(); got != 10*ms {
		t.Errorf("second child elapsed = %v, expected 10ms (not 110ms)", got)
	}
	if seq.Active() != 1 {
		t.Errorf("Active() = %d, expected 1", seq.Active())
	}
	if seq.Done() {
		t.Error("sequence should not be done yet")
	}

	seq.Advance(190 * ms)
	if !seq.Done() {
		t.Error("sequence should be done once the last child is")
	}
}

func TestSequenceDoesNotCarryExcess(t *testing.T) {
	first := fade(100*ms, colorA, colorB)
	second := fade(100*ms, colorA, colorB)
	seq := NewSequence(first, second)

	seq.Advance(150 * ms)
	if second.Timer().Elapsed() != 0 {
		t.Errorf("second child elapsed = %v, expected 0", second.Timer().Elapsed())
	}
	if first.Timer().Elapsed() != 150*ms {
		t.Errorf("first child elapsed = %v, expected 150ms", first.Timer().Elapsed())
	}
}

func TestSequencePaintsActiveChildOnly(t *testing.T) {
	first := fade(10*ms, colorA, colorB)
	second := NewFade(Millis(100)).Background(colorA, colorB)
	seq := NewSequence(first, second)
	s := newGrid(1, 1)

	seq.Advance(10 * ms)
	seq.Paint(s, s.Bounds())
	seq.Advance(10 * ms)

	// Simulate fresh content; only the active child paints
	s.SetCell(0, 0, core.Cell{Rune: 'x', Fg: core.ColorRed})
	seq.Paint(s, s.Bounds())
	if got := s.GetCell(0, 0).Fg; got != core.ColorRed {
		t.Errorf("finished child repainted fg: %+v", got)
	}

	seq.WithRepaint(RepaintFinished)
	seq.Paint(s, s.Bounds())
	if got := s.GetCell(0, 0).Fg; got != colorB {
		t.Errorf("RepaintFinished should repaint the first child, fg = %+v", got)
	}
}

func TestEmptySequenceIsDone(t *testing.T) {
	seq := NewSequence()
	if !seq.Done() {
		t.Error("empty sequence should be done")
	}
	seq.Advance(10 * ms)
	seq.Paint(newGrid(1, 1), core.NewRect(0, 0, 1, 1))
}

func TestSequenceZeroDurationChild(t *testing.T) {
	flash := NewFade(NewTimer(0, Linear)).Foreground(colorB, colorB)
	after := fade(50*ms, colorA, colorA)
	seq := NewSequence(flash, after)
	s := newGrid(1, 1)

	seq.Advance(16 * ms)
	seq.Paint(s, s.Bounds())
	if got := s.GetCell(0, 0).Fg; got != colorB {
		t.Errorf("zero duration child was skipped, fg = %+v", got)
	}

	seq.Advance(16 * ms)
	if after.Timer().Elapsed() != 16*ms {
		t.Errorf("next child elapsed = %v, expected 16ms", after.Timer().Elapsed())
	}
}

func TestParallelCompletion(t *testing.T) {
	short := fade(100*ms, colorA, colorB)
	long := NewFade(Millis(300)).Background(colorA, colorB)
	par := NewParallel(short, long)
	s := newGrid(2, 2)

	par.Advance(150 * ms)
	par.Paint(s, s.Bounds())
	if par.Done() {
		t.Error("parallel should not be done at 150ms")
	}
	// Short child keeps its terminal state over fresh content
	s.SetPen(core.NewStyle(core.ColorRed, core.ColorBlack))
	s.Fill('x')
	par.Paint(s, s.Bounds())
	assertAllFg(t, s, colorB)

	par.Advance(149 * ms)
	if par.Done() {
		t.Error("parallel should not be done at 299ms")
	}
	par.Advance(1 * ms)
	if !par.Done() {
		t.Error("parallel should be done at 300ms")
	}
}

func TestParallelStopsAdvancingFinishedChildren(t *testing.T) {
	short := fade(100*ms, colorA, colorB)
	long := fade(300*ms, colorA, colorB)
	par := NewParallel(short, long)

	par.Advance(100 * ms)
	par.Advance(50 * ms)

	if short.Timer().Elapsed() != 100*ms {
		t.Errorf("finished child elapsed = %v, expected 100ms", short.Timer().Elapsed())
	}
	if long.Timer().Elapsed() != 150*ms {
		t.Errorf("running child elapsed = %v, expected 150ms", long.Timer().Elapsed())
	}
}

func TestParallelRepaintActive(t *testing.T) {
	short := fade(10*ms, colorA, colorB)
	long := NewFade(Millis(100)).Background(colorA, colorB)
	par := NewParallel(short, long).WithRepaint(RepaintActive)
	s := newGrid(1, 1)

	par.Advance(10 * ms)
	par.Paint(s, s.Bounds())
	if got := s.GetCell(0, 0).Fg; got != colorB {
		t.Fatalf("finishing frame should paint terminal state, fg = %+v", got)
	}

	s.SetCell(0, 0, core.Cell{Rune: 'x', Fg: core.ColorRed})
	par.Advance(10 * ms)
	par.Paint(s, s.Bounds())
	if got := s.GetCell(0, 0).Fg; got != core.ColorRed {
		t.Errorf("settled child repainted under RepaintActive, fg = %+v", got)
	}
}

func TestProlongStartCarriesExcess(t *testing.T) {
	child := fade(100*ms, colorA, colorB)
	p := ProlongStart(300*ms, child)

	p.Advance(350 * ms)
	if got := child.Timer().Elapsed(); got != 50*ms {
		t.Errorf("child elapsed = %v, expected 50ms", got)
	}
	if p.Done() {
		t.Error("should not be done with the child half way")
	}

	p.Advance(50 * ms)
	if !p.Done() {
		t.Error("should be done once the child is")
	}
}

func TestProlongStartSilentDuringDelay(t *testing.T) {
	child := fade(0, colorB, colorB)
	p := ProlongStart(300*ms, child)
	s := newGrid(2, 1)

	p.Advance(100 * ms)
	p.Paint(s, s.Bounds())
	assertAllFg(t, s, core.ColorWhite)
	if p.Done() {
		t.Error("Done() should be false during the delay")
	}
	if child.Timer().Elapsed() != 0 {
		t.Errorf("child received time during delay: %v", child.Timer().Elapsed())
	}

	p.Advance(200 * ms)
	p.Paint(s, s.Bounds())
	assertAllFg(t, s, colorB)
	if !p.Done() {
		t.Error("zero duration child should finish on the frame the delay ends")
	}
}

func TestProlongEndHoldsTerminalState(t *testing.T) {
	child := fade(100*ms, colorA, colorB)
	p := ProlongEnd(200*ms, child)
	s := newGrid(1, 1)

	p.Advance(100 * ms)
	p.Paint(s, s.Bounds())
	if p.Done() {
		t.Error("hold has not started yet")
	}

	p.Advance(150 * ms)
	s.SetCell(0, 0, core.Cell{Rune: 'x', Fg: core.ColorRed})
	p.Paint(s, s.Bounds())
	assertAllFg(t, s, colorB)
	if child.Timer().Elapsed() != 100*ms {
		t.Errorf("child advanced during hold: %v", child.Timer().Elapsed())
	}

	p.Advance(50 * ms)
	if !p.Done() {
		t.Error("should be done after the hold")
	}
}

func TestSleep(t *testing.T) {
	sl := NewSleep(50 * ms)
	s := newGrid(1, 1)

	sl.Advance(40 * ms)
	sl.Paint(s, s.Bounds())
	assertAllFg(t, s, core.ColorWhite)
	if sl.Done() {
		t.Error("sleep done too early")
	}
	sl.Advance(10 * ms)
	if !sl.Done() {
		t.Error("sleep should be done")
	}
}

func TestCombinatorFilterNarrowsChildren(t *testing.T) {
	plain := fade(10*ms, colorA, colorB)
	text := fade(10*ms, colorA, colorB).WithFilter(Text())
	region := core.NewRect(0, 0, 2, 1)
	par := NewParallel(plain, ProlongStart(0, text)).WithFilter(Area(region))

	cell := core.Cell{Rune: 'a'}
	blank := core.Cell{Rune: ' '}
	area := core.NewRect(0, 0, 10, 10)

	if !plain.Filter().Matches(1, 0, blank, area) {
		t.Error("plain child should match blanks inside the region")
	}
	if plain.Filter().Matches(5, 0, cell, area) {
		t.Error("plain child should not match outside the region")
	}
	if text.Filter().Matches(1, 0, blank, area) {
		t.Error("text child should still require text")
	}
	if !text.Filter().Matches(1, 0, cell, area) {
		t.Error("text child should match text inside the region")
	}
	if text.Filter().Matches(5, 0, cell, area) {
		t.Error("text child should not match outside the region")
	}
	if par.Filter().Matches(5, 0, cell, area) {
		t.Error("parallel filter should not match outside the region")
	}
	if !par.Filter().Matches(1, 0, blank, area) {
		t.Error("parallel filter should match inside the region")
	}
}

func TestFireComposition(t *testing.T) {
	screenBg := core.Hex(0x1d2021)
	s := newGrid(20, 6)

	effect := ProlongStart(300*ms, NewSequence(
		FadeFrom(screenBg, screenBg, NewTimer(300*ms, CircIn)),
		NewParallel(
			FadeFrom(screenBg, screenBg, Millis(300)),
			FadeFrom(screenBg, screenBg, NewTimer(900*ms, QuadIn)).WithFilter(Text()),
		),
	))

	frames := 0
	for !effect.Done() {
		// The app redraws its content before effects run on every frame
		s.SetPen(core.NewStyle(core.ColorWhite, core.ColorBlack))
		s.Fill('x')
		effect.Advance(16 * ms)
		effect.Paint(s, s.Bounds())
		frames++
		if frames > 1000 {
			t.Fatal("effect never finished")
		}
	}

	// Cells end at their own colors
	assertAllFg(t, s, core.ColorWhite)
	// 300ms delay + 300ms boot + 900ms main, in 16ms frames, plus one frame
	// where the sequence switches children
	if frames < 94 || frames > 96 {
		t.Errorf("frames = %d, expected about 95", frames)
	}
}
