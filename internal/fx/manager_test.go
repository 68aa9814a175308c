package fx

import (
	"testing"

	"github.com/vovakirdan/tui-fx/internal/core"
)

type hookEvent struct {
	handle  Handle
	outcome Outcome
}

func recordingManager() (*Manager, *[]hookEvent) {
	var events []hookEvent
	m := NewManager(WithCompletionHook(func(h Handle, o Outcome) {
		events = append(events, hookEvent{h, o})
	}))
	return m, &events
}

func TestManagerEvictsFinishedEffects(t *testing.T) {
	m, events := recordingManager()
	s := newGrid(2, 2)
	h := m.Add(fade(100*ms, colorA, colorB))

	m.Process(100*ms, s, s.Bounds())
	assertAllFg(t, s, colorB)
	if m.Len() != 0 {
		t.Fatalf("Len() = %d, expected 0 after completion", m.Len())
	}
	if len(*events) != 1 || (*events)[0] != (hookEvent{h, OutcomeCompleted}) {
		t.Errorf("hook events = %v", *events)
	}

	// The evicted effect no longer paints
	s.SetPen(core.NewStyle(core.ColorRed, core.ColorBlack))
	s.Fill('x')
	m.Process(16*ms, s, s.Bounds())
	assertAllFg(t, s, core.ColorRed)
}

func TestManagerInsertionOrder(t *testing.T) {
	m := NewManager()
	s := newGrid(1, 1)
	m.Add(fade(100*ms, colorA, colorA))
	m.Add(fade(100*ms, colorB, colorB))

	m.Process(10*ms, s, s.Bounds())
	assertAllFg(t, s, colorB)
}

func TestManagerSameDelta(t *testing.T) {
	m := NewManager()
	first := fade(100*ms, colorA, colorB)
	second := fade(300*ms, colorA, colorB)
	m.Add(first)
	m.Add(second)

	m.Process(40*ms, newGrid(1, 1), core.NewRect(0, 0, 1, 1))
	if first.Timer().Elapsed() != 40*ms || second.Timer().Elapsed() != 40*ms {
		t.Errorf("elapsed = %v, %v, expected 40ms each", first.Timer().Elapsed(), second.Timer().Elapsed())
	}
}

func TestManagerHandles(t *testing.T) {
	m := NewManager()
	a := m.Add(NewSleep(10 * ms))
	b := m.Add(NewSleep(10 * ms))
	if a == 0 || b == 0 || a == b {
		t.Fatalf("handles = %d, %d", a, b)
	}
	if got := m.Add(nil); got != 0 {
		t.Errorf("Add(nil) = %d, expected 0", got)
	}
	hs := m.Handles()
	if len(hs) != 2 || hs[0] != a || hs[1] != b {
		t.Errorf("Handles() = %v, expected [%d %d]", hs, a, b)
	}
}

func TestManagerCancel(t *testing.T) {
	m, events := recordingManager()
	a := m.Add(NewSleep(100 * ms))
	b := m.Add(NewSleep(100 * ms))

	if !m.Cancel(a) {
		t.Fatal("Cancel() = false for an active handle")
	}
	if m.Cancel(a) {
		t.Error("Cancel() = true for a removed handle")
	}
	if hs := m.Handles(); len(hs) != 1 || hs[0] != b {
		t.Errorf("Handles() = %v, expected [%d]", hs, b)
	}
	if len(*events) != 1 || (*events)[0] != (hookEvent{a, OutcomeCancelled}) {
		t.Errorf("hook events = %v", *events)
	}
}

func TestManagerCancelKeepsLastPaint(t *testing.T) {
	m := NewManager()
	s := newGrid(1, 1)
	h := m.Add(fade(100*ms, colorA, colorB))

	m.Process(100*ms-1, s, s.Bounds())
	painted := s.GetCell(0, 0).Fg
	m.Cancel(h)
	m.Process(16*ms, s, s.Bounds())
	if got := s.GetCell(0, 0).Fg; got != painted {
		t.Errorf("fg = %+v, expected last painted %+v", got, painted)
	}
}

func TestManagerAddUnique(t *testing.T) {
	m, events := recordingManager()
	first := m.AddUnique("fire", NewSleep(100*ms))
	other := m.Add(NewSleep(100 * ms))
	second := m.AddUnique("fire", NewSleep(100*ms))

	hs := m.Handles()
	if len(hs) != 2 || hs[0] != other || hs[1] != second {
		t.Errorf("Handles() = %v, expected [%d %d]", hs, other, second)
	}
	if len(*events) != 1 || (*events)[0] != (hookEvent{first, OutcomeCancelled}) {
		t.Errorf("hook events = %v", *events)
	}
}

func TestManagerClear(t *testing.T) {
	m, events := recordingManager()
	m.Add(NewSleep(100 * ms))
	m.Add(NewSleep(100 * ms))

	if n := m.Clear(); n != 2 {
		t.Errorf("Clear() = %d, expected 2", n)
	}
	if m.Active() {
		t.Error("Active() = true after Clear")
	}
	if len(*events) != 2 {
		t.Errorf("hook events = %v, expected 2", *events)
	}
}

func TestManagerZeroDurationEffect(t *testing.T) {
	m := NewManager()
	s := newGrid(1, 1)
	m.Add(NewFade(NewTimer(0, Linear)).Foreground(colorB, colorB))

	m.Process(16*ms, s, s.Bounds())
	assertAllFg(t, s, colorB)
	if m.Len() != 0 {
		t.Errorf("Len() = %d, expected 0 after one process", m.Len())
	}
}

func TestManagerZeroDurationWithoutGrid(t *testing.T) {
	m, events := recordingManager()
	m.Add(NewSequence(
		NewFade(NewTimer(0, Linear)).Foreground(colorB, colorB),
		NewFade(NewTimer(0, Linear)).Background(colorA, colorA),
	))

	for i := 0; i < 2; i++ {
		m.Process(16*ms, nil, core.NewRect(0, 0, 4, 4))
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, expected 0 after two processes without a grid", m.Len())
	}
	if len(*events) != 1 || (*events)[0].outcome != OutcomeCompleted {
		t.Errorf("events = %+v, expected one completion", *events)
	}
}

func TestManagerClipsArea(t *testing.T) {
	m := NewManager()
	s := newGrid(3, 2)
	m.Add(fade(10*ms, colorA, colorB))

	m.Process(10*ms, s, core.NewRect(-5, -5, 100, 100))
	assertAllFg(t, s, colorB)
}

func TestManagerNegativeDelta(t *testing.T) {
	m := NewManager()
	f := fade(100*ms, colorA, colorB)
	m.Add(f)

	m.Process(-50*ms, newGrid(1, 1), core.NewRect(0, 0, 1, 1))
	if f.Timer().Elapsed() != 0 {
		t.Errorf("elapsed = %v, expected 0", f.Timer().Elapsed())
	}
}

func TestManagerHookMayAddEffects(t *testing.T) {
	var m *Manager
	m = NewManager(WithCompletionHook(func(h Handle, o Outcome) {
		if o == OutcomeCompleted {
			m.Add(NewSleep(10 * ms))
		}
	}))
	m.Add(NewSleep(10 * ms))

	m.Process(10*ms, nil, core.Rect{})
	if m.Len() != 1 {
		t.Errorf("Len() = %d, expected the follow-up effect", m.Len())
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeCompleted.String() != "completed" || OutcomeCancelled.String() != "cancelled" {
		t.Errorf("Outcome strings = %s, %s", OutcomeCompleted, OutcomeCancelled)
	}
}
