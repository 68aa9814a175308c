package fx

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
)

// Handle identifies an effect added to a Manager. Handles are never reused
// within one Manager. The zero Handle is never issued.
type Handle uint64

// Outcome tells how a managed effect left the active set.
type Outcome uint8

const (
	OutcomeCompleted Outcome = iota // reported Done after a Process pass
	OutcomeCancelled                // removed by Cancel, Clear or AddUnique
)

// String returns "completed" or "cancelled".
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithCompletionHook registers fn to be called whenever an effect leaves the
// active set. fn runs after the Manager's own bookkeeping, so it may add new
// effects.
func WithCompletionHook(fn func(h Handle, o Outcome)) ManagerOption {
	return func(m *Manager) {
		m.onDone = fn
	}
}

type managed struct {
	handle Handle
	key    string
	effect Effect
}

// Manager owns the set of running top-level effects and drives them once
// per frame. It holds no grid state. A Manager is not safe for concurrent
// use; it belongs to the loop that owns the grid.
type Manager struct {
	effects []managed
	last    Handle
	onDone  func(Handle, Outcome)
}

// NewManager creates an empty manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add appends e to the active set and returns its handle.
// Effects are never deduplicated. Later effects paint over earlier ones.
// Adding nil is a no-op that returns the zero Handle.
func (m *Manager) Add(e Effect) Handle {
	return m.add("", e)
}

// AddUnique cancels any running effect added under key, then adds e.
func (m *Manager) AddUnique(key string, e Effect) Handle {
	if e == nil {
		return 0
	}
	var cancelled []Handle
	kept := m.effects[:0]
	for _, me := range m.effects {
		if key != "" && me.key == key {
			cancelled = append(cancelled, me.handle)
			continue
		}
		kept = append(kept, me)
	}
	m.truncate(kept)
	h := m.add(key, e)
	m.notify(cancelled, OutcomeCancelled)
	return h
}

func (m *Manager) add(key string, e Effect) Handle {
	if e == nil {
		return 0
	}
	m.last++
	m.effects = append(m.effects, managed{handle: m.last, key: key, effect: e})
	return m.last
}

// Cancel removes the effect with handle h before it completes.
// Its cells keep whatever it painted last. Returns false if h is not active.
func (m *Manager) Cancel(h Handle) bool {
	for i, me := range m.effects {
		if me.handle != h {
			continue
		}
		copy(m.effects[i:], m.effects[i+1:])
		m.effects[len(m.effects)-1] = managed{}
		m.effects = m.effects[:len(m.effects)-1]
		m.notify([]Handle{h}, OutcomeCancelled)
		return true
	}
	return false
}

// Clear cancels every active effect and returns how many were removed.
func (m *Manager) Clear() int {
	handles := m.Handles()
	m.truncate(m.effects[:0])
	m.notify(handles, OutcomeCancelled)
	return len(handles)
}

// Len returns the number of active effects.
func (m *Manager) Len() int {
	return len(m.effects)
}

// Active reports whether any effect is running.
func (m *Manager) Active() bool {
	return len(m.effects) > 0
}

// Handles returns the active handles in insertion order.
func (m *Manager) Handles() []Handle {
	out := make([]Handle, len(m.effects))
	for i, me := range m.effects {
		out[i] = me.handle
	}
	return out
}

// Process advances every active effect by delta and paints it into area of
// buf, in insertion order, then evicts the effects that are done.
// Every effect sees the same delta. Negative deltas count as zero. The area
// is clipped to buf; parts outside it are silently skipped. A nil buf still
// runs every Paint, as a no-op, so effects complete without a grid.
func (m *Manager) Process(delta time.Duration, buf Grid, area core.Rect) {
	if delta < 0 {
		delta = 0
	}
	if buf != nil {
		area = area.Intersect(buf.Bounds())
	}

	for _, me := range m.effects {
		me.effect.Advance(delta)
		me.effect.Paint(buf, area)
	}

	var finished []Handle
	kept := m.effects[:0]
	for _, me := range m.effects {
		if me.effect.Done() {
			finished = append(finished, me.handle)
			continue
		}
		kept = append(kept, me)
	}
	m.truncate(kept)
	m.notify(finished, OutcomeCompleted)
}

// truncate replaces the active set with kept, which must alias m.effects,
// and zeroes the dropped tail so finished effects can be collected.
func (m *Manager) truncate(kept []managed) {
	for i := len(kept); i < len(m.effects); i++ {
		m.effects[i] = managed{}
	}
	m.effects = kept
}

func (m *Manager) notify(handles []Handle, o Outcome) {
	if m.onDone == nil {
		return
	}
	for _, h := range handles {
		m.onDone(h, o)
	}
}
