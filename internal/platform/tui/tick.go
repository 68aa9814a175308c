// Package tui provides the Bubble Tea integration for the effects demo.
// It handles the terminal UI loop, input mapping, frame pacing and the
// hand-off between the demo panel and the effect manager.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into effect deltas. With a fixed delta
// every frame advances by the same amount, which keeps runs reproducible;
// otherwise the wall time since the previous tick is used.
type frameClock struct {
	fixed time.Duration
	last  time.Time
}

// delta returns the time to advance effects for a tick at now.
func (c *frameClock) delta(now time.Time) time.Duration {
	prev := c.last
	c.last = now
	if c.fixed > 0 {
		return c.fixed
	}
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return now.Sub(prev)
}
