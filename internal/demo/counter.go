// Package demo holds the application state shown under the effects: a
// bordered panel with a counter. It has no Bubble Tea dependency; the
// platform maps keys to actions and drives Step and Render once per tick.
package demo

import (
	"fmt"

	"github.com/vovakirdan/tui-fx/internal/core"
)

// Title is drawn centered in the panel's top border.
const Title = "tui-fx"

// Counter is the demo panel: a saturating 8-bit counter and some help text.
type Counter struct {
	value uint8
	quit  bool
	style core.Style
}

// New creates a counter panel drawn white on black.
func New() *Counter {
	return &Counter{style: core.NewStyle(core.ColorWhite, core.ColorBlack)}
}

// WithStyle sets the panel's text and fill colors.
func (c *Counter) WithStyle(st core.Style) *Counter {
	c.style = st
	return c
}

// Reset clears the counter. The panel always fills whatever screen it is
// rendered into, so the runtime screen size is not kept.
func (c *Counter) Reset(_ core.RuntimeConfig) {
	c.value = 0
	c.quit = false
}

// SetValue restores a previously saved counter value.
func (c *Counter) SetValue(v uint8) {
	c.value = v
}

// Value returns the current counter.
func (c *Counter) Value() uint8 {
	return c.value
}

// Step applies one tick of input. Effect triggers pass through unchanged so
// the platform can start them after rendering.
func (c *Counter) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionDecrement) && c.value > 0 {
		c.value--
	}
	if in.Has(core.ActionIncrement) && c.value < 255 {
		c.value++
	}
	if in.Has(core.ActionQuit) {
		c.quit = true
	}

	var triggers []string
	if len(in.Triggers) > 0 {
		triggers = append(triggers, in.Triggers...)
	}
	return core.StepResult{State: c.State(), Triggers: triggers}
}

// Lines returns the panel text, one entry per row.
func (c *Counter) Lines() []string {
	return []string{
		"This is a tui-fx demo.",
		"Press left and right to decrement and increment the counter.",
		"Press 'f' to trigger the fire effect.",
		fmt.Sprintf("Counter: %d", c.value),
	}
}

// Render fills dst with the panel: a rounded border with the title and the
// text centered below the top edge.
func (c *Counter) Render(dst *core.Screen) {
	dst.SetPen(c.style)
	dst.Fill(' ')

	bounds := dst.Bounds()
	if bounds.Empty() {
		return
	}
	dst.DrawBorder(bounds, core.BorderRounded)
	if bounds.W > 2 {
		dst.DrawTextCenteredIn(bounds, 0, Title)
	}

	inner := bounds.Inset(1)
	for i, line := range c.Lines() {
		y := inner.Y + i
		if y >= inner.Bottom() {
			break
		}
		dst.DrawTextCenteredIn(inner, y, line)
	}
}

// State returns the current application state.
func (c *Counter) State() core.AppState {
	return core.AppState{Counter: c.value, Quit: c.quit}
}
