package core

import "time"

// RuntimeConfig contains configuration passed to the app at initialization.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickRate   int           // Frames per second (default 60)
	FixedDelta time.Duration // Per-frame effect delta; 0 means measure wall time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		FixedDelta: 16 * time.Millisecond,
	}
}

// FrameInterval returns the wall time between two ticks.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// AppState represents the current state of the demo app.
type AppState struct {
	Counter uint8 // Value shown in the panel
	Quit    bool  // Whether the user asked to exit
}

// StepResult is returned by the app after each tick.
type StepResult struct {
	State AppState

	// Triggers are the effect presets the app wants started this tick.
	Triggers []string
}
