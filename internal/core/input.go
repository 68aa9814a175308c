package core

// Action represents a semantic app action, abstracted from physical key presses.
// This allows the app to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionDecrement         // Left, H - decrement the counter
	ActionIncrement         // Right, L - increment the counter
	ActionCancel            // X - cancel the newest running effect
	ActionClear             // C - cancel every running effect
	ActionScreenshot        // Ctrl+S - save the current frame to disk
	ActionHelp              // ? - toggle the full help view
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDecrement:
		return "Decrement"
	case ActionIncrement:
		return "Increment"
	case ActionCancel:
		return "Cancel"
	case ActionClear:
		return "Clear"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Triggers lists the effect presets requested this frame, in key-press order.
	Triggers []string
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Trigger queues an effect preset for this frame.
func (f *InputFrame) Trigger(presetID string) {
	f.Triggers = append(f.Triggers, presetID)
}

// Clear resets all actions and triggers for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Triggers = f.Triggers[:0]
}
