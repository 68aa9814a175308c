package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fx/internal/core"
	"github.com/vovakirdan/tui-fx/internal/registry"
)

// PresetBinding binds a key to an effect preset.
type PresetBinding struct {
	PresetID string
	Binding  key.Binding
}

// KeyMap defines the key bindings of the demo.
// Preset bindings come from config so they can be remapped.
type KeyMap struct {
	Decrement  key.Binding
	Increment  key.Binding
	Cancel     key.Binding
	Clear      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
	Presets    []PresetBinding
}

// DefaultKeyMap returns the fixed bindings plus one binding per entry of
// presets (key -> preset id). Entries naming unknown presets are skipped.
func DefaultKeyMap(presets map[string]string) KeyMap {
	km := KeyMap{
		Decrement: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrement"),
		),
		Increment: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increment"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "cancel newest"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear effects"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		id := presets[k]
		if !registry.Exists(id) {
			continue
		}
		km.Presets = append(km.Presets, PresetBinding{
			PresetID: id,
			Binding: key.NewBinding(
				key.WithKeys(k),
				key.WithHelp(k, id),
			),
		})
	}
	return km
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	short := []key.Binding{k.Decrement, k.Increment}
	for _, p := range k.Presets {
		if p.PresetID == "fire" {
			short = append(short, p.Binding)
		}
	}
	return append(short, k.Help, k.Quit)
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	presets := make([]key.Binding, 0, len(k.Presets))
	for _, p := range k.Presets {
		presets = append(presets, p.Binding)
	}
	return [][]key.Binding{
		{k.Decrement, k.Increment},
		presets,
		{k.Cancel, k.Clear, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// MapKey translates a key message to an action or a preset trigger.
// Returns ActionNone and an empty id for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, presetID string) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, ""
	case key.Matches(msg, k.Decrement):
		return core.ActionDecrement, ""
	case key.Matches(msg, k.Increment):
		return core.ActionIncrement, ""
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel, ""
	case key.Matches(msg, k.Clear):
		return core.ActionClear, ""
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot, ""
	case key.Matches(msg, k.Help):
		return core.ActionHelp, ""
	}

	for _, p := range k.Presets {
		if key.Matches(msg, p.Binding) {
			return core.ActionNone, p.PresetID
		}
	}
	return core.ActionNone, ""
}
