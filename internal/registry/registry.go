// Package registry provides a global registry for effect presets.
// Presets register themselves in init() functions, allowing the platform
// to discover and build effects by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-fx/internal/config"
	"github.com/vovakirdan/tui-fx/internal/core"
	"github.com/vovakirdan/tui-fx/internal/fx"
)

// Preset is a named recipe for a top-level effect.
// Presets hold no state of their own; every Build returns a fresh effect.
type Preset interface {
	// ID returns a unique identifier for this preset (e.g., "fire", "sweep").
	// Used for key bindings, CLI commands and the run journal.
	ID() string

	// Title returns a human-readable name for display (e.g., "Fire").
	Title() string

	// Build creates a new effect for a screen whose drawable area is area.
	// Timings and colors come from cfg.
	Build(cfg config.Config, area core.Rect) fx.Effect
}

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a preset.
type Factory func() Preset

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Typically called from an init() function.
// Panics if a preset with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PresetInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a preset by its ID.
// Returns an error if the preset ID is not registered.
func Create(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown preset %q", id)
	}

	return f(), nil
}

// Build creates the preset's effect in one call.
func Build(id string, cfg config.Config, area core.Rect) (fx.Effect, error) {
	p, err := Create(id)
	if err != nil {
		return nil, err
	}
	return p.Build(cfg, area), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
