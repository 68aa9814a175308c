package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-fx/internal/config"
	"github.com/vovakirdan/tui-fx/internal/core"
	"github.com/vovakirdan/tui-fx/internal/demo"
	"github.com/vovakirdan/tui-fx/internal/fx"
	"github.com/vovakirdan/tui-fx/internal/registry"
)

// SnapshotResult is a headless frame of a preset.
type SnapshotResult struct {
	Screen *core.Screen
	Frames int
	Done   bool // the preset finished at or before the requested time
}

// Snapshot renders the demo panel of size w x h and drives presetID over it
// in steps of step until at has elapsed, exactly as the interactive loop
// would. The last step is shortened so the total is exactly at.
func Snapshot(cfg config.Config, presetID string, w, h int, at, step time.Duration) (SnapshotResult, error) {
	if step <= 0 {
		return SnapshotResult{}, fmt.Errorf("snapshot: step must be positive, got %v", step)
	}
	if at < 0 {
		return SnapshotResult{}, fmt.Errorf("snapshot: time must not be negative, got %v", at)
	}

	screen := core.NewScreen(w, h)
	panel := demo.New().WithStyle(cfg.Palette.Colors().PanelStyle())
	panel.Reset(cfg.Runtime(w, h))

	e, err := registry.Build(presetID, cfg, screen.Bounds())
	if err != nil {
		return SnapshotResult{}, err
	}
	effects := fx.NewManager()
	effects.Add(e)

	res := SnapshotResult{Screen: screen}
	panel.Render(screen)
	for elapsed := time.Duration(0); elapsed < at; {
		d := min(step, at-elapsed)
		panel.Render(screen)
		effects.Process(d, screen, screen.Bounds())
		elapsed += d
		res.Frames++
	}
	res.Done = !effects.Active()
	return res, nil
}
