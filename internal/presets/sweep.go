package presets

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/config"
	"github.com/vovakirdan/tui-fx/internal/core"
	"github.com/vovakirdan/tui-fx/internal/fx"
)

// Sweep reveals the screen left to right in vertical bands. Each band fades
// in from the content background, starting StaggerMs after the previous one.
// Bands that have not started yet are held at the content background.
func Sweep(cfg config.Config, area core.Rect) fx.Effect {
	if area.Empty() {
		return fx.NewParallel()
	}
	bg := cfg.Palette.Colors().ContentBg
	width := max(cfg.Sweep.BandWidth, 1)
	stagger := time.Duration(cfg.Sweep.StaggerMs) * time.Millisecond

	var bands []fx.Effect
	for i, x := 0, area.X; x < area.Right(); i, x = i+1, x+width {
		band := core.NewRect(x, area.Y, core.Min(width, area.Right()-x), area.H)
		delay := time.Duration(i) * stagger

		bands = append(bands, fx.NewSequence(
			// The held zero-length fade keeps the band dark until its turn
			fx.ProlongEnd(delay, fx.NewFade(fx.NewTimer(0, fx.Linear)).Foreground(bg, bg).Background(bg, bg)),
			fx.FadeFrom(bg, bg, cfg.Sweep.Band.Timer()),
		).WithRepaint(fx.RepaintActive).WithFilter(fx.Area(band)))
	}
	return fx.NewParallel(bands...)
}
