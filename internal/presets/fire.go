package presets

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/config"
	"github.com/vovakirdan/tui-fx/internal/core"
	"github.com/vovakirdan/tui-fx/internal/fx"
)

// Fire brings the whole screen up out of the screen background:
//
//	prolong_start(delay,
//	    sequence(
//	        fade_from(bg, bg, boot),
//	        parallel(
//	            fade_from(bg, bg, flash),
//	            fade_from(bg, bg, main) with Text filter)))
func Fire(cfg config.Config, _ core.Rect) fx.Effect {
	bg := cfg.Palette.Colors().ScreenBg
	delay := time.Duration(cfg.Fire.DelayMs) * time.Millisecond

	return fx.ProlongStart(delay, fx.NewSequence(
		fx.FadeFrom(bg, bg, cfg.Fire.Boot.Timer()),
		fx.NewParallel(
			fx.FadeFrom(bg, bg, cfg.Fire.Flash.Timer()),
			fx.FadeFrom(bg, bg, cfg.Fire.Main.Timer()).WithFilter(fx.Text()),
		),
	))
}
