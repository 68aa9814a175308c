package presets

import (
	"time"

	"github.com/vovakirdan/tui-fx/internal/config"
	"github.com/vovakirdan/tui-fx/internal/core"
	"github.com/vovakirdan/tui-fx/internal/fx"
)

const (
	spotlightFade = 300 * time.Millisecond
	spotlightHold = 900 * time.Millisecond
)

// Spotlight dims everything outside the content rectangle to the screen
// background, holds, then brings it back. When the configured content
// rectangle does not fit the area, the middle half of the area is used.
func Spotlight(cfg config.Config, area core.Rect) fx.Effect {
	bg := cfg.Palette.Colors().ScreenBg
	spot := SpotlightRect(cfg.Content.Rect(), area)

	return fx.NewSequence(
		fx.ProlongEnd(spotlightHold, fx.FadeTo(bg, bg, fx.NewTimer(spotlightFade, fx.SineOut))),
		fx.FadeFrom(bg, bg, fx.NewTimer(spotlightFade, fx.SineIn)),
	).WithFilter(fx.Not(fx.Area(spot)))
}

// SpotlightRect returns the region kept lit inside area.
func SpotlightRect(content, area core.Rect) core.Rect {
	spot := content.Intersect(area)
	if spot == content && !spot.Empty() {
		return spot
	}
	cx, cy := area.Center()
	w, h := area.W/2, area.H/2
	return core.NewRect(cx-w/2, cy-h/2, w, h)
}
