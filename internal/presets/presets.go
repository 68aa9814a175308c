// Package presets contains the built-in effect presets. Each one registers
// itself with the registry in init(); import the package for its side
// effects to make them available.
package presets

import (
	"github.com/vovakirdan/tui-fx/internal/config"
	"github.com/vovakirdan/tui-fx/internal/core"
	"github.com/vovakirdan/tui-fx/internal/fx"
	"github.com/vovakirdan/tui-fx/internal/registry"
)

// Preset IDs.
const (
	FireID      = "fire"
	FadeInID    = "fade-in"
	BlinkID     = "blink"
	SweepID     = "sweep"
	SpotlightID = "spotlight"
)

// preset adapts a build function to registry.Preset.
type preset struct {
	id    string
	title string
	build func(cfg config.Config, area core.Rect) fx.Effect
}

func (p preset) ID() string    { return p.id }
func (p preset) Title() string { return p.title }

func (p preset) Build(cfg config.Config, area core.Rect) fx.Effect {
	return p.build(cfg, area)
}

func register(id, title string, build func(config.Config, core.Rect) fx.Effect) {
	registry.Register(id, func() registry.Preset {
		return preset{id: id, title: title, build: build}
	})
}

func init() {
	register(FireID, "Fire", Fire)
	register(FadeInID, "Fade In", FadeIn)
	register(BlinkID, "Blink", Blink)
	register(SweepID, "Sweep", Sweep)
	register(SpotlightID, "Spotlight", Spotlight)
}

// FadeIn fades the text in from the screen background.
func FadeIn(cfg config.Config, _ core.Rect) fx.Effect {
	colors := cfg.Palette.Colors()
	return fx.FadeFromFg(colors.ScreenBg, cfg.FadeIn.Timer()).WithFilter(fx.Text())
}

// Blink flashes the text to the accent color and back, Times times.
func Blink(cfg config.Config, _ core.Rect) fx.Effect {
	accent := cfg.Palette.Colors().Accent
	times := max(cfg.Blink.Times, 1)

	steps := make([]fx.Effect, 0, 2*times)
	for range times {
		steps = append(steps,
			fx.FadeToFg(accent, cfg.Blink.Half.Timer()),
			fx.FadeFromFg(accent, cfg.Blink.Half.Timer()),
		)
	}
	return fx.NewSequence(steps...).WithFilter(fx.Text())
}
