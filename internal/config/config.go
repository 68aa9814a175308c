// Package config provides YAML-based configuration for the effects demo:
// frame pacing, palette, preset timings and key bindings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-fx/internal/core"
	"github.com/vovakirdan/tui-fx/internal/fx"
)

// Config contains all configuration for fxdemo.
type Config struct {
	Frame    FrameConfig       `yaml:"frame"`
	Palette  PaletteConfig     `yaml:"palette"`
	Content  RectConfig        `yaml:"content"`
	Fire     FireConfig        `yaml:"fire"`
	FadeIn   TimingConfig      `yaml:"fade_in"`
	Blink    BlinkConfig       `yaml:"blink"`
	Sweep    SweepConfig       `yaml:"sweep"`
	Bindings map[string]string `yaml:"bindings"` // key -> preset id
}

// FrameConfig defines frame pacing.
type FrameConfig struct {
	FPS          int `yaml:"fps"`
	FixedDeltaMs int `yaml:"fixed_delta_ms"` // 0 = measure wall time between ticks
}

// PaletteConfig holds the demo colors as "#rrggbb" strings.
type PaletteConfig struct {
	ScreenBg  string `yaml:"screen_bg"`
	ContentBg string `yaml:"content_bg"`
	Text      string `yaml:"text"`
	Accent    string `yaml:"accent"`
}

// RectConfig is a screen rectangle in cells.
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// TimingConfig is a duration plus an easing curve name.
type TimingConfig struct {
	Ms    int    `yaml:"ms"`
	Curve string `yaml:"curve"`
}

// FireConfig defines the fire preset: a silent delay, a boot fade, then a
// short full-area fade in parallel with a slower text-only fade.
type FireConfig struct {
	DelayMs int          `yaml:"delay_ms"`
	Boot    TimingConfig `yaml:"boot"`
	Flash   TimingConfig `yaml:"flash"`
	Main    TimingConfig `yaml:"main"`
}

// BlinkConfig defines the blink preset.
type BlinkConfig struct {
	Times int          `yaml:"times"`
	Half  TimingConfig `yaml:"half"` // one direction of a blink
}

// SweepConfig defines the column sweep preset.
type SweepConfig struct {
	BandWidth int          `yaml:"band_width"`
	StaggerMs int          `yaml:"stagger_ms"`
	Band      TimingConfig `yaml:"band"`
}

// Rect converts the config to a core.Rect.
func (r RectConfig) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Duration returns the configured length.
func (t TimingConfig) Duration() time.Duration {
	return time.Duration(t.Ms) * time.Millisecond
}

// Interpolation parses the curve name. An empty name means Linear.
func (t TimingConfig) Interpolation() (fx.Interpolation, error) {
	if t.Curve == "" {
		return fx.Linear, nil
	}
	return fx.ParseInterpolation(t.Curve)
}

// Timer builds an fx.Timer. Unknown curve names fall back to Linear;
// Validate reports them.
func (t TimingConfig) Timer() fx.Timer {
	curve, err := t.Interpolation()
	if err != nil {
		curve = fx.Linear
	}
	return fx.NewTimer(t.Duration(), curve)
}

// FixedDelta returns the per-frame effect delta, or 0 for wall time.
func (f FrameConfig) FixedDelta() time.Duration {
	return time.Duration(f.FixedDeltaMs) * time.Millisecond
}

// Colors is a parsed palette.
type Colors struct {
	ScreenBg  core.Color
	ContentBg core.Color
	Text      core.Color
	Accent    core.Color
}

// Colors parses the palette. Unparseable entries fall back to the defaults.
func (p PaletteConfig) Colors() Colors {
	def := DefaultConfig().Palette
	return Colors{
		ScreenBg:  parseOr(p.ScreenBg, def.ScreenBg),
		ContentBg: parseOr(p.ContentBg, def.ContentBg),
		Text:      parseOr(p.Text, def.Text),
		Accent:    parseOr(p.Accent, def.Accent),
	}
}

// PanelStyle is the pen the counter panel draws with.
func (c Colors) PanelStyle() core.Style {
	return core.NewStyle(c.Text, c.ContentBg)
}

func parseOr(s, fallback string) core.Color {
	if c, err := core.ParseColor(s); err == nil {
		return c
	}
	c, _ := core.ParseColor(fallback)
	return c
}

// Runtime returns the frame settings as a core.RuntimeConfig for a screen
// of the given size.
func (c Config) Runtime(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    w,
		ScreenH:    h,
		TickRate:   c.Frame.FPS,
		FixedDelta: c.Frame.FixedDelta(),
	}
}

// Validate reports every invalid value in the config.
func (c Config) Validate() error {
	var errs []error

	if c.Frame.FPS <= 0 || c.Frame.FPS > 240 {
		errs = append(errs, fmt.Errorf("frame.fps must be in 1..240, got %d", c.Frame.FPS))
	}
	if c.Frame.FixedDeltaMs < 0 {
		errs = append(errs, fmt.Errorf("frame.fixed_delta_ms must not be negative, got %d", c.Frame.FixedDeltaMs))
	}

	colors := []struct{ name, value string }{
		{"palette.screen_bg", c.Palette.ScreenBg},
		{"palette.content_bg", c.Palette.ContentBg},
		{"palette.text", c.Palette.Text},
		{"palette.accent", c.Palette.Accent},
	}
	for _, pc := range colors {
		if _, err := core.ParseColor(pc.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", pc.name, err))
		}
	}

	timings := []struct {
		name string
		t    TimingConfig
	}{
		{"fire.boot", c.Fire.Boot},
		{"fire.flash", c.Fire.Flash},
		{"fire.main", c.Fire.Main},
		{"fade_in", c.FadeIn},
		{"blink.half", c.Blink.Half},
		{"sweep.band", c.Sweep.Band},
	}
	for _, tc := range timings {
		if tc.t.Ms < 0 {
			errs = append(errs, fmt.Errorf("%s.ms must not be negative, got %d", tc.name, tc.t.Ms))
		}
		if _, err := tc.t.Interpolation(); err != nil {
			errs = append(errs, fmt.Errorf("%s.curve: %w", tc.name, err))
		}
	}

	if c.Fire.DelayMs < 0 {
		errs = append(errs, fmt.Errorf("fire.delay_ms must not be negative, got %d", c.Fire.DelayMs))
	}
	if c.Blink.Times < 1 {
		errs = append(errs, fmt.Errorf("blink.times must be at least 1, got %d", c.Blink.Times))
	}
	if c.Sweep.BandWidth < 1 {
		errs = append(errs, fmt.Errorf("sweep.band_width must be at least 1, got %d", c.Sweep.BandWidth))
	}
	if c.Sweep.StaggerMs < 0 {
		errs = append(errs, fmt.Errorf("sweep.stagger_ms must not be negative, got %d", c.Sweep.StaggerMs))
	}

	for key, id := range c.Bindings {
		if key == "" || id == "" {
			errs = append(errs, fmt.Errorf("bindings: empty key or preset in %q: %q", key, id))
		}
	}

	return errors.Join(errs...)
}
