package config

import (
	_ "embed"
)

//go:embed defaults/fxdemo.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/fxdemo.yaml and is used when even that fails to parse.
func DefaultConfig() Config {
	return Config{
		Frame: FrameConfig{
			FPS:          60,
			FixedDeltaMs: 16,
		},
		Palette: PaletteConfig{
			ScreenBg:  "#1d2021",
			ContentBg: "#32302f",
			Text:      "#ebdbb2",
			Accent:    "#fe8019",
		},
		Content: RectConfig{X: 12, Y: 7, W: 56, H: 10},
		Fire: FireConfig{
			DelayMs: 300,
			Boot:    TimingConfig{Ms: 300, Curve: "circ_in"},
			Flash:   TimingConfig{Ms: 300, Curve: "linear"},
			Main:    TimingConfig{Ms: 900, Curve: "quad_in"},
		},
		FadeIn: TimingConfig{Ms: 600, Curve: "quad_out"},
		Blink: BlinkConfig{
			Times: 3,
			Half:  TimingConfig{Ms: 120, Curve: "sine_in_out"},
		},
		Sweep: SweepConfig{
			BandWidth: 4,
			StaggerMs: 40,
			Band:      TimingConfig{Ms: 350, Curve: "cubic_out"},
		},
		Bindings: map[string]string{
			"f": "fire",
			"i": "fade-in",
			"b": "blink",
			"s": "sweep",
			"p": "spotlight",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
