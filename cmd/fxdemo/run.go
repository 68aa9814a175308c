package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fx/internal/platform/tui"
	"github.com/vovakirdan/tui-fx/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive demo",
	Long: `Start the counter demo in the current terminal.

Controls:
  Left/Right/h/l  - Decrement/Increment the counter
  f/i/b/s/p       - Fire, fade-in, blink, sweep, spotlight (see bindings in fxdemo.yaml)
  x               - Cancel newest effect
  c               - Clear all effects
  Ctrl+S          - Save a text screenshot
  ?               - Toggle help
  Q/Ctrl+C        - Quit

Examples:
  fxdemo run
  fxdemo run --fps 30
  fxdemo run --config ./my-fxdemo.yaml --log-file fx.log`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := []tui.Option{tui.WithLogger(logger)}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the demo still works
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
	} else {
		defer store.Close()
		opts = append(opts, tui.WithStore(store))
	}

	logger.Info("demo starting", "width", width, "height", height, "fps", cfg.Frame.FPS)
	return tui.Run(cfg, width, height, opts...)
}
