// fxdemo is a terminal demo for the tui-fx effects engine.
//
// Usage:
//
//	fxdemo                      - Run the interactive counter demo
//	fxdemo list                 - List available effect presets
//	fxdemo snapshot <preset>    - Print one frame of a preset
//	fxdemo history [preset]     - Browse recorded effect runs
//	fxdemo serve                - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>       - Override the configured tick rate
//	--db <path>        - Set database path (default: ~/.tui-fx/fxdemo.db)
//	--config <path>    - Load a custom fxdemo.yaml
//	--log-file <path>  - Write structured logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fx/internal/config"
	"github.com/vovakirdan/tui-fx/internal/storage"

	// Import presets to register them
	_ "github.com/vovakirdan/tui-fx/internal/presets"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fxdemo",
	Short: "tui-fx - Color effects for terminal grids",
	Long: `fxdemo drives the tui-fx effects engine over a small counter panel.

Available commands:
  run       - Interactive demo (default)
  list      - Show all effect presets
  snapshot  - Render one frame of a preset without a terminal
  history   - View recorded effect runs
  serve     - Start SSH server for remote sessions

Examples:
  fxdemo
  fxdemo run --fps 30
  fxdemo snapshot fire --at 450ms
  fxdemo history sweep --plain
  fxdemo serve --ssh :2222`,
	RunE: runDemo,
	// main prints the returned error once
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom fxdemo.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads fxdemo.yaml and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Frame.FPS = flagFPS
	}
	return cfg, cfg.Validate()
}

// newLogger returns a logger writing to --log-file, or a silent one.
// The terminal belongs to the demo, so nothing is logged to stderr.
func newLogger() (*log.Logger, func() error, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "fxdemo",
	})
	return logger, f.Close, nil
}
