package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fx/internal/platform/tui"
	"github.com/vovakirdan/tui-fx/internal/registry"
)

var (
	flagAt     time.Duration
	flagStep   time.Duration
	flagWidth  int
	flagHeight int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <preset>",
	Short: "Print one frame of a preset",
	Long: `Run a preset against the counter panel off-screen and print the grid
as it looks after --at of effect time, stepped in --step frames.

Examples:
  fxdemo snapshot fire --at 450ms
  fxdemo snapshot sweep --width 60 --height 12 --at 1s
  fxdemo snapshot fade-in --at 200ms --step 8ms`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().DurationVar(&flagAt, "at", 500*time.Millisecond, "Effect time to render")
	snapshotCmd.Flags().DurationVar(&flagStep, "step", 16*time.Millisecond, "Frame delta")
	snapshotCmd.Flags().IntVar(&flagWidth, "width", 80, "Grid width")
	snapshotCmd.Flags().IntVar(&flagHeight, "height", 24, "Grid height")
}

func runSnapshot(_ *cobra.Command, args []string) error {
	presetID := args[0]
	if !registry.Exists(presetID) {
		fmt.Fprintln(os.Stderr, "Run 'fxdemo list' to see available presets.")
		return fmt.Errorf("unknown preset %q", presetID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	res, err := tui.Snapshot(cfg, presetID, flagWidth, flagHeight, flagAt, flagStep)
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderScreen(res.Screen))
	state := "running"
	if res.Done {
		state = "done"
	}
	fmt.Printf("%s at %v: %d frames, %s\n", presetID, flagAt, res.Frames, state)
	return nil
}
