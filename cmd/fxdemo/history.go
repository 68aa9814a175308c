package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fx/internal/platform/tui"
	"github.com/vovakirdan/tui-fx/internal/registry"
	"github.com/vovakirdan/tui-fx/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [preset]",
	Short: "Show recorded effect runs",
	Long: `Browse the effect run journal interactively, or print it with --plain.

Examples:
  fxdemo history
  fxdemo history fire
  fxdemo history --plain
  fxdemo history --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs and per-preset stats instead of the interactive view")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runHistory(_ *cobra.Command, args []string) error {
	presetID := ""
	if len(args) == 1 {
		presetID = args[0]
		if !registry.Exists(presetID) {
			return fmt.Errorf("unknown preset %q", presetID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open run journal: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run journal cleared.")
		return nil
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, presetID, width, height)
	}

	return printHistory(store, presetID)
}

func printHistory(store *storage.Store, presetID string) error {
	var runs []storage.RunEntry
	var err error
	if presetID == "" {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.RunsForPreset(presetID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("cannot read runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No effect runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'fxdemo' and trigger a preset to record one.")
		return nil
	}

	fmt.Printf("  %-10s  %-10s  %6s  %8s  %s\n", "Preset", "Outcome", "Frames", "Elapsed", "Date")
	fmt.Printf("  %-10s  %-10s  %6s  %8s  %s\n", "------", "-------", "------", "-------", "----")
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-10s  %-10s  %6s  %8s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}

	stats, err := store.PresetStats()
	if err != nil {
		return fmt.Errorf("cannot read stats: %w", err)
	}

	fmt.Println()
	fmt.Printf("  %-10s  %5s  %9s  %9s  %8s\n", "Preset", "Runs", "Completed", "Cancelled", "Average")
	fmt.Printf("  %-10s  %5s  %9s  %9s  %8s\n", "------", "----", "---------", "---------", "-------")
	for _, s := range stats {
		if presetID != "" && s.PresetID != presetID {
			continue
		}
		fmt.Printf("  %-10s  %5d  %9d  %9d  %6dms\n",
			s.PresetID, s.Runs, s.Completed, s.Cancelled, s.AvgElapsed.Milliseconds())
	}
	return nil
}
