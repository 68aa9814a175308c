package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fx/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all effect presets",
	Long:  `Shows every registered preset and the key it is bound to.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	presets := registry.List()
	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return nil
	}

	keys := make(map[string][]string)
	for k, id := range cfg.Bindings {
		keys[id] = append(keys[id], k)
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Keys")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "----")

	for _, p := range presets {
		bound := keys[p.ID]
		sort.Strings(bound)
		fmt.Printf("  %-*s  %-12s  %v\n", maxIDLen, p.ID, p.Title, bound)
	}

	fmt.Println()
	fmt.Println("Run 'fxdemo snapshot <id>' to preview a preset.")
	return nil
}
