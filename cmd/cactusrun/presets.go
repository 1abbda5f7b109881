package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cactus-run/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in presets",
	Long:  `Shows the presets accepted by --preset.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) {
	presets := config.Presets()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, p := range presets {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, p.Name, p.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'cactusrun play --preset <name>' to use one.")
}
