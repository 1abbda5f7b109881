// cactusrun is a side-scrolling jump-over-the-cactus game for the terminal and
// a desktop window.
//
// Usage:
//
//	cactusrun play           - Play in the terminal
//	cactusrun window         - Play in a desktop window
//	cactusrun presets        - List built-in presets
//	cactusrun config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacle sizes
//	--config <path>     - Load configuration from a YAML file
//	--preset <name>     - Apply a preset over the configuration
//	--log-file <path>   - Write logs to a file
//	--mute              - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagPreset  string
	flagLogFile string
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cactusrun",
	Short: "Cactus Run - jump over cacti for as long as you can",
	Long: `Cactus Run is a side-scrolling reflex game. Cacti scroll in from the
right; jump over them to score a point each time one leaves the screen.
A single collision ends the run.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  presets  - List built-in presets
  config   - Print the effective configuration

Examples:
  cactusrun play
  cactusrun play --preset random --seed 42
  cactusrun window --mute
  cactusrun config --preset random > configs/runner.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset applied over the config: classic, random")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (play defaults to ~/.cactusrun/cactusrun.log)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}
