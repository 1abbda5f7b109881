package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cactus-run/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a run would use, after the search order and
--preset have been applied. The output is valid input for --config.

Search order:
  --config path
  ~/.cactusrun/configs/runner.yaml
  ./configs/runner.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
