package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cactus-run/internal/core"
	"github.com/vovakirdan/cactus-run/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a resizable desktop window.

Controls:
  Enter/Space   - Start
  Space/Up/W    - Jump (hold to jump again on landing)
  R/Enter       - Retry (after game over)
  Esc/Q         - Quit

Logs go to stderr unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	s, err := newSession(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	return gui.Run(s.cfg, gui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  int(s.cfg.Screen.Width),
			ScreenH:  int(s.cfg.Screen.Height),
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Loader: s.loader,
		Audio:  s.audio,
		Logger: s.logger,
	})
}
