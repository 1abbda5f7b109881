package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cactus-run/internal/core"
	"github.com/vovakirdan/cactus-run/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Enter/Space   - Start
  Space/Up/W    - Jump (hold to jump again on landing)
  R/Enter       - Retry (after game over)
  Q/Esc/Ctrl+C  - Quit

The scene keeps its aspect ratio and is centered in the terminal.
Logs go to ~/.cactusrun/cactusrun.log unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagLogFile == "" {
		flagLogFile = defaultLogFile
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	s, err := newSession(ctx, io.Discard)
	if err != nil {
		return err
	}
	defer s.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(s.cfg, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Loader: s.loader,
		Audio:  s.audio,
		Logger: s.logger,
	})
}
