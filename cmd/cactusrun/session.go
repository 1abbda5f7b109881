package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cactus-run/internal/assets"
	"github.com/vovakirdan/cactus-run/internal/audio"
	"github.com/vovakirdan/cactus-run/internal/config"
	"github.com/vovakirdan/cactus-run/internal/runner"
)

// defaultLogFile is used by the terminal frontend, whose alt screen owns stdout.
const defaultLogFile = "~/.cactusrun/cactusrun.log"

// session bundles what both frontends need before the first frame.
type session struct {
	cfg    config.RunnerConfig
	logger *log.Logger
	audio  runner.AudioSink
	loader *assets.Loader

	closers []func()
}

// loadConfig resolves the effective configuration from the global flags.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return cfg, err
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newSession loads the config, opens the log, starts asset loading and opens the
// audio device. fallbackLog is used when --log-file is empty.
func newSession(ctx context.Context, fallbackLog io.Writer) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}

	out := fallbackLog
	if flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { f.Close() })
		out = f
	}
	s.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "cactusrun",
	})

	s.loader = assets.NewLoader(assets.Embedded(), cfg.Assets.Missing, s.logger)
	s.loader.Start(ctx, assets.DefaultManifest())

	s.audio = s.openAudio()
	return s, nil
}

// openAudio returns the speaker sink, or a silent one when muted or when the
// device cannot be opened.
func (s *session) openAudio() runner.AudioSink {
	if flagMute || !s.cfg.Audio.Enabled {
		return audio.Nop{}
	}
	sp := audio.NewSpeaker(s.cfg.Audio)
	if err := sp.Initialize(); err != nil {
		s.logger.Warn("audio unavailable, continuing muted", "error", err)
		return audio.Nop{}
	}
	s.closers = append(s.closers, sp.Close)
	return sp
}

// Close releases the audio device and the log file, newest first.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
