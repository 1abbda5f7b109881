package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cactus-run/internal/core"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "runner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.cactusrun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Only an explicit customPath can produce an error; implicit locations that fail to
// read or parse are skipped.
func Load(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they mention.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cactusrun", "configs", filename)
}

// Validate reports every constraint the config violates.
func Validate(cfg RunnerConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	s := cfg.Screen
	check(s.Width > 0 && s.Height > 0, "screen: size must be positive, got %vx%v", s.Width, s.Height)
	check(s.GroundHeight >= 0 && s.GroundHeight < s.Height, "screen: ground_height %v must be within [0, height)", s.GroundHeight)
	_, known := core.ParseColor(s.GroundColor)
	check(known, "screen: unknown ground_color %q", s.GroundColor)

	p := cfg.Physics
	check(p.Gravity > 0, "physics: gravity must be positive, got %v", p.Gravity)
	check(p.JumpStrength > 0, "physics: jump_strength must be positive, got %v", p.JumpStrength)
	check(p.ScrollSpeed > 0, "physics: scroll_speed must be positive, got %v", p.ScrollSpeed)

	pl := cfg.Player
	check(pl.Width > 0 && pl.Height > 0, "player: size must be positive, got %vx%v", pl.Width, pl.Height)
	check(pl.Height <= s.GroundLine(), "player: height %v does not fit above the ground", pl.Height)
	check(pl.Margin >= 0 && 2*pl.Margin < pl.Width && 2*pl.Margin < pl.Height,
		"player: margin %v must be non-negative and smaller than half the size", pl.Margin)

	o := cfg.Obstacles
	check(o.MinWidth > 0 && o.MinHeight > 0, "obstacles: minimum size must be positive")
	check(o.MinWidth <= o.MaxWidth, "obstacles: min_width %d exceeds max_width %d", o.MinWidth, o.MaxWidth)
	check(o.MinHeight <= o.MaxHeight, "obstacles: min_height %d exceeds max_height %d", o.MinHeight, o.MaxHeight)
	check(float64(o.MaxHeight) <= s.GroundLine(), "obstacles: max_height %d does not fit above the ground", o.MaxHeight)
	check(o.Margin >= 0 && 2*o.Margin < float64(o.MinWidth) && 2*o.Margin < float64(o.MinHeight),
		"obstacles: margin %v must be non-negative and smaller than half the minimum size", o.Margin)

	sp := cfg.Spawner
	switch sp.Policy {
	case SpawnByTime:
		check(sp.Interval > 0, "spawner: interval must be positive for the time policy")
	case SpawnByDistance:
		check(sp.Gap > 0, "spawner: gap must be positive for the distance policy")
	default:
		errs = append(errs, fmt.Errorf("spawner: unknown policy %q", sp.Policy))
	}
	check(sp.MinGap >= 0, "spawner: min_gap must be non-negative, got %v", sp.MinGap)

	a := cfg.Audio
	check(a.AmbientVolume >= 0 && a.AmbientVolume <= 1, "audio: ambient_volume %v must be within [0, 1]", a.AmbientVolume)
	check(a.FailVolume >= 0 && a.FailVolume <= 1, "audio: fail_volume %v must be within [0, 1]", a.FailVolume)

	check(cfg.Input.Hold >= 0, "input: hold must be non-negative")

	switch cfg.Assets.Missing {
	case MissingPlaceholder, MissingBlock:
	default:
		errs = append(errs, fmt.Errorf("assets: unknown missing policy %q", cfg.Assets.Missing))
	}

	return errors.Join(errs...)
}
