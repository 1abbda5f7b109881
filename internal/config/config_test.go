package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML and DefaultRunnerConfig differ:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(DefaultRunnerConfig()); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestGroundLine(t *testing.T) {
	s := DefaultRunnerConfig().Screen
	if s.GroundLine() != 556 {
		t.Errorf("GroundLine() = %v, expected 556", s.GroundLine())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 2.5\nspawner:\n  interval: 1.5s\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Physics.Gravity != 2.5 {
		t.Errorf("gravity = %v, expected 2.5", cfg.Physics.Gravity)
	}
	if cfg.Spawner.Interval != 1500*time.Millisecond {
		t.Errorf("interval = %v, expected 1.5s", cfg.Spawner.Interval)
	}
	// Keys not mentioned keep their defaults
	if cfg.Physics.JumpStrength != 19 || cfg.Screen.Width != 1127 {
		t.Errorf("unmentioned keys lost defaults: %+v", cfg.Physics)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  scroll_speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Physics.ScrollSpeed != 7 {
		t.Errorf("scroll_speed = %v, expected 7", cfg.Physics.ScrollSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("malformed explicit config should fail to parse, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "interval: 800ms") {
		t.Errorf("durations should encode as strings:\n%s", data)
	}
	back, err := Parse(data)
	if err != nil || back != DefaultRunnerConfig() {
		t.Errorf("round trip changed the config: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		want   string
	}{
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }, "gravity"},
		{"no scroll", func(c *RunnerConfig) { c.Physics.ScrollSpeed = 0 }, "scroll_speed"},
		{"inverted width range", func(c *RunnerConfig) { c.Obstacles.MinWidth = 200 }, "min_width"},
		{"huge margin", func(c *RunnerConfig) { c.Player.Margin = 60 }, "player: margin"},
		{"unknown policy", func(c *RunnerConfig) { c.Spawner.Policy = "random" }, "unknown policy"},
		{"no interval", func(c *RunnerConfig) { c.Spawner.Interval = 0 }, "interval"},
		{"bad color", func(c *RunnerConfig) { c.Screen.GroundColor = "mauve" }, "ground_color"},
		{"loud", func(c *RunnerConfig) { c.Audio.FailVolume = 2 }, "fail_volume"},
		{"bad asset policy", func(c *RunnerConfig) { c.Assets.Missing = "ignore" }, "missing policy"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if err := ApplyPreset(&cfg, PresetRandom); err != nil {
		t.Fatalf("ApplyPreset(random) failed: %v", err)
	}
	if cfg.Spawner.Policy != SpawnByDistance {
		t.Errorf("random preset should spawn by distance, got %q", cfg.Spawner.Policy)
	}
	if cfg.Player.Margin != 0 || cfg.Obstacles.Margin != 0 {
		t.Error("random preset should use exact hitboxes")
	}
	if cfg.Obstacles.MinWidth == cfg.Obstacles.MaxWidth {
		t.Error("random preset should randomize obstacle width")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("random preset should be valid: %v", err)
	}

	// Classic restores the defaults
	if err := ApplyPreset(&cfg, PresetClassic); err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Error("classic preset should restore the default constants")
	}

	if err := ApplyPreset(&cfg, "chaos"); err == nil {
		t.Error("unknown preset should fail")
	}
	if err := ApplyPreset(&cfg, ""); err != nil {
		t.Errorf("empty preset should be a no-op, got %v", err)
	}
}
