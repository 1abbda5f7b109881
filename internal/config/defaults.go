package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in classic configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:        1127,
			Height:       606,
			GroundHeight: 50,
			GroundColor:  "pink",
		},
		Physics: PhysicsConfig{
			Gravity:      1.0,
			JumpStrength: 19,
			ScrollSpeed:  20,
		},
		Player: PlayerConfig{
			X:      50,
			Y:      516, // Spawns slightly below the ground line and lands on the first frame
			Width:  100,
			Height: 100,
			Margin: 15,
		},
		Obstacles: ObstacleConfig{
			MinWidth:  140,
			MaxWidth:  140,
			MinHeight: 140,
			MaxHeight: 140,
			Margin:    20,
		},
		Spawner: SpawnerConfig{
			Policy:   SpawnByTime,
			Interval: 800 * time.Millisecond,
			Gap:      200,
			MinGap:   200,
		},
		Clouds: CloudConfig{
			Speed: 50,
		},
		Audio: AudioConfig{
			Enabled:       true,
			AmbientVolume: 0.9,
			FailVolume:    0.9,
		},
		Input: InputConfig{
			Hold: 150 * time.Millisecond,
		},
		Assets: AssetConfig{
			Missing: MissingPlaceholder,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
