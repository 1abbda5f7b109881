package config

import (
	"fmt"
	"time"
)

// Preset names a bundle of constants applied over a loaded config.
type Preset string

const (
	// PresetClassic keeps the fixed-size, time-gated layout with forgiving hitboxes.
	PresetClassic Preset = "classic"
	// PresetRandom uses distance-gated spawning, random obstacle sizes and exact hitboxes.
	PresetRandom Preset = "random"
)

// PresetInfo describes a preset for listings.
type PresetInfo struct {
	Name        Preset
	Description string
}

// Presets returns all known presets in display order.
func Presets() []PresetInfo {
	return []PresetInfo{
		{PresetClassic, "Time-gated spawns every 800ms, fixed 140x140 cacti, hitbox margins 15/20"},
		{PresetRandom, "Distance-gated spawns 520px apart, random cactus sizes, exact hitboxes"},
	}
}

// ApplyPreset modifies the config based on a preset. An empty preset leaves the
// config untouched.
func ApplyPreset(cfg *RunnerConfig, preset Preset) error {
	switch preset {
	case "":
		return nil
	case PresetClassic:
		d := DefaultRunnerConfig()
		cfg.Physics = d.Physics
		cfg.Player = d.Player
		cfg.Obstacles = d.Obstacles
		cfg.Spawner = d.Spawner
	case PresetRandom:
		cfg.Physics = PhysicsConfig{
			Gravity:      0.8,
			JumpStrength: 17,
			ScrollSpeed:  15,
		}
		cfg.Player.Margin = 0
		cfg.Obstacles = ObstacleConfig{
			MinWidth:  60,
			MaxWidth:  120,
			MinHeight: 80,
			MaxHeight: 150,
			Margin:    0,
		}
		cfg.Spawner = SpawnerConfig{
			Policy:   SpawnByDistance,
			Interval: 800 * time.Millisecond,
			Gap:      520,
			MinGap:   400,
		}
	default:
		return fmt.Errorf("unknown preset %q", preset)
	}
	return nil
}
