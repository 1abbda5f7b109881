// Package config provides YAML-based game configuration loading, presets and
// validation for Cactus Run.
package config

import "time"

// RunnerConfig contains all tunable constants of a run.
// Sizes and positions are in logical pixels of the fixed-size screen.
type RunnerConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Spawner   SpawnerConfig  `yaml:"spawner"`
	Clouds    CloudConfig    `yaml:"clouds"`
	Audio     AudioConfig    `yaml:"audio"`
	Input     InputConfig    `yaml:"input"`
	Assets    AssetConfig    `yaml:"assets"`
}

// ScreenConfig defines the logical render target and the ground strip.
type ScreenConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
	GroundColor  string  `yaml:"ground_color"` // Palette name, see core.ParseColor
}

// GroundLine returns the y-coordinate of the top of the ground strip.
func (s ScreenConfig) GroundLine() float64 {
	return s.Height - s.GroundHeight
}

// PhysicsConfig defines per-frame motion constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Added to dy every frame
	JumpStrength float64 `yaml:"jump_strength"` // Upward impulse magnitude
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // Obstacle displacement per frame
}

// PlayerConfig defines the player's initial placement and hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // Inward hitbox shrink on every side
}

// ObstacleConfig defines obstacle sizing. Equal min and max give a fixed size.
type ObstacleConfig struct {
	MinWidth  int     `yaml:"min_width"`
	MaxWidth  int     `yaml:"max_width"`
	MinHeight int     `yaml:"min_height"`
	MaxHeight int     `yaml:"max_height"`
	Margin    float64 `yaml:"margin"`
}

// SpawnPolicy selects how the spawner decides when to emit an obstacle.
type SpawnPolicy string

const (
	SpawnByTime     SpawnPolicy = "time"     // Fixed interval of simulated time
	SpawnByDistance SpawnPolicy = "distance" // Newest obstacle scrolled a gap away from the edge
)

// SpawnerConfig defines the spawn gate.
type SpawnerConfig struct {
	Policy   SpawnPolicy   `yaml:"policy"`
	Interval time.Duration `yaml:"interval"` // Used by the time policy
	Gap      float64       `yaml:"gap"`      // Used by the distance policy
	MinGap   float64       `yaml:"min_gap"`  // Lower bound between neighbours, both policies
}

// CloudConfig defines the scrolling overlay.
type CloudConfig struct {
	Speed float64 `yaml:"speed"` // Pixels per second of wall-clock time
}

// AudioConfig defines the audio sink volumes.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	AmbientVolume float64 `yaml:"ambient_volume"` // 0.0 - 1.0
	FailVolume    float64 `yaml:"fail_volume"`    // 0.0 - 1.0
}

// InputConfig defines input adapter behavior.
type InputConfig struct {
	// Hold is how long a terminal key press keeps the jump button down.
	// Terminals deliver no key-up events; auto-repeat refreshes the hold.
	Hold time.Duration `yaml:"hold"`
}

// MissingAssetPolicy decides what happens when a sprite fails to load.
type MissingAssetPolicy string

const (
	MissingPlaceholder MissingAssetPolicy = "placeholder" // Draw a solid block instead
	MissingBlock       MissingAssetPolicy = "block"       // Refuse to start the run
)

// AssetConfig defines asset loading behavior.
type AssetConfig struct {
	Missing MissingAssetPolicy `yaml:"missing"`
}
