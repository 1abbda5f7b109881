// Package runner implements the Cactus Run simulation: a player that jumps over
// cacti scrolling in from the right until a collision ends the run.
// It holds pure game logic; platforms supply time, input, a drawing surface and
// audio through small interfaces.
package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/cactus-run/internal/assets"
	"github.com/vovakirdan/cactus-run/internal/config"
	"github.com/vovakirdan/cactus-run/internal/core"
)

// Input is the per-frame snapshot of the player's controls.
type Input struct {
	Jump bool // Jump button currently held
}

// InputFromFrame samples the actions the simulation cares about.
func InputFromFrame(f core.InputFrame) Input {
	return Input{Jump: f.Has(core.ActionJump)}
}

// Player is the controllable character.
type Player struct {
	X, Y          float64
	Width, Height float64
	DY            float64 // Vertical velocity, negative is up
	Gravity       float64
	JumpStrength  float64
	Grounded      bool
	Margin        float64
}

// NewPlayer creates the player in its initial airborne state.
func NewPlayer(cfg config.RunnerConfig) Player {
	return Player{
		X:            cfg.Player.X,
		Y:            cfg.Player.Y,
		Width:        cfg.Player.Width,
		Height:       cfg.Player.Height,
		Gravity:      cfg.Physics.Gravity,
		JumpStrength: cfg.Physics.JumpStrength,
		Margin:       cfg.Player.Margin,
	}
}

// Rect returns the drawn bounds.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Hitbox returns the bounds shrunk by the collision margin.
func (p Player) Hitbox() core.Rect {
	return p.Rect().Inset(p.Margin)
}

// Obstacle is a cactus scrolling towards the player.
type Obstacle struct {
	ID            int // Creation sequence number within a run
	X, Y          float64
	Width, Height float64
	Margin        float64
}

// Rect returns the drawn bounds.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Hitbox returns the bounds shrunk by the collision margin.
func (o Obstacle) Hitbox() core.Rect {
	return o.Rect().Inset(o.Margin)
}

// OffScreen reports whether the obstacle has fully left past the left edge.
func (o Obstacle) OffScreen() bool {
	return o.X+o.Width < 0
}

// ScrollingLayer is a horizontally tiled decoration drifting at a constant speed.
// It never affects the outcome of a run.
type ScrollingLayer struct {
	Sprite  assets.ID
	Speed   float64 // Pixels per second
	Elapsed time.Duration
}

// Advance moves the layer by wall-clock time.
func (l *ScrollingLayer) Advance(dt time.Duration) {
	l.Elapsed += dt
}

// Offset returns the leftward shift of the first tile, wrapped to the tile width.
func (l ScrollingLayer) Offset(tileWidth float64) float64 {
	if tileWidth <= 0 {
		return 0
	}
	return math.Mod(l.Elapsed.Seconds()*l.Speed, tileWidth)
}

// Repeat returns how many tiles cover screenWidth at any offset.
func (l ScrollingLayer) Repeat(tileWidth, screenWidth float64) int {
	if tileWidth <= 0 {
		return 0
	}
	return int(math.Ceil(screenWidth/tileWidth)) + 1
}
