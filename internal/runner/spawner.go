package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cactus-run/internal/config"
)

// Spawner owns the obstacle queue. Obstacles enter at the right edge in creation
// order and leave from the front in the same order.
type Spawner struct {
	cfg        config.SpawnerConfig
	obstacles  config.ObstacleConfig
	screenW    float64
	groundLine float64
	speed      float64

	queue      []Obstacle
	rng        *rand.Rand
	sinceSpawn time.Duration // Simulated time since the last spawn
	nextID     int
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(cfg config.RunnerConfig, seed int64) *Spawner {
	s := &Spawner{
		cfg:        cfg.Spawner,
		obstacles:  cfg.Obstacles,
		screenW:    cfg.Screen.Width,
		groundLine: cfg.Screen.GroundLine(),
		speed:      cfg.Physics.ScrollSpeed,
		queue:      make([]Obstacle, 0, 8),
	}
	s.Reset(seed)
	return s
}

// Reset empties the queue and reseeds the RNG. The first Update after a reset
// spawns immediately under either policy.
func (s *Spawner) Reset(seed int64) {
	s.queue = s.queue[:0]
	s.rng = rand.New(rand.NewSource(seed))
	s.sinceSpawn = s.cfg.Interval
	s.nextID = 0
}

// Update scrolls the queue, spawns at most one obstacle and dequeues every
// obstacle at the front that has fully left the screen.
// Returns the number of obstacles removed this frame.
func (s *Spawner) Update(dt time.Duration) int {
	scroll(s.queue, s.speed)

	s.sinceSpawn += dt
	if s.shouldSpawn() {
		s.spawn()
		s.sinceSpawn = 0
	}

	removed := 0
	for len(s.queue) > 0 && s.queue[0].OffScreen() {
		s.queue = s.queue[1:]
		removed++
	}
	return removed
}

// shouldSpawn applies the configured policy plus the minimum gap.
func (s *Spawner) shouldSpawn() bool {
	if len(s.queue) == 0 {
		return s.cfg.Policy == config.SpawnByDistance || s.sinceSpawn > s.cfg.Interval
	}

	free := s.screenW - s.newest().Rect().Right()
	if free < s.cfg.MinGap {
		return false
	}

	switch s.cfg.Policy {
	case config.SpawnByDistance:
		return free >= s.cfg.Gap
	default:
		return s.sinceSpawn > s.cfg.Interval
	}
}

// spawn appends a new obstacle at the right edge, standing on the ground.
func (s *Spawner) spawn() {
	w := s.randomSize(s.obstacles.MinWidth, s.obstacles.MaxWidth)
	h := s.randomSize(s.obstacles.MinHeight, s.obstacles.MaxHeight)

	s.queue = append(s.queue, Obstacle{
		ID:     s.nextID,
		X:      s.screenW,
		Y:      s.groundLine - h,
		Width:  w,
		Height: h,
		Margin: s.obstacles.Margin,
	})
	s.nextID++
}

// randomSize draws a uniform integer in [min, max].
func (s *Spawner) randomSize(min, max int) float64 {
	if max <= min {
		return float64(min)
	}
	return float64(min + s.rng.Intn(max-min+1))
}

// newest returns the most recently spawned obstacle still in the queue.
func (s *Spawner) newest() Obstacle {
	return s.queue[len(s.queue)-1]
}

// Obstacles returns the live queue, front first. Callers must not modify it.
func (s *Spawner) Obstacles() []Obstacle {
	return s.queue
}

// Spawned returns how many obstacles were created since the last reset.
func (s *Spawner) Spawned() int {
	return s.nextID
}
