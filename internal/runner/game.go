package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cactus-run/internal/assets"
	"github.com/vovakirdan/cactus-run/internal/config"
	"github.com/vovakirdan/cactus-run/internal/core"
)

// RunState is the controller's state machine position.
type RunState int

const (
	Idle     RunState = iota // Title screen, nothing simulated
	Running                  // Frame driver active
	GameOver                 // Frame driver halted, waiting for retry
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// AudioSink receives the run's sound cues.
type AudioSink interface {
	PlayAmbient()  // Start the looping track from the beginning
	PauseAmbient() // Pause the looping track
	PlayFail()     // Play the one-shot collision cue
}

// Reporter is the UI collaborator told about the end of a run.
type Reporter interface {
	GameOver(score int)
}

// Option configures a Game.
type Option func(*Game)

// WithAudio sets the audio sink.
func WithAudio(a AudioSink) Option {
	return func(g *Game) { g.audio = a }
}

// WithReporter sets the game-over reporter.
func WithReporter(r Reporter) Option {
	return func(g *Game) { g.reporter = r }
}

// WithLogger sets the logger for run lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

type silentAudio struct{}

func (silentAudio) PlayAmbient()  {}
func (silentAudio) PauseAmbient() {}
func (silentAudio) PlayFail()     {}

type silentReporter struct{}

func (silentReporter) GameOver(int) {}

// Game is the state controller. It exclusively owns the player, the obstacle
// queue and the score, and replaces them on retry.
type Game struct {
	cfg  config.RunnerConfig
	seed int64

	state   RunState
	player  Player
	spawner *Spawner
	clouds  ScrollingLayer
	score   int
	frames  int // Frames simulated in the current run
	runs    int // Runs started, including the current one

	groundLine  float64
	groundColor core.Color

	clock    core.FrameClock
	audio    AudioSink
	reporter Reporter
	logger   *log.Logger
}

// New creates a game in the Idle state. cfg is expected to pass config.Validate.
func New(cfg config.RunnerConfig, seed int64, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		seed:       seed,
		groundLine: cfg.Screen.GroundLine(),
		audio:      silentAudio{},
		reporter:   silentReporter{},
		logger:     log.New(io.Discard),
	}
	g.groundColor, _ = core.ParseColor(cfg.Screen.GroundColor)
	for _, opt := range opts {
		opt(g)
	}
	g.spawner = NewSpawner(cfg, seed)
	g.reset()
	return g
}

// reset restores every per-run value to its initial state.
func (g *Game) reset() {
	g.player = NewPlayer(g.cfg)
	g.spawner.Reset(g.seed + int64(g.runs))
	g.clouds = ScrollingLayer{Sprite: assets.Clouds, Speed: g.cfg.Clouds.Speed}
	g.score = 0
	g.frames = 0
}

// Start leaves the title screen and arms the frame clock.
// It returns false, doing nothing, unless the game is Idle.
func (g *Game) Start(now time.Time) bool {
	if g.state != Idle {
		return false
	}
	g.begin(now)
	return true
}

// Retry begins a fresh run after a game over.
// It returns false, doing nothing, unless the game is over.
func (g *Game) Retry(now time.Time) bool {
	if g.state != GameOver {
		return false
	}
	g.reset()
	g.begin(now)
	return true
}

// begin enters Running with ambient audio and an armed clock.
func (g *Game) begin(now time.Time) {
	g.runs++
	g.state = Running
	g.audio.PlayAmbient()
	g.clock.Start(now)
	g.logger.Info("run started", "run", g.runs)
}

// Frame is the frame driver callback. It measures the time since the previous
// frame, steps the simulation and reports whether another frame should be
// scheduled.
func (g *Game) Frame(now time.Time, in Input) bool {
	dt, ok := g.clock.Tick(now)
	if !ok {
		return false
	}
	g.Step(in, dt)
	return g.clock.Running()
}

// Step advances a Running game by one frame. Obstacles and the player move by
// per-frame constants; only the cloud layer uses dt.
func (g *Game) Step(in Input, dt time.Duration) {
	if g.state != Running {
		return
	}
	g.frames++
	g.clouds.Advance(dt)

	g.player.Update(in, g.groundLine)
	g.score += g.spawner.Update(dt)

	if _, hit := firstHit(g.player, g.spawner.Obstacles()); hit {
		g.end()
	}
}

// end enters GameOver. It runs once per run since Step stops simulating afterwards.
func (g *Game) end() {
	g.clock.Stop()
	g.state = GameOver
	g.audio.PlayFail()
	g.audio.PauseAmbient()
	g.logger.Info("game over", "run", g.runs, "score", g.score, "frames", g.frames)
	g.reporter.GameOver(g.score)
}

// State returns the current run state.
func (g *Game) State() RunState {
	return g.state
}

// Score returns the number of obstacles cleared this run.
func (g *Game) Score() int {
	return g.score
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns the live obstacles, oldest first. Callers must not modify it.
func (g *Game) Obstacles() []Obstacle {
	return g.spawner.Obstacles()
}

// Running reports whether the frame driver should keep scheduling frames.
func (g *Game) Running() bool {
	return g.clock.Running()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}
