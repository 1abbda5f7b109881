package runner

import (
	"fmt"

	"github.com/vovakirdan/cactus-run/internal/assets"
	"github.com/vovakirdan/cactus-run/internal/config"
	"github.com/vovakirdan/cactus-run/internal/core"
)

// recordingAudio records cue calls in order.
type recordingAudio struct {
	calls []string
}

func (a *recordingAudio) PlayAmbient()  { a.calls = append(a.calls, "ambient") }
func (a *recordingAudio) PauseAmbient() { a.calls = append(a.calls, "pause") }
func (a *recordingAudio) PlayFail()     { a.calls = append(a.calls, "fail") }

// recordingReporter records reported scores.
type recordingReporter struct {
	scores []int
}

func (r *recordingReporter) GameOver(score int) { r.scores = append(r.scores, score) }

// recordingSurface records draw commands as strings.
type recordingSurface struct {
	sizes map[assets.ID][2]float64
	ops   []string
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{sizes: map[assets.ID][2]float64{
		assets.Background: {1127, 606},
		assets.Clouds:     {600, 150},
		assets.Player:     {100, 100},
		assets.Obstacle:   {140, 140},
	}}
}

func (s *recordingSurface) Clear() { s.ops = append(s.ops, "clear") }

func (s *recordingSurface) ImageSize(id assets.ID) (float64, float64) {
	sz := s.sizes[id]
	return sz[0], sz[1]
}

func (s *recordingSurface) DrawImage(id assets.ID, dst core.Rect) {
	s.ops = append(s.ops, fmt.Sprintf("image %s %v %v %v %v", id, dst.X, dst.Y, dst.W, dst.H))
}

func (s *recordingSurface) FillRect(dst core.Rect, c core.Color) {
	s.ops = append(s.ops, fmt.Sprintf("fill %v %v %v %v %d", dst.X, dst.Y, dst.W, dst.H, c))
}

func (s *recordingSurface) DrawText(x, y float64, text string, style TextStyle) {
	s.ops = append(s.ops, fmt.Sprintf("text %v %v %q", x, y, text))
}

// testConfig returns the classic configuration.
func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

// unreachableConfig places the player beyond the left edge, where obstacles are
// dequeued before they could ever reach it.
func unreachableConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.X = -1000
	return cfg
}
