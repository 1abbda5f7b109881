package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/cactus-run/internal/assets"
	"github.com/vovakirdan/cactus-run/internal/audio"
	"github.com/vovakirdan/cactus-run/internal/config"
	"github.com/vovakirdan/cactus-run/internal/core"
	"github.com/vovakirdan/cactus-run/internal/runner"
)

// Key lists for the logical buttons.
var (
	jumpKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	startKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}
	retryKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

var (
	panelTitle = runner.TextStyle{Fill: core.ColorBrightYellow, Outline: core.ColorBlack, Size: 48}
	panelBody  = runner.TextStyle{Fill: core.ColorBrightWhite, Outline: core.ColorBlack, Size: 30}
	panelHint  = runner.TextStyle{Fill: core.ColorGray, Size: 20}
	panelShade = color.RGBA{0, 0, 0, 0xa0}
)

// Options configures the window frontend.
type Options struct {
	Runtime core.RuntimeConfig
	Loader  *assets.Loader
	Audio   runner.AudioSink
	Logger  *log.Logger
}

// gameOverPanel is the UI reporter drawn over the halted last frame.
type gameOverPanel struct {
	visible bool
	score   int
}

// GameOver implements runner.Reporter.
func (p *gameOverPanel) GameOver(score int) {
	p.visible = true
	p.score = score
}

// Window implements ebiten.Game for one session.
type Window struct {
	cfg     config.RunnerConfig
	game    *runner.Game
	panel   *gameOverPanel
	loader  *assets.Loader
	surface *Surface
	status  *Surface // Text-only surface used before the atlas exists
	logger  *log.Logger

	ready   bool
	loadErr error
}

// NewWindow creates the window game. Assets must already be loading.
func NewWindow(cfg config.RunnerConfig, opts Options) *Window {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	panel := &gameOverPanel{}
	return &Window{
		cfg:   cfg,
		panel: panel,
		game: runner.New(cfg, rt.Seed,
			runner.WithAudio(opts.Audio),
			runner.WithReporter(panel),
			runner.WithLogger(opts.Logger),
		),
		loader: opts.Loader,
		status: NewSurface(assets.NewAtlas()),
		logger: opts.Logger,
	}
}

// Update implements ebiten.Game. It is the frame driver: one simulation step
// per call while the run's clock is armed.
func (w *Window) Update() error {
	if anyJustPressed(quitKeys) {
		return ebiten.Termination
	}
	if !w.ready {
		w.pollAssets()
		return nil
	}

	now := time.Now()
	switch w.game.State() {
	case runner.Idle:
		if anyJustPressed(startKeys) {
			w.game.Start(now)
		}
	case runner.GameOver:
		if anyJustPressed(retryKeys) && w.game.Retry(now) {
			w.panel.visible = false
			w.logger.Info("retry")
		}
	case runner.Running:
		frame := core.NewInputFrame()
		if anyPressed(jumpKeys) {
			frame.Set(core.ActionJump)
		}
		w.game.Frame(now, runner.InputFromFrame(frame))
	}
	return nil
}

// pollAssets opens the readiness gate without blocking the frame.
func (w *Window) pollAssets() {
	if w.loadErr != nil {
		return
	}
	if w.loader == nil {
		w.loadErr = errors.New("no asset loader")
		return
	}
	select {
	case <-w.loader.Ready():
	default:
		return
	}
	atlas, err := w.loader.Result()
	if err != nil {
		w.loadErr = err
		w.logger.Error("assets unavailable, run disabled", "err", err)
		return
	}
	w.surface = NewSurface(atlas)
	w.ready = true
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	cx := w.cfg.Screen.Width / 2
	cy := w.cfg.Screen.Height / 2

	if !w.ready {
		w.status.Target(screen)
		msg := "Loading sprites..."
		if w.loadErr != nil {
			msg = fmt.Sprintf("Cannot start: %v", w.loadErr)
		}
		w.status.DrawTextCentered(cx, cy, msg, panelHint)
		return
	}

	w.surface.Target(screen)
	w.game.Render(w.surface)

	switch {
	case w.game.State() == runner.Idle:
		w.drawPanel(screen, "CACTUS RUN", "", "Enter or Space to play")
	case w.panel.visible:
		w.drawPanel(screen, "GAME OVER", fmt.Sprintf("Score: %d", w.panel.score), "R to retry, Esc to quit")
	}
}

// drawPanel shades the scene and draws a centered message.
func (w *Window) drawPanel(screen *ebiten.Image, title, body, hint string) {
	sw, sh := w.cfg.Screen.Width, w.cfg.Screen.Height
	vector.DrawFilledRect(screen, float32(sw/4), float32(sh/4), float32(sw/2), float32(sh/2), panelShade, false)

	cx, y := sw/2, sh/2-40
	w.surface.DrawTextCentered(cx, y, title, panelTitle)
	if body != "" {
		w.surface.DrawTextCentered(cx, y+55, body, panelBody)
	}
	w.surface.DrawTextCentered(cx, y+100, hint, panelHint)
}

// Layout implements ebiten.Game. The logical screen size is fixed; ebiten
// scales it into the window keeping the aspect ratio.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.cfg.Screen.Width), int(w.cfg.Screen.Height)
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.RunnerConfig, opts Options) error {
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}
	ebiten.SetWindowSize(int(cfg.Screen.Width), int(cfg.Screen.Height))
	ebiten.SetWindowTitle("Cactus Run")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(NewWindow(cfg, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
