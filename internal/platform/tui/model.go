package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cactus-run/internal/assets"
	"github.com/vovakirdan/cactus-run/internal/audio"
	"github.com/vovakirdan/cactus-run/internal/config"
	"github.com/vovakirdan/cactus-run/internal/core"
	"github.com/vovakirdan/cactus-run/internal/runner"
)

// assetsReadyMsg is delivered once the loader's readiness gate opens.
type assetsReadyMsg struct {
	atlas *assets.Atlas
	err   error
}

// waitAssets blocks on the loader in a command goroutine.
func waitAssets(l *assets.Loader) tea.Cmd {
	return func() tea.Msg {
		atlas, err := l.Wait(context.Background())
		return assetsReadyMsg{atlas: atlas, err: err}
	}
}

// gameOverPanel is the UI reporter. It is shared by pointer between the game
// and every copy of the model.
type gameOverPanel struct {
	visible bool
	score   int
}

// GameOver implements runner.Reporter.
func (p *gameOverPanel) GameOver(score int) {
	p.visible = true
	p.score = score
}

// Options configures the terminal frontend.
type Options struct {
	Runtime core.RuntimeConfig
	Loader  *assets.Loader
	Audio   runner.AudioSink
	Logger  *log.Logger
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model running one Cactus Run session.
type Model struct {
	game    *runner.Game
	panel   *gameOverPanel
	loader  *assets.Loader
	screen  *core.Screen
	surface *Surface
	config  core.RuntimeConfig
	logger  *log.Logger

	keys KeyMap
	help help.Model

	hold      time.Duration
	jumpUntil time.Time // Jump counts as held until this instant
	now       func() time.Time

	ready    bool  // Asset gate opened without error
	loadErr  error // Set when the gate opened with an error
	quitting bool
}

// NewModel creates a model for cfg. The displayed grid is resized on the first
// window size message.
func NewModel(cfg config.RunnerConfig, opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
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
	game := runner.New(cfg, rt.Seed,
		runner.WithAudio(opts.Audio),
		runner.WithReporter(panel),
		runner.WithLogger(opts.Logger),
	)

	screen := core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-1, 0))
	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		panel:   panel,
		loader:  opts.Loader,
		screen:  screen,
		surface: NewSurface(screen, nil, cfg.Screen.Width, cfg.Screen.Height),
		config:  rt,
		logger:  opts.Logger,
		keys:    DefaultKeyMap(),
		help:    h,
		hold:    cfg.Input.Hold,
		now:     time.Now,
	}
}

// Init waits for the assets. Nothing is simulated until they are ready.
func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return func() tea.Msg { return assetsReadyMsg{err: errors.New("no asset loader")} }
	}
	return waitAssets(m.loader)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assetsReadyMsg:
		return m.handleAssets(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleAssets opens the gate or records why it stays shut.
func (m Model) handleAssets(msg assetsReadyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loadErr = msg.err
		m.logger.Error("assets unavailable, run disabled", "err", msg.err)
		return m, nil
	}
	m.surface.SetAtlas(msg.atlas)
	m.ready = true
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions := m.keys.Actions(msg)

	if actions.Has(core.ActionQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if !m.ready {
		return m, nil
	}

	now := m.now()
	switch m.game.State() {
	case runner.Idle:
		if actions.Has(core.ActionStart) && m.game.Start(now) {
			return m, tickCmd(m.config.TickRate)
		}

	case runner.Running:
		if actions.Has(core.ActionJump) {
			m.jumpUntil = now.Add(m.hold)
		}

	case runner.GameOver:
		if actions.Has(core.ActionRestart) && m.game.Retry(now) {
			m.panel.visible = false
			m.jumpUntil = time.Time{}
			m.logger.Info("retry")
			return m, tickCmd(m.config.TickRate)
		}
	}

	return m, nil
}

// handleResize rescales the scene without touching the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0)) // Last row holds the help line
	m.surface.Layout()
	return m, nil
}

// handleTick runs one frame and schedules the next while the run lasts.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	if t.Before(m.jumpUntil) {
		frame.Set(core.ActionJump)
	}

	if !m.game.Frame(t, runner.InputFromFrame(frame)) {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return panelStyle.Render(fmt.Sprintf("%s\n\n%v\n\n%s",
			titleStyle.Render("Cannot start"), m.loadErr, hintStyle.Render("q quit")))
	}
	if !m.ready {
		return hintStyle.Render("Loading sprites...")
	}

	m.game.Render(m.surface)
	switch {
	case m.game.State() == runner.Idle:
		m.drawPanel("CACTUS RUN", "", "enter/space to play")
	case m.panel.visible:
		m.drawPanel("GAME OVER", fmt.Sprintf("Score: %d", m.panel.score), "r retry  q quit")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawPanel draws a boxed message centered over the scene.
func (m Model) drawPanel(title, body, hint string) {
	lines := []string{title}
	if body != "" {
		lines = append(lines, body)
	}
	lines = append(lines, hint)

	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w += 6
	h := len(lines) + 4

	x := (m.screen.Width() - w) / 2
	y := (m.screen.Height() - h) / 2
	m.screen.FillCells(x, y, w, h, core.Cell{Rune: ' ', Fg: core.ColorBrightWhite, Bg: core.ColorBlack})
	m.screen.DrawBox(x, y, w, h)
	for i, l := range lines {
		fg := core.ColorBrightWhite
		if i == 0 {
			fg = core.ColorBrightYellow
		}
		lx := x + (w-len([]rune(l)))/2
		m.screen.DrawStyledText(lx, y+2+i, l, fg, core.ColorBlack)
	}
}

// State returns the current run state.
func (m Model) State() runner.RunState {
	return m.game.State()
}

// Run starts the Bubble Tea program for cfg.
func Run(cfg config.RunnerConfig, opts Options) error {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
