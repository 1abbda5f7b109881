package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cactus-run/internal/core"
)

// KeyMap defines the game key bindings. Space is bound twice: it starts a run
// from the title screen and jumps while running.
type KeyMap struct {
	Jump  key.Binding
	Start key.Binding
	Retry key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Retry, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Start, k.Retry},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑/w", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "retry"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions translates a key message into the actions it triggers.
// A key can map to several actions; the model picks by run state.
func (k KeyMap) Actions(msg tea.KeyMsg) core.InputFrame {
	frame := core.NewInputFrame()
	if key.Matches(msg, k.Quit) {
		frame.Set(core.ActionQuit)
	}
	if key.Matches(msg, k.Jump) {
		frame.Set(core.ActionJump)
	}
	if key.Matches(msg, k.Start) {
		frame.Set(core.ActionStart)
	}
	if key.Matches(msg, k.Retry) {
		frame.Set(core.ActionRestart)
	}
	return frame
}
