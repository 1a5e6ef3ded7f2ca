package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines every binding used by the flappy screens.
type KeyMap struct {
	Flap    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/up", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "play again"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("right/l", "increase"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// screenKeys adapts the bindings of one screen to help.KeyMap.
type screenKeys []key.Binding

// ShortHelp returns key bindings for the short help view.
func (k screenKeys) ShortHelp() []key.Binding {
	return k
}

// FullHelp returns key bindings for the full help view.
func (k screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k}
}

// helpFor returns the bindings shown at the bottom of a screen.
func (k KeyMap) helpFor(s screen, paused bool) screenKeys {
	switch s {
	case screenHome:
		return screenKeys{k.Up, k.Down, k.Select, k.Quit}
	case screenSettings:
		return screenKeys{k.Up, k.Down, k.Left, k.Right, k.Back}
	case screenHighScore:
		return screenKeys{k.Back}
	case screenPlaying:
		if paused {
			return screenKeys{k.Pause, k.Restart, k.Quit}
		}
		return screenKeys{k.Flap, k.Pause, k.Quit}
	case screenGameOver:
		return screenKeys{k.Restart, k.Back, k.Quit}
	}
	return screenKeys{k.Quit}
}
