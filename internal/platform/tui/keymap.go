package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/graph-master/internal/core"
)

// KeyMap holds the trainer's key bindings. It doubles as the help.KeyMap
// for the help line under the game.
//
// Hint, Grid, Zoom and Next are not mapped to actions: they arrive at the
// game as typed runes, which it interprets depending on the question.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Place      key.Binding
	Submit     key.Binding
	NextField  key.Binding
	Erase      key.Binding
	Pause      key.Binding
	Hint       key.Binding
	Grid       key.Binding
	Zoom       key.Binding
	Next       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Place:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "place")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next box")),
		Erase:      key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Pause:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pause")),
		Hint:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hint")),
		Grid:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
		Zoom:       key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[ ]", "zoom")),
		Next:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown on the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Place, k.NextField, k.Hint, k.Grid, k.Zoom, k.Next, k.Pause, k.Quit}
}

// FullHelp returns every binding, grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Submit, k.NextField, k.Erase},
		{k.Hint, k.Grid, k.Zoom, k.Next},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Printable keys that are not actions are passed to the game as typed runes.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, gameOver bool) bool {
	switch {
	case key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Up):
		frame.Set(core.ActionUp)
	case key.Matches(msg, k.Down):
		frame.Set(core.ActionDown)
	case key.Matches(msg, k.Left):
		frame.Set(core.ActionLeft)
	case key.Matches(msg, k.Right):
		frame.Set(core.ActionRight)
	case key.Matches(msg, k.Place):
		frame.Set(core.ActionPlace)
	case key.Matches(msg, k.Submit):
		frame.Set(core.ActionSubmit)
	case key.Matches(msg, k.NextField):
		frame.Set(core.ActionNextField)
	case key.Matches(msg, k.Erase):
		frame.Set(core.ActionErase)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case gameOver && key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	case msg.Type == tea.KeyRunes:
		frame.Type(msg.Runes...)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
