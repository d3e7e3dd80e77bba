package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/graph-master/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		gameOver bool
		action   core.Action
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, false, core.ActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, false, core.ActionDown},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, false, core.ActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, false, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, core.ActionPlace},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, false, core.ActionSubmit},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, false, core.ActionNextField},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, false, core.ActionErase},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, false, core.ActionPause},
		{"restart after session", runeKey('r'), true, core.ActionRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if quit := keys.MapKeyToFrame(tt.msg, &frame, tt.gameOver); quit {
				t.Fatalf("MapKeyToFrame() quit = true, expected false")
			}
			if !frame.Has(tt.action) {
				t.Errorf("MapKeyToFrame(%q) did not set %v", tt.msg.String(), tt.action)
			}
			if len(frame.Typed) != 0 {
				t.Errorf("MapKeyToFrame(%q) typed %q, expected nothing", tt.msg.String(), string(frame.Typed))
			}
		})
	}
}

func TestMapKeyToFrameTypesRunes(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	// r is only a restart once the session is over; before that the game
	// gets it as a command rune.
	for _, r := range "-3/4rhg" {
		keys.MapKeyToFrame(runeKey(r), &frame, false)
	}
	if got := string(frame.Typed); got != "-3/4rhg" {
		t.Errorf("Typed = %q, expected %q", got, "-3/4rhg")
	}
	if frame.Has(core.ActionRestart) {
		t.Errorf("r during a session set ActionRestart")
	}
}

func TestMapKeyToFrameQuit(t *testing.T) {
	keys := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		frame := core.NewInputFrame()
		if !keys.MapKeyToFrame(msg, &frame, false) {
			t.Errorf("MapKeyToFrame(%q) quit = false, expected true", msg.String())
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('b'), MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
