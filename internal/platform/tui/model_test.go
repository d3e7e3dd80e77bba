package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/graph-master/internal/core"
	_ "github.com/vovakirdan/graph-master/internal/games/graphmaster"
	"github.com/vovakirdan/graph-master/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 31, TickRate: 10, Seed: 42}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	game, err := NewGame("points", "fixed")
	if err != nil {
		t.Fatalf("NewGame(points) error = %v", err)
	}
	m := NewModel(game, nil, testRuntime())
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func TestNewGame(t *testing.T) {
	g, err := NewGame("equations", "easy")
	if err != nil {
		t.Fatalf("NewGame(equations) error = %v", err)
	}
	if g.ID() != "equations" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "equations")
	}
	if _, err := NewGame("flappy", "easy"); err == nil {
		t.Errorf("NewGame(flappy) error = nil, expected an error")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t)
	game := m.game

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.game != game {
		t.Errorf("resize replaced the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d, expected %dx%d", m.screen.Width(), m.screen.Height(), 120, 40-helpRows)
	}
}

func TestModelForwardsClicks(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.inputFrame.Click == nil || *m.inputFrame.Click != (core.Pointer{X: 12, Y: 7}) {
		t.Errorf("Click = %v, expected (12, 7)", m.inputFrame.Click)
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := newTestModel(t)
	m.gameState.Paused = true

	if got := update(t, m, runeKey('b')); got.BackToMenu() {
		t.Errorf("BackToMenu() = true without allowBack")
	}

	m.allowBack = true
	if got := update(t, m, runeKey('b')); !got.BackToMenu() {
		t.Errorf("BackToMenu() = false after b while paused")
	}

	m.gameState.Paused = false
	if got := update(t, m, runeKey('b')); got.BackToMenu() {
		t.Errorf("BackToMenu() = true after b during play")
	}
}

func TestModelTickSavesAttempts(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	game, _ := NewGame("equations", "fixed")
	m := NewModel(game, store, testRuntime())
	m.Init()

	// A slope of 99 is never right, and a complete answer is always counted.
	for _, msg := range []tea.Msg{runeKey('9'), runeKey('9'), tea.KeyMsg{Type: tea.KeyTab}, runeKey('9'), tea.KeyMsg{Type: tea.KeyEnter}} {
		m = update(t, m, msg)
		m = update(t, m, TickMsg(time.Now()))
	}

	attempts, err := store.RecentAttempts("equations", 10)
	if err != nil {
		t.Fatalf("RecentAttempts() error = %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("RecentAttempts() len = %d, expected 1", len(attempts))
	}
	if attempts[0].Level != 1 {
		t.Errorf("attempt level = %d, expected 1", attempts[0].Level)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "GRAPH MASTER") {
		t.Errorf("View() missing the HUD title")
	}
	if !strings.Contains(view, "check") {
		t.Errorf("View() missing the help line")
	}
}
