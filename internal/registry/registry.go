// Package registry provides a global registry for trainer variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/graph-master/internal/core"
)

// Game is the interface every trainer variant implements.
// Games hold pure logic and never import Bubble Tea; the platform maps
// keys and mouse clicks to an InputFrame, drives ticks and draws the Screen.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "points", "slider").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Plotting Points").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Place, Submit, etc.)
	// plus typed runes and mouse clicks.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState

	// Resize adapts the layout to a new screen size without losing progress.
	Resize(width, height int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh variant instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     []GameInfo // registration order
)

// Register adds a variant factory. Variants are listed in the order they
// register, which is the order a learner should work through them.
// Panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	infos = append(infos, GameInfo{ID: id, Title: f().Title()})
}

// List returns every registered variant in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	return slices.Clone(infos)
}

// Lookup returns the metadata of a registered variant.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i := slices.IndexFunc(infos, func(g GameInfo) bool { return g.ID == id })
	if i < 0 {
		return GameInfo{}, false
	}
	return infos[i], true
}

// Create instantiates a new variant by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
