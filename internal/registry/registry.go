// Package registry keeps the factories of the games the platform can run.
// Games register themselves in init functions, so the TUI and the SSH
// server only depend on the Game interface.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/cosmo-arcade/internal/core"
)

// Game is what the platform drives. Games hold no Bubble Tea state; the
// platform maps keys to actions, paces the ticks and paints the screen.
type Game interface {
	// ID names the game in the scores and saves tables.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new game. It runs before the first Step and again
	// when the player restarts after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick with the actions held this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	// State reports score, level and whether the game is over or paused.
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// Title returns the display name of a registered game, or the id itself
// for unknown games.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
