// Package registry provides a global registry for game mode factories.
// Each difficulty of the game registers itself in init(), so hosts can
// list, create and key scores by mode ID without hardcoded dependencies.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/catjump/internal/core"
)

// Game is the interface a hosted game mode implements.
// Implementations contain game logic only (no Bubble Tea); the platform
// handles input mapping, timing and output.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "catjump_hard").
	// Used for CLI flags and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Cat Jump (Hard)").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Left, Pause, etc.).
	// Returns the result of this tick including state and raised events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the host-facing summary (score, level, lives, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game mode.
type Factory func() Game

// ErrUnknownMode is returned by Create for IDs nobody registered.
var ErrUnknownMode = errors.New("registry: unknown game mode")

type entry struct {
	factory Factory
	title   string
}

var (
	modes = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a game mode factory to the registry.
// Typically called from a game's init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	// Title comes from a throwaway instance, built outside the lock
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[id]; exists {
		panic(fmt.Sprintf("registry: game mode %q already registered", id))
	}
	modes[id] = entry{factory: f, title: title}
}

// List returns all registered modes, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(modes))
	for id, e := range modes {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Title returns the display title of a mode, or "" if it is unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	return modes[id].title
}

// Create instantiates a new game for the mode ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return e.factory(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
