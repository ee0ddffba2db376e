// Package registry provides a global registry for mini-game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/timer"
)

// Game is the interface every mini-game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "quiz", "wheel").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh visit. All delayed transitions must be scheduled
	// on timers; the platform stops the group when the visit ends.
	Reset(cfg core.RuntimeConfig, timers *timer.Group)

	// Step applies one tick of input after the platform has advanced time.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current coarse game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Order int // Menu position; lower comes first
}

// Factory creates a new game for the given content.
type Factory func(content config.Content) (Game, error)

type registration struct {
	info    GameInfo
	factory Factory
}

var (
	games = make(map[string]registration)
	mu    sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	games[info.ID] = registration{info: info, factory: f}
}

// List returns information about all registered games in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for _, r := range games {
		result = append(result, r.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the content is unusable.
func Create(id string, content config.Content) (Game, error) {
	mu.RLock()
	r, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := r.factory(content)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}

// Title returns the registered title for id, or the id itself if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if r, ok := games[id]; ok {
		return r.info.Title
	}
	return id
}
