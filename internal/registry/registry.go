// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
)

// Game is the interface every arcade simulation implements.
// Games hold pure logic with no terminal or audio dependencies; the
// session owns the Menu/Playing/GameOver cycle and calls into the game
// at each transition.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flap", "flight").
	// Used for CLI commands and score storage keys.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset binds the game to a runtime configuration (screen size, seed)
	// and returns it to the idle menu state.
	Reset(cfg core.RuntimeConfig)

	// Start begins a fresh run: score 0, no obstacles, player at the
	// configured start position.
	Start()

	// Apply applies one input while a run is in progress and returns the
	// cues it produced.
	Apply(a core.Action) []core.Cue

	// Step advances the simulation by one fixed tick. The returned state has
	// PhaseGameOver when the run ended during this tick.
	Step() core.StepResult

	// Clear drops transient run state after a game over.
	Clear()

	// Score returns the score of the current or last run.
	Score() int

	// Render draws the game for the given session state into dst.
	// It must not mutate gameplay state.
	Render(dst *core.Screen, st core.GameState)
}

// Configurable is implemented by games that read a YAML config file.
type Configurable interface {
	// LoadConfig loads the game's config from customPath (or the default
	// search path when empty) and applies a difficulty preset.
	LoadConfig(customPath string, preset config.DifficultyPreset) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
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

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
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

// HighScoreKey returns the storage key under which a game's high score is
// persisted.
func HighScoreKey(id string) string {
	if id == "flap" {
		return "chipFlap_highScore"
	}
	return id + "_highScore"
}
