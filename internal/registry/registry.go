// Package registry keeps the game factories known to the platform.
// Games register themselves in init() functions so the CLI, the menu and the
// SSH server can list and start them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/AKGMI/BlastGame/internal/core"
)

// Game is implemented by every playable mode.
// The platform owns input mapping, timing and terminal output.
type Game interface {
	// ID returns the identifier used on the command line and in the score table.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new round. Called once at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Round summarizes a finished round for persistence.
type Round struct {
	Level        string
	Won          bool
	Score        int
	Target       int
	MovesUsed    int
	ShufflesUsed int
	BoostersUsed int
}

// RoundReporter is implemented by games that can describe a finished round
// in more detail than GameState.
type RoundReporter interface {
	Round() Round
}

// RoundFeed is implemented by games that finish several rounds in one
// session, such as a campaign clearing levels. DrainRounds returns the
// rounds finished since the last call; the round that ends the session is
// still reported through RoundReporter.
type RoundFeed interface {
	DrainRounds() []Round
}

// Resizer is implemented by games that can follow a terminal resize
// without being reset.
type Resizer interface {
	Resize(w, h int)
}

// LevelSelector is implemented by games with a level catalog.
type LevelSelector interface {
	SelectLevel(id string)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
