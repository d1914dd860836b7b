// Package registry keeps the game factories the front ends can start.
// Game packages register in init(); cmd and the TUI only import them for
// side effects and look them up by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/seal-run/internal/core"
)

// Game is the contract between a simulation and the platform layer.
// Implementations never touch the terminal: the platform maps keys to
// actions, drives Step at a fixed tick and presents the Screen.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score-table key.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run. The runtime config carries screen size,
	// tick rate, seed and the level to start on.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one tick of cfg.TickDuration().
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score, level, lives and the pause/game-over flags.
	State() core.GameState
}

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory builds a new, un-reset game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
	infos     = map[string]Info{}
)

// Register adds a factory. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	infos[id] = Info{ID: id, Title: f().Title()}
}

// List returns the registered games sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(infos))
	for _, info := range infos {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create returns a new instance of the game with the given ID.
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
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
