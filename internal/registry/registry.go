// Package registry holds the contract between the platform and a game, and a
// global registry of brick layouts. Layouts register themselves in init()
// functions so the CLI and the menu can discover them by ID.
package registry

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// Game is what the platform drives: fixed-rate steps, rendering into a
// screen buffer, and state reporting. Games carry no terminal dependencies.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// BlockSpec describes one destructible block a layout places.
type BlockSpec struct {
	Rect  geom.Rect
	Color core.Color
}

// Layout arranges the destructible blocks of a level.
type Layout interface {
	ID() string
	Title() string

	// Blocks returns the blocks for grid. Random choices such as row colors
	// must come from rng so a seed reproduces the level.
	Blocks(grid config.BlocksConfig, rng *rand.Rand) []BlockSpec
}

// ErrUnknownLayout is returned by Get for an unregistered ID.
var ErrUnknownLayout = errors.New("registry: unknown layout")

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID    string
	Title string
}

var (
	layouts = make(map[string]Layout)
	mu      sync.RWMutex
)

// Register adds a layout to the registry.
// Panics if a layout with the same ID is already registered.
func Register(l Layout) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := layouts[l.ID()]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", l.ID()))
	}
	layouts[l.ID()] = l
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(layouts))
	for id, l := range layouts {
		result = append(result, LayoutInfo{ID: id, Title: l.Title()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns the layout registered under id.
func Get(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := layouts[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLayout, id)
	}
	return l, nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := layouts[id]
	return ok
}
