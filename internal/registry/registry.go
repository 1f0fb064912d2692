// Package registry provides a global registry of frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and launch them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultFrontend is used when the user does not pick one.
const DefaultFrontend = "tea"

// ErrUnknownFrontend is returned (wrapped) by Create for unregistered IDs.
var ErrUnknownFrontend = errors.New("unknown frontend")

// Options is everything a frontend needs to run a game session.
type Options struct {
	Config core.RuntimeConfig
	Logger *log.Logger
	Sound  bool // Play a chime when food is eaten
}

// Runner plays one session until the user quits or ctx is cancelled.
type Runner func(ctx context.Context, opts Options) error

// Frontend describes a registered way of presenting the game.
type Frontend struct {
	ID    string // CLI name (e.g., "tea", "tcell")
	Title string // Human-readable description
	Run   Runner
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

var (
	frontends = make(map[string]Frontend)
	mu        sync.RWMutex
)

// Register adds a frontend to the registry.
// Typically called from a platform package's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(f Frontend) {
	mu.Lock()
	defer mu.Unlock()

	if f.ID == "" || f.Run == nil {
		panic("registry: frontend needs an ID and a Run function")
	}
	if _, exists := frontends[f.ID]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", f.ID))
	}

	frontends[f.ID] = f
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(frontends))
	for _, f := range frontends {
		result = append(result, FrontendInfo{
			ID:    f.ID,
			Title: f.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create looks up a frontend by its ID.
// Returns an error wrapping ErrUnknownFrontend if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := frontends[id]
	if !ok {
		return Frontend{}, fmt.Errorf("registry: %w %q", ErrUnknownFrontend, id)
	}

	return f, nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := frontends[id]
	return ok
}

// unregister removes a frontend. Only used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(frontends, id)
}
