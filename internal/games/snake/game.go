// Package snake implements the classic wrap-around Snake game as pure,
// deterministic logic: no terminal, window or timer code lives here.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game owns the board, the snake and the food, and advances them one tick
// at a time.
type Game struct {
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	tick   uint64
	score  int // Food eaten since start or last reset
	paused bool

	board core.Board
	snake *Snake
	food  *Food
}

// New creates an empty game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes or restarts the game from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.paused = false
	g.board = cfg.Board

	g.snake = NewSnake(cfg.InitialBody, cfg.InitialDir, cfg.Palette.Snake)
	g.food = NewFood(cfg.Palette.Food)
	g.food.RandomizePosition(g.rng, g.board, g.snake.Cells())
}

// restart puts the snake back at its starting position without touching
// the RNG stream. Food only moves if the fresh body now covers it.
func (g *Game) restart() {
	g.snake.Reset()
	g.score = 0
	if !g.food.Placed() || g.snake.Occupies(g.food.Position()) {
		g.food.RandomizePosition(g.rng, g.board, g.snake.Cells())
	}
}

// Step advances the game by one tick:
// direction buffer, movement, then the food check.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	var result core.StepResult

	if input.Has(core.ActionRestart) {
		g.restart()
		result.Reset = true
	}

	// Two presses within one tick cancel out
	if input.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
	}

	if g.paused {
		result.State = g.State()
		return result
	}

	for _, a := range input.Actions {
		if d, ok := a.Direction(); ok {
			g.snake.Steer(d)
		}
	}
	g.snake.ApplyPending()

	g.snake.Move(g.board)
	result.Moved = true

	if g.food.Placed() && g.snake.Head() == g.food.Position() {
		g.snake.Grow()
		g.food.RandomizePosition(g.rng, g.board, g.snake.Cells())
		g.score++
		result.Ate = true
	}

	result.State = g.State()
	return result
}

// Drawables returns everything on the board in drawing order.
func (g *Game) Drawables() []Drawable {
	return []Drawable{g.snake, g.food}
}

// Render draws the board onto dst: background, then every Drawable.
func (g *Game) Render(dst core.Canvas) {
	palette := g.cfg.Palette
	dst.Clear(palette.Background)
	for _, d := range g.Drawables() {
		Draw(dst, d, palette.Border)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Length: g.snake.Len(),
		Paused: g.paused,
	}
}

// Board returns the grid the game is played on.
func (g *Game) Board() core.Board {
	return g.board
}

// Snake returns the player's snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the apple.
func (g *Game) Food() *Food {
	return g.food
}

// Config returns the configuration of the last Reset.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}

// Status returns a one-line HUD summary.
func (g *Game) Status() string {
	status := fmt.Sprintf(" %s — Length: %d  Eaten: %d", g.Title(), g.snake.Len(), g.score)
	if g.paused {
		status += "  [Paused]"
	}
	return status
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Paused: %v\n", g.tick, g.score, g.paused)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", g.snake.Len(), g.snake.Direction())
	fmt.Fprintf(&b, "Head: %s, Food: %s (placed: %v)\n", g.snake.Head(), g.food.Position(), g.food.Placed())
	return b.String()
}
