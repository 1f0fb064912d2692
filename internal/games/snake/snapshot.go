package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Score      int
	Paused     bool
	Body       []core.Cell // Head first
	Dir        core.Direction
	Food       core.Cell
	FoodPlaced bool
}

// Head returns the snapshot's head cell.
func (s Snapshot) Head() core.Cell {
	if len(s.Body) == 0 {
		return core.Cell{}
	}
	return s.Body[0]
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Tick != other.Tick || s.Score != other.Score || s.Paused != other.Paused ||
		s.Dir != other.Dir || s.Food != other.Food || s.FoodPlaced != other.FoodPlaced ||
		len(s.Body) != len(other.Body) {
		return false
	}
	for i := range s.Body {
		if s.Body[i] != other.Body[i] {
			return false
		}
	}
	return true
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Paused:     g.paused,
		Body:       g.snake.Body(),
		Dir:        g.snake.Direction(),
		Food:       g.food.Position(),
		FoodPlaced: g.food.Placed(),
	}
}
