package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// samplesPerCell bounds rejection sampling before falling back to an
// explicit scan of free cells.
const samplesPerCell = 4

// Food is the single apple on the board.
type Food struct {
	position core.Cell
	placed   bool
	color    core.Color
}

// NewFood creates food that is not yet on the board.
func NewFood(color core.Color) *Food {
	return &Food{color: color}
}

// Position returns the food's cell. Only meaningful when Placed is true.
func (f *Food) Position() core.Cell {
	return f.position
}

// Placed reports whether the food is on the board.
func (f *Food) Placed() bool {
	return f.placed
}

// RandomizePosition moves the food to a uniformly random cell that is not in
// occupied. It samples the whole grid until it hits a free cell; if that
// takes too long it picks uniformly among the remaining free cells instead.
// It returns false, leaving the food where it was, when every cell is taken.
func (f *Food) RandomizePosition(rng *rand.Rand, board core.Board, occupied []core.Cell) bool {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	if len(taken) < board.Area() {
		for i := 0; i < samplesPerCell*board.Area(); i++ {
			c := core.Cell{X: rng.Intn(board.Width), Y: rng.Intn(board.Height)}
			if _, ok := taken[c]; !ok {
				f.commit(c)
				return true
			}
		}
	}

	free := make([]core.Cell, 0, board.Area()-len(taken))
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			c := core.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	f.commit(free[rng.Intn(len(free))])
	return true
}

func (f *Food) commit(c core.Cell) {
	f.position = c
	f.placed = true
}

// Cells implements Drawable. Unplaced food has no cells.
func (f *Food) Cells() []core.Cell {
	if !f.placed {
		return nil
	}
	return []core.Cell{f.position}
}

// Color implements Drawable.
func (f *Food) Color() core.Color {
	return f.color
}
