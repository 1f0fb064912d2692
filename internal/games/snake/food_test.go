package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestFoodNeverOnSnake(t *testing.T) {
	board := core.NewBoard(32, 24)
	rng := rand.New(rand.NewSource(999))
	s := newClassicSnake()
	f := NewFood(core.RGB(255, 0, 0))

	for i := 0; i < 500; i++ {
		if !f.RandomizePosition(rng, board, s.Cells()) {
			t.Fatal("RandomizePosition should succeed on a mostly empty board")
		}
		if s.Occupies(f.Position()) {
			t.Fatalf("food placed on snake at %v", f.Position())
		}
		if !board.Contains(f.Position()) {
			t.Fatalf("food placed off the board at %v", f.Position())
		}
	}
}

func TestFoodFindsLastFreeCell(t *testing.T) {
	board := core.NewBoard(4, 3)
	rng := rand.New(rand.NewSource(7))
	free := core.Cell{X: 2, Y: 1}

	var occupied []core.Cell
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			if c := (core.Cell{X: x, Y: y}); c != free {
				occupied = append(occupied, c)
			}
		}
	}

	f := NewFood(core.RGB(255, 0, 0))
	for i := 0; i < 20; i++ {
		if !f.RandomizePosition(rng, board, occupied) {
			t.Fatal("RandomizePosition should find the single free cell")
		}
		if f.Position() != free {
			t.Fatalf("Position() = %v, expected %v", f.Position(), free)
		}
	}
}

func TestFoodFullBoard(t *testing.T) {
	board := core.NewBoard(2, 2)
	rng := rand.New(rand.NewSource(1))
	occupied := []core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

	f := NewFood(core.RGB(255, 0, 0))
	if f.RandomizePosition(rng, board, occupied) {
		t.Error("RandomizePosition should fail when the board is full")
	}
	if f.Placed() {
		t.Error("food should stay unplaced when no cell is free")
	}
	if len(f.Cells()) != 0 {
		t.Error("unplaced food should have no cells to draw")
	}
}

func TestFoodFullBoardKeepsPreviousPosition(t *testing.T) {
	board := core.NewBoard(2, 1)
	rng := rand.New(rand.NewSource(1))
	f := NewFood(core.RGB(255, 0, 0))

	if !f.RandomizePosition(rng, board, []core.Cell{{X: 0, Y: 0}}) {
		t.Fatal("first placement should succeed")
	}
	prev := f.Position()

	if f.RandomizePosition(rng, board, []core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}) {
		t.Fatal("placement on a full board should fail")
	}
	if f.Position() != prev || !f.Placed() {
		t.Errorf("food moved to %v on failed placement, expected to stay at %v", f.Position(), prev)
	}
}

func TestFoodCoversWholeBoard(t *testing.T) {
	board := core.NewBoard(4, 4)
	rng := rand.New(rand.NewSource(42))
	f := NewFood(core.RGB(255, 0, 0))
	seen := make(map[core.Cell]bool)

	for i := 0; i < 2000; i++ {
		f.RandomizePosition(rng, board, nil)
		seen[f.Position()] = true
	}

	if len(seen) != board.Area() {
		t.Errorf("food visited %d cells, expected all %d", len(seen), board.Area())
	}
}
