// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is a position on the board grid, addressed by column and row.
// Cells compare by value.
type Cell struct {
	X, Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit vector along one axis.
// Rows grow downwards, so Up has a negative DY.
type Direction struct {
	DX, DY int
}

// The four movement directions.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists all valid directions in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsReverseOf reports whether d points exactly opposite to other.
func (d Direction) IsReverseOf(other Direction) bool {
	return d == other.Reverse()
}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	return Abs(d.DX)+Abs(d.DY) == 1
}

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection converts a name produced by String back to a Direction.
func ParseDirection(name string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == name {
			return d, nil
		}
	}
	return Direction{}, fmt.Errorf("unknown direction %q", name)
}

// Board is a fixed-size grid with wrap-around topology: leaving one edge
// re-enters at the opposite edge at the same offset.
type Board struct {
	Width, Height int
}

// NewBoard creates a board of the given size in cells.
func NewBoard(width, height int) Board {
	return Board{Width: width, Height: height}
}

// Area returns the number of cells on the board.
func (b Board) Area() int {
	return b.Width * b.Height
}

// Contains returns true if c lies on the board.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Wrap maps any cell onto the board, each axis independently modulo the
// board size.
func (b Board) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, b.Width), Y: mod(c.Y, b.Height)}
}

// Step returns the wrapped neighbour of c in direction d.
func (b Board) Step(c Cell, d Direction) Cell {
	return b.Wrap(c.Add(d))
}

// Adjacent reports whether a and b are orthogonal neighbours on the torus.
func (b Board) Adjacent(a, c Cell) bool {
	for _, d := range Directions {
		if b.Step(a, d) == c {
			return true
		}
	}
	return false
}

// mod is the mathematical modulo; the result is always in [0, n).
func mod(v, n int) int {
	if n <= 0 {
		return 0
	}
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// Rect represents an axis-aligned box on the terminal screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
