package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the player's creature: an ordered run of cells, head first,
// with a committed heading and at most one buffered heading change.
type Snake struct {
	body      []core.Cell // Head at index 0
	direction core.Direction

	pending    core.Direction
	hasPending bool

	// Tail cell dropped by the latest Move, restored by Grow.
	vacated    core.Cell
	hasVacated bool

	initialBody []core.Cell
	initialDir  core.Direction
	color       core.Color
}

// NewSnake creates a snake with the given starting body (head first) and heading.
func NewSnake(body []core.Cell, dir core.Direction, color core.Color) *Snake {
	s := &Snake{
		initialBody: append([]core.Cell(nil), body...),
		initialDir:  dir,
		color:       color,
	}
	s.Reset()
	return s
}

// Reset restores the starting body and heading in place.
func (s *Snake) Reset() {
	s.body = append(s.body[:0], s.initialBody...)
	s.direction = s.initialDir
	s.pending = core.Direction{}
	s.hasPending = false
	s.vacated = core.Cell{}
	s.hasVacated = false
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() core.Cell {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Cell {
	return append([]core.Cell(nil), s.body...)
}

// Direction returns the committed heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Pending returns the buffered heading, if any.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.pending, s.hasPending
}

// Steer buffers a heading change for the next tick. Requests that would
// reverse the committed heading are rejected; an accepted request replaces
// any earlier one from the same tick.
func (s *Snake) Steer(d core.Direction) bool {
	if !d.Valid() || d.IsReverseOf(s.direction) {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// ApplyPending commits the buffered heading and clears the buffer.
// It returns false when nothing was buffered.
func (s *Snake) ApplyPending() bool {
	if !s.hasPending {
		return false
	}
	s.direction = s.pending
	s.pending = core.Direction{}
	s.hasPending = false
	return true
}

// Move advances the snake one cell along its heading, wrapping at the board
// edges. The head is prepended and the tail dropped.
func (s *Snake) Move(board core.Board) {
	head := board.Step(s.Head(), s.direction)

	s.vacated = s.Tail()
	s.hasVacated = true

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// Grow lengthens the snake by one segment without displacing the others.
// After a move it gives back the tail cell that move dropped; otherwise the
// current tail is doubled and unfolds on the next move.
func (s *Snake) Grow() {
	tail := s.Tail()
	if s.hasVacated {
		tail = s.vacated
	}
	s.body = append(s.body, tail)
	s.hasVacated = false
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Cells implements Drawable.
func (s *Snake) Cells() []core.Cell {
	return s.body
}

// Color implements Drawable.
func (s *Snake) Color() core.Color {
	return s.color
}
