package core

import "fmt"

// HUDHeight is the number of rows above the board: a status line and a rule.
const HUDHeight = 2

// DrawHUD writes the status line and the rule under it.
func (s *Screen) DrawHUD(status string) {
	s.DrawText(0, 0, status)
	s.DrawHLine(0, 1, s.width, '─')
}

// DrawTooSmall replaces the board area with a notice saying how much room
// board needs.
func (s *Screen) DrawTooSmall(board Board) {
	y := HUDHeight + (s.height-HUDHeight)/2 - 1
	s.DrawTextCentered(y, "Terminal too small")
	s.DrawTextCentered(y+1, fmt.Sprintf("need %dx%d", board.Width, (board.Height+1)/2+HUDHeight))
}
