package core

// Canvas is the drawing surface a board is rendered onto.
// Implementations decide how one grid cell maps to pixels or characters.
type Canvas interface {
	// Clear fills the whole board area with the background color.
	Clear(bg Color)
	// DrawCell draws one filled grid cell with a one-unit border.
	DrawCell(c Cell, fill, border Color)
}

// Layout selects how board cells are mapped onto terminal characters.
type Layout int

const (
	// LayoutTooSmall means the board does not fit the screen at all.
	LayoutTooSmall Layout = iota
	// LayoutCompact draws two board rows per text row using half blocks.
	LayoutCompact
	// LayoutWide draws each cell as two characters with border glyphs.
	LayoutWide
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutCompact:
		return "compact"
	case LayoutWide:
		return "wide"
	default:
		return "too-small"
	}
}

const upperHalf = '▀'

// BoardCanvas renders a board onto a terminal Screen region.
// Terminal cells are roughly twice as tall as wide, so the wide layout uses
// two columns per cell and the compact layout packs two rows per line.
type BoardCanvas struct {
	screen  *Screen
	board   Board
	layout  Layout
	originX int
	originY int
}

// NewBoardCanvas picks the largest layout that fits the screen below row top
// and centers the board horizontally.
func NewBoardCanvas(screen *Screen, board Board, top int) *BoardCanvas {
	bc := &BoardCanvas{screen: screen, board: board, originY: top}
	availW := screen.Width()
	availH := screen.Height() - top

	switch {
	case board.Width*2 <= availW && board.Height <= availH:
		bc.layout = LayoutWide
		bc.originX = (availW - board.Width*2) / 2
	case board.Width <= availW && (board.Height+1)/2 <= availH:
		bc.layout = LayoutCompact
		bc.originX = (availW - board.Width) / 2
	default:
		bc.layout = LayoutTooSmall
	}
	return bc
}

// Layout returns the chosen layout.
func (bc *BoardCanvas) Layout() Layout {
	return bc.layout
}

// Fits reports whether the board can be drawn at all.
func (bc *BoardCanvas) Fits() bool {
	return bc.layout != LayoutTooSmall
}

// Size returns the board's footprint in terminal characters.
func (bc *BoardCanvas) Size() (w, h int) {
	switch bc.layout {
	case LayoutWide:
		return bc.board.Width * 2, bc.board.Height
	case LayoutCompact:
		return bc.board.Width, (bc.board.Height + 1) / 2
	}
	return 0, 0
}

// Clear paints the board area with the background color.
func (bc *BoardCanvas) Clear(bg Color) {
	w, h := bc.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := Glyph{Rune: ' ', Fg: bg, Bg: bg}
			if bc.layout == LayoutCompact {
				g.Rune = upperHalf
			}
			bc.screen.SetGlyph(bc.originX+x, bc.originY+y, g)
		}
	}
}

// DrawCell draws a single board cell. Cells off the board are ignored.
func (bc *BoardCanvas) DrawCell(c Cell, fill, border Color) {
	if !bc.board.Contains(c) {
		return
	}
	switch bc.layout {
	case LayoutWide:
		x := bc.originX + c.X*2
		y := bc.originY + c.Y
		bc.screen.SetGlyph(x, y, Glyph{Rune: '[', Fg: border, Bg: fill})
		bc.screen.SetGlyph(x+1, y, Glyph{Rune: ']', Fg: border, Bg: fill})
	case LayoutCompact:
		x := bc.originX + c.X
		y := bc.originY + c.Y/2
		g := bc.screen.GetGlyph(x, y)
		g.Rune = upperHalf
		if c.Y%2 == 0 {
			g.Fg = fill
		} else {
			g.Bg = fill
		}
		bc.screen.SetGlyph(x, y, g)
	}
}
