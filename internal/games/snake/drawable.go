package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Drawable is anything that occupies board cells in a single fill color.
type Drawable interface {
	Cells() []core.Cell
	Color() core.Color
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Food)(nil)
)

// Draw paints every cell of d onto dst with the given border color.
func Draw(dst core.Canvas, d Drawable, border core.Color) {
	fill := d.Color()
	for _, c := range d.Cells() {
		dst.DrawCell(c, fill, border)
	}
}
