package core

import "fmt"

// Color is a 24-bit RGB color packed as 0xRRGGBB.
// ColorDefault means "use the terminal's own color".
type Color uint32

// ColorDefault leaves the terminal foreground/background untouched.
const ColorDefault Color = 1 << 24

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// RGB returns the red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Palette holds the colors used to draw the board.
type Palette struct {
	Background Color
	Border     Color
	Food       Color
	Snake      Color
}

// DefaultPalette returns the classic black board with a green snake,
// a red apple and cyan cell borders.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB(0, 0, 0),
		Border:     RGB(93, 216, 228),
		Food:       RGB(255, 0, 0),
		Snake:      RGB(0, 255, 0),
	}
}
