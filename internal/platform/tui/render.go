package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorPair identifies a foreground/background combination.
type colorPair struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsDefault() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	c[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetGlyph(x, y)

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Fg != start.Fg || g.Bg != start.Bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
