// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is returned (wrapped) when settings fail validation.
var ErrInvalid = errors.New("invalid config")

// Settings contains all configuration for the snake game.
type Settings struct {
	Canvas   CanvasSettings `yaml:"canvas"`
	CellSize int            `yaml:"cell_size"` // Pixels per board cell
	TickRate int            `yaml:"tick_rate"` // Ticks per second
	Seed     int64          `yaml:"seed"`      // 0 = derive from the clock
	Colors   ColorSettings  `yaml:"colors"`
	Snake    SnakeSettings  `yaml:"snake"`
}

// CanvasSettings defines the pixel canvas size.
type CanvasSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ColorSettings holds hex color strings such as "#5dd8e4".
type ColorSettings struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Food       string `yaml:"food"`
	Snake      string `yaml:"snake"`
}

// SnakeSettings defines the starting snake.
type SnakeSettings struct {
	InitialBody []Point `yaml:"initial_body"` // Head first
	Direction   string  `yaml:"direction"`    // up, down, left or right
}

// Point is a board cell in YAML form.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Board returns the grid size implied by the canvas and cell size.
func (s Settings) Board() core.Board {
	if s.CellSize <= 0 {
		return core.Board{}
	}
	return core.NewBoard(s.Canvas.Width/s.CellSize, s.Canvas.Height/s.CellSize)
}

// Validate checks the settings and returns an error wrapping ErrInvalid
// describing the first problem found.
func (s Settings) Validate() error {
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, s.CellSize)
	}
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalid, s.Canvas.Width, s.Canvas.Height)
	}
	if s.Canvas.Width%s.CellSize != 0 || s.Canvas.Height%s.CellSize != 0 {
		return fmt.Errorf("%w: canvas %dx%d is not a multiple of cell_size %d",
			ErrInvalid, s.Canvas.Width, s.Canvas.Height, s.CellSize)
	}
	board := s.Board()
	if board.Width < 3 || board.Height < 1 {
		return fmt.Errorf("%w: board must be at least 3x1 cells, got %dx%d", ErrInvalid, board.Width, board.Height)
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, s.TickRate)
	}
	if _, err := s.palette(); err != nil {
		return err
	}
	return s.validateSnake(board)
}

func (s Settings) validateSnake(board core.Board) error {
	body := s.body()
	if len(body) == 0 {
		return fmt.Errorf("%w: snake.initial_body is empty", ErrInvalid)
	}
	if len(body) >= board.Area() {
		return fmt.Errorf("%w: snake of length %d leaves no room for food", ErrInvalid, len(body))
	}

	seen := make(map[core.Cell]bool, len(body))
	for i, c := range body {
		if !board.Contains(c) {
			return fmt.Errorf("%w: segment %d %s is off the %dx%d board", ErrInvalid, i, c, board.Width, board.Height)
		}
		if seen[c] {
			return fmt.Errorf("%w: segment %d %s overlaps another segment", ErrInvalid, i, c)
		}
		seen[c] = true
		if i > 0 && !board.Adjacent(body[i-1], c) {
			return fmt.Errorf("%w: segment %d %s is not adjacent to %s", ErrInvalid, i, c, body[i-1])
		}
	}

	dir, err := core.ParseDirection(s.Snake.Direction)
	if err != nil {
		return fmt.Errorf("%w: snake.direction: %v", ErrInvalid, err)
	}
	if len(body) > 1 && board.Step(body[0], dir) == body[1] {
		return fmt.Errorf("%w: direction %s points into the snake's own neck", ErrInvalid, dir)
	}
	return nil
}

func (s Settings) body() []core.Cell {
	body := make([]core.Cell, len(s.Snake.InitialBody))
	for i, p := range s.Snake.InitialBody {
		body[i] = core.Cell{X: p.X, Y: p.Y}
	}
	return body
}

func (s Settings) palette() (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		name  string
		value string
		dst   *core.Color
	}{
		{"background", s.Colors.Background, &p.Background},
		{"border", s.Colors.Border, &p.Border},
		{"food", s.Colors.Food, &p.Food},
		{"snake", s.Colors.Snake, &p.Snake},
	}
	for _, f := range fields {
		c, err := ParseColor(f.value)
		if err != nil {
			return p, fmt.Errorf("%w: colors.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// ParseColor parses a "#rrggbb" (or "#rgb") hex string.
func ParseColor(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.ColorDefault, err
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}

// Runtime validates the settings and converts them into the game's
// runtime configuration.
func (s Settings) Runtime() (core.RuntimeConfig, error) {
	if err := s.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	palette, _ := s.palette()
	dir, _ := core.ParseDirection(s.Snake.Direction)

	return core.RuntimeConfig{
		Board:        s.Board(),
		InitialBody:  s.body(),
		InitialDir:   dir,
		TickRate:     s.TickRate,
		Seed:         s.Seed,
		Palette:      palette,
		CellSize:     s.CellSize,
		CanvasWidth:  s.Canvas.Width,
		CanvasHeight: s.Canvas.Height,
	}, nil
}

// Marshal renders the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
