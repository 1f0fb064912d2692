// Package headless provides a scripted driver with no display, used by the
// simulate command and by tests.
package headless

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used in the text rendering of a frame.
const (
	emptyGlyph = '.'
	snakeGlyph = 'o'
	foodGlyph  = '*'
	otherGlyph = '?'
)

// Script maps a 1-based tick number to the actions delivered on that tick.
type Script map[int][]core.Action

// ParseScript parses a comma separated list of "tick:action" pairs such as
// "3:down,7:left,9:pause". Actions are the direction names plus pause,
// restart and quit.
func ParseScript(s string) (Script, error) {
	script := make(Script)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		tickStr, name, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("move %q: expected tick:action", item)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(tickStr))
		if err != nil || tick < 1 {
			return nil, fmt.Errorf("move %q: tick must be a positive integer", item)
		}
		a, err := ParseAction(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", item, err)
		}
		script[tick] = append(script[tick], a)
	}
	return script, nil
}

// ParseAction converts a lowercase action name to an Action.
func ParseAction(name string) (core.Action, error) {
	switch strings.ToLower(name) {
	case "pause":
		return core.ActionPause, nil
	case "restart", "reset":
		return core.ActionRestart, nil
	case "quit":
		return core.ActionQuit, nil
	}
	d, err := core.ParseDirection(strings.ToLower(name))
	if err != nil {
		return core.ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return core.ActionFor(d), nil
}

// String renders the script in the form ParseScript accepts, ordered by tick.
func (s Script) String() string {
	ticks := make([]int, 0, len(s))
	for t := range s {
		ticks = append(ticks, t)
	}
	sort.Ints(ticks)

	var parts []string
	for _, t := range ticks {
		for _, a := range s[t] {
			parts = append(parts, fmt.Sprintf("%d:%s", t, strings.ToLower(a.String())))
		}
	}
	return strings.Join(parts, ",")
}

// Driver is a display-less driver. It replays a Script and reports
// ActionQuit once MaxTicks ticks have run.
type Driver struct {
	board    core.Board
	palette  core.Palette
	script   Script
	maxTicks int

	polls  int
	ticks  int
	status string
	back   []rune
	front  []rune
}

// New creates a headless driver for board. maxTicks <= 0 means the driver
// never quits on its own.
func New(board core.Board, palette core.Palette, script Script, maxTicks int) *Driver {
	d := &Driver{
		board:    board,
		palette:  palette,
		script:   script,
		maxTicks: maxTicks,
		back:     make([]rune, board.Area()),
		front:    make([]rune, board.Area()),
	}
	d.Clear(palette.Background)
	d.Present()
	return d
}

// PollInput returns the scripted actions for the upcoming tick.
func (d *Driver) PollInput() []core.Action {
	d.polls++
	if d.maxTicks > 0 && d.polls > d.maxTicks {
		return []core.Action{core.ActionQuit}
	}
	return d.script[d.polls]
}

// Clear fills the back buffer with empty cells.
func (d *Driver) Clear(bg core.Color) {
	for i := range d.back {
		d.back[i] = emptyGlyph
	}
}

// DrawCell marks c with the glyph of its fill color.
func (d *Driver) DrawCell(c core.Cell, fill, border core.Color) {
	if !d.board.Contains(c) {
		return
	}
	g := otherGlyph
	switch fill {
	case d.palette.Snake:
		g = snakeGlyph
	case d.palette.Food:
		g = foodGlyph
	}
	d.back[c.Y*d.board.Width+c.X] = g
}

// Present swaps the back buffer to the front.
func (d *Driver) Present() error {
	copy(d.front, d.back)
	return nil
}

// Tick counts the tick without waiting.
func (d *Driver) Tick() {
	d.ticks++
}

// SetStatus records the HUD line.
func (d *Driver) SetStatus(status string) {
	d.status = status
}

// Status returns the last HUD line.
func (d *Driver) Status() string {
	return d.status
}

// Ticks returns the number of completed ticks.
func (d *Driver) Ticks() int {
	return d.ticks
}

// Frame returns the last presented frame, one line per board row.
func (d *Driver) Frame() string {
	var b strings.Builder
	for y := 0; y < d.board.Height; y++ {
		b.WriteString(string(d.front[y*d.board.Width : (y+1)*d.board.Width]))
		b.WriteByte('\n')
	}
	return b.String()
}
