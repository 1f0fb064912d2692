// Package term is a full-screen terminal frontend built directly on tcell.
// It drives the game through the fixed-step loop instead of an event model.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/loop"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register(registry.Frontend{
		ID:    "tcell",
		Title: "Full-screen terminal (tcell)",
		Run:   Run,
	})
}

// eventBuffer bounds queued terminal events between two polls.
const eventBuffer = 64

// Driver renders onto a tcell screen and feeds key presses to the loop.
type Driver struct {
	screen   tcell.Screen
	events   chan tcell.Event
	board    core.Board
	buf      *core.Screen
	canvas   *core.BoardCanvas
	status   string
	governor *core.Governor
}

// New opens the terminal and starts the event pump.
func New(cfg core.RuntimeConfig) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return newDriver(screen, cfg), nil
}

// newDriver wraps an initialized screen.
func newDriver(screen tcell.Screen, cfg core.RuntimeConfig) *Driver {
	screen.HideCursor()
	d := &Driver{
		screen:   screen,
		events:   make(chan tcell.Event, eventBuffer),
		board:    cfg.Board,
		buf:      core.NewScreen(0, 0),
		governor: core.NewGovernor(cfg.TickRate),
	}
	d.layout()

	go d.pump()
	return d
}

// pump forwards terminal events until the screen is finalized.
func (d *Driver) pump() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		default:
			// The loop is behind; drop the event rather than block tcell
		}
	}
}

// layout resizes the buffer to the terminal and picks a board layout.
func (d *Driver) layout() {
	w, h := d.screen.Size()
	d.buf.Resize(w, h)
	d.canvas = core.NewBoardCanvas(d.buf, d.board, core.HUDHeight)
}

// PollInput drains pending terminal events without blocking.
func (d *Driver) PollInput() []core.Action {
	var actions []core.Action
	for {
		select {
		case ev := <-d.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a := keyAction(ev.Key(), ev.Rune()); a != core.ActionNone {
					actions = append(actions, a)
				}
			case *tcell.EventResize:
				d.screen.Sync()
				d.layout()
			}
		default:
			return actions
		}
	}
}

// keyAction maps a key press to a game action.
func keyAction(key tcell.Key, r rune) core.Action {
	switch key {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch r {
		case 'w', 'W', 'k':
			return core.ActionUp
		case 's', 'S', 'j':
			return core.ActionDown
		case 'a', 'A', 'h':
			return core.ActionLeft
		case 'd', 'D', 'l':
			return core.ActionRight
		case 'p', 'P', ' ':
			return core.ActionPause
		case 'r', 'R':
			return core.ActionRestart
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// Clear starts a new frame and paints the board background.
func (d *Driver) Clear(bg core.Color) {
	d.buf.Clear()
	d.canvas.Clear(bg)
}

// DrawCell draws one board cell.
func (d *Driver) DrawCell(c core.Cell, fill, border core.Color) {
	d.canvas.DrawCell(c, fill, border)
}

// SetStatus sets the HUD line shown on the next Present.
func (d *Driver) SetStatus(status string) {
	d.status = status
}

// Present copies the frame to the terminal.
func (d *Driver) Present() error {
	d.buf.DrawHUD(d.status)
	if !d.canvas.Fits() {
		d.buf.DrawTooSmall(d.board)
	}

	for y := 0; y < d.buf.Height(); y++ {
		for x := 0; x < d.buf.Width(); x++ {
			g := d.buf.GetGlyph(x, y)
			d.screen.SetContent(x, y, g.Rune, nil, style(g))
		}
	}
	d.screen.Show()
	return nil
}

// Tick waits for the next tick.
func (d *Driver) Tick() {
	d.governor.Tick()
}

// Close restores the terminal.
func (d *Driver) Close() {
	d.screen.Fini()
}

func style(g core.Glyph) tcell.Style {
	return tcell.StyleDefault.Foreground(color(g.Fg)).Background(color(g.Bg))
}

func color(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Run plays one session in the terminal.
func Run(ctx context.Context, opts registry.Options) error {
	d, err := New(opts.Config)
	if err != nil {
		return err
	}
	defer d.Close()

	chime := audio.Open(opts.Sound, opts.Logger)
	defer chime.Close()

	g := snake.New()
	g.Reset(opts.Config)

	opts.Logger.Info("starting", "driver", "tcell", "board", fmt.Sprintf("%dx%d", d.board.Width, d.board.Height))
	l := loop.New(g, d,
		loop.WithLogger(opts.Logger),
		loop.WithStepHook(func(r core.StepResult) {
			if r.Ate {
				chime.Eat()
			}
		}),
	)
	return l.Run(ctx)
}
