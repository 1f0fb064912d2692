//go:build window

// Package window is a desktop frontend drawing the board with raylib.
// It is only built with -tags window since raylib needs cgo and a display.
package window

import (
	"context"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/loop"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const caption = "Snake"

func init() {
	registry.Register(registry.Frontend{
		ID:    "window",
		Title: "Desktop window (raylib)",
		Run:   Run,
	})
}

// Driver owns the raylib window. Raylib keeps global state, so only one
// Driver may exist at a time and all calls must come from one goroutine.
type Driver struct {
	cellSize int32
	title    string
}

// New opens a canvasWidth x canvasHeight window paced at the tick rate.
func New(cfg core.RuntimeConfig) *Driver {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.CanvasWidth), int32(cfg.CanvasHeight), caption)
	rl.SetExitKey(0) // Escape pauses instead of closing
	rl.SetTargetFPS(int32(cfg.TickRate))

	return &Driver{
		cellSize: int32(cfg.CellSize),
		title:    caption,
	}
}

// PollInput returns the keys pressed during the last frame, in order.
// Closing the window reports ActionQuit.
func (d *Driver) PollInput() []core.Action {
	if rl.WindowShouldClose() {
		return []core.Action{core.ActionQuit}
	}
	var actions []core.Action
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if a := keyAction(k); a != core.ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// keyAction maps a raylib key code to a game action.
func keyAction(k int32) core.Action {
	switch k {
	case rl.KeyUp, rl.KeyW, rl.KeyK:
		return core.ActionUp
	case rl.KeyDown, rl.KeyS, rl.KeyJ:
		return core.ActionDown
	case rl.KeyLeft, rl.KeyA, rl.KeyH:
		return core.ActionLeft
	case rl.KeyRight, rl.KeyD, rl.KeyL:
		return core.ActionRight
	case rl.KeyP, rl.KeyEscape, rl.KeySpace:
		return core.ActionPause
	case rl.KeyR:
		return core.ActionRestart
	case rl.KeyQ:
		return core.ActionQuit
	}
	return core.ActionNone
}

// Clear begins a frame filled with bg.
func (d *Driver) Clear(bg core.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(rgba(bg))
}

// DrawCell fills the cell and outlines it with a one pixel border.
func (d *Driver) DrawCell(c core.Cell, fill, border core.Color) {
	x, y := int32(c.X)*d.cellSize, int32(c.Y)*d.cellSize
	rl.DrawRectangle(x, y, d.cellSize, d.cellSize, rgba(fill))
	rl.DrawRectangleLines(x, y, d.cellSize, d.cellSize, rgba(border))
}

// SetStatus shows the HUD line in the window caption.
func (d *Driver) SetStatus(status string) {
	title := caption
	if s := strings.TrimSpace(status); s != "" {
		title = s
	}
	if title != d.title {
		rl.SetWindowTitle(title)
		d.title = title
	}
}

// Present ends the frame. Raylib waits here to hold the target FPS.
func (d *Driver) Present() error {
	rl.EndDrawing()
	return nil
}

// Tick is a no-op: EndDrawing already paced the frame to the tick rate.
func (d *Driver) Tick() {}

// Close destroys the window.
func (d *Driver) Close() {
	rl.CloseWindow()
}

func rgba(c core.Color) rl.Color {
	if c.IsDefault() {
		return rl.Black
	}
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, 255)
}

// Run plays one session in a desktop window.
func Run(ctx context.Context, opts registry.Options) error {
	d := New(opts.Config)
	defer d.Close()
	if !rl.IsWindowReady() {
		return fmt.Errorf("open window: raylib could not create a %dx%d window",
			opts.Config.CanvasWidth, opts.Config.CanvasHeight)
	}

	chime := audio.Open(opts.Sound, opts.Logger)
	defer chime.Close()

	g := snake.New()
	g.Reset(opts.Config)

	opts.Logger.Info("starting", "driver", "window",
		"canvas", fmt.Sprintf("%dx%d", opts.Config.CanvasWidth, opts.Config.CanvasHeight))
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
