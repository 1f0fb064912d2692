// Package loop runs the game against a pluggable display/input driver.
// One iteration is poll, step, render, present, tick; nothing inside an
// iteration blocks except the driver's own Tick.
package loop

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/logging"
)

// Driver owns the window or terminal, the input source and the frame clock.
type Driver interface {
	core.Canvas

	// PollInput returns the actions received since the last call, in order.
	// It must not block.
	PollInput() []core.Action

	// Present makes the frame drawn since the last Clear visible.
	Present() error

	// Tick waits out the rest of the current tick budget.
	Tick()
}

// StatusSetter is implemented by drivers that can show a HUD line.
type StatusSetter interface {
	SetStatus(status string)
}

// Game is the part of the snake game the loop drives.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Render(dst core.Canvas)
	Status() string
}

// Loop couples a game with a driver.
type Loop struct {
	game   Game
	driver Driver
	logger *log.Logger
	onStep func(core.StepResult)
	ticks  uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithStepHook registers fn to be called after every simulation step.
func WithStepHook(fn func(core.StepResult)) Option {
	return func(l *Loop) {
		l.onStep = fn
	}
}

// New creates a loop. The game must already be Reset.
func New(game Game, driver Driver, opts ...Option) *Loop {
	l := &Loop{
		game:   game,
		driver: driver,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Ticks returns the number of completed iterations.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Run iterates until the driver reports ActionQuit or ctx is cancelled.
// Both are normal terminations and return nil. A quit action ends the loop
// before the tick is simulated. Present failures are returned wrapped.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("loop started")

	frame := core.NewInputFrame()
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop cancelled", "tick", l.ticks)
			return nil
		default:
		}

		frame.Clear()
		for _, a := range l.driver.PollInput() {
			if a == core.ActionQuit {
				l.logger.Info("quit requested", "tick", l.ticks)
				return nil
			}
			frame.Set(a)
		}

		result := l.game.Step(frame)
		l.ticks++
		l.observe(result)

		l.game.Render(l.driver)
		if s, ok := l.driver.(StatusSetter); ok {
			s.SetStatus(l.game.Status())
		}
		if err := l.driver.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", l.ticks, err)
		}

		l.driver.Tick()
	}
}

func (l *Loop) observe(result core.StepResult) {
	if result.Reset {
		l.logger.Info("snake reset", "tick", l.ticks)
	}
	if result.Ate {
		l.logger.Debug("food eaten", "tick", l.ticks, "length", result.State.Length)
	}
	if l.onStep != nil {
		l.onStep(result)
	}
}
