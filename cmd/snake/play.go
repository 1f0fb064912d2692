package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagFrontend string
	flagSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start a game of Snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Esc             - Pause
  R                 - Reset the snake
  Ctrl+S            - Screenshot (tea frontend)
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --frontend tcell
  snake play --tps 15 --seed 42
  snake play --config ./my-snake.yaml --sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", registry.DefaultFrontend, "Frontend to play with (see 'snake frontends')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a chime when food is eaten")
}

func runPlay(cmd *cobra.Command, args []string) error {
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return fmt.Errorf("%w (run 'snake frontends' to list them)", err)
	}

	cfg, err := loadRuntime()
	if err != nil {
		return err
	}

	if flagFrontend != "window" {
		if err := checkTerminal(cfg.Board); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("play", "frontend", frontend.ID, "seed", cfg.Seed, "tps", cfg.TickRate)
	err = frontend.Run(ctx, registry.Options{
		Config: cfg,
		Logger: logger,
		Sound:  flagSound,
	})
	if err != nil {
		return fmt.Errorf("%s frontend: %w", frontend.ID, err)
	}
	return nil
}

// checkTerminal makes sure stdout is a terminal and logs how the board
// will fit it. Too small a terminal is not an error: the frontends show a
// notice until it is resized.
func checkTerminal(board core.Board) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal; try 'snake simulate' instead")
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return nil
	}
	screen := core.NewScreen(w, h)
	layout := core.NewBoardCanvas(screen, board, core.HUDHeight).Layout()
	logger.Debug("terminal", "size", fmt.Sprintf("%dx%d", w, h), "layout", layout)
	if layout == core.LayoutTooSmall {
		logger.Warn("terminal too small for the board", "size", fmt.Sprintf("%dx%d", w, h))
	}
	return nil
}
