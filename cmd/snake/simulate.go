package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/headless"
	"github.com/vovakirdan/tui-snake/internal/platform/loop"
)

var (
	flagTicks int
	flagMoves string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted game without a display",
	Long: `Runs the game for a fixed number of ticks with scripted input and
prints the final board. Moves are comma separated tick:action pairs; actions
are up, down, left, right, pause and restart. Ticks count from 1.

The same seed and moves always produce the same board.

Examples:
  snake simulate --seed 7
  snake simulate --ticks 40 --moves "3:down,9:left,20:up" --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to run")
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted input, e.g. \"3:down,7:left\"")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	script, err := headless.ParseScript(flagMoves)
	if err != nil {
		return err
	}

	cfg, err := loadRuntime()
	if err != nil {
		return err
	}

	g := snake.New()
	g.Reset(cfg)
	d := headless.New(cfg.Board, cfg.Palette, script, flagTicks)

	if err := loop.New(g, d, loop.WithLogger(logger)).Run(cmd.Context()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.TrimSpace(d.Status()))
	fmt.Fprint(out, d.Frame())

	snap := g.Snapshot()
	fmt.Fprintf(out, "seed=%d ticks=%d length=%d eaten=%d head=%s dir=%s",
		cfg.Seed, snap.Tick, len(snap.Body), snap.Score, snap.Head(), snap.Dir)
	if snap.FoodPlaced {
		fmt.Fprintf(out, " food=%s", snap.Food)
	}
	fmt.Fprintln(out)
	return nil
}
