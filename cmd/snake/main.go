// snake is the classic Snake game for the terminal (and, built with
// -tags window, a desktop window).
//
// Usage:
//
//	snake play               - Play (Bubble Tea frontend by default)
//	snake frontends          - List available frontends
//	snake simulate           - Run a scripted game without a display
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--tps <rate>        - Override the tick rate (default: from config, 10)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a file (default: no logging)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/logging"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/term"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagTPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string

	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game: steer the snake to the food and grow.
The board wraps around at the edges and there is no game over.

Available commands:
  play       - Start a game
  frontends  - Show all available frontends
  simulate   - Run a scripted game without a display
  config     - Print the effective configuration

Examples:
  snake play
  snake play --frontend tcell --sound
  snake simulate --ticks 50 --moves "3:down,10:left"
  snake config > ~/.snake/snake.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Tick rate in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	l, closer, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	return nil
}

// loadSettings loads the config file and applies the global flag overrides.
func loadSettings() (config.Settings, string, error) {
	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return settings, source, err
	}
	if flagTPS != 0 {
		settings.TickRate = flagTPS
	}
	if flagSeed != 0 {
		settings.Seed = flagSeed
	}
	if err := settings.Validate(); err != nil {
		return settings, source, err
	}
	logger.Debug("config loaded", "source", source)
	return settings, source, nil
}

// loadRuntime returns the runtime config, picking a clock seed when none is set.
func loadRuntime() (core.RuntimeConfig, error) {
	settings, _, err := loadSettings()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	cfg, err := settings.Runtime()
	if err != nil {
		return cfg, err
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}
