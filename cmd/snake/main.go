// snake is a single-player Snake game for the terminal and the desktop.
//
// Usage:
//
//	snake play      - Play in the terminal
//	snake window    - Play in a graphical window
//	snake config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config YAML (default search: ~/.tui-snake/config.yaml, ./configs/snake.yaml)
//	--fps <rate>       - Override the frame rate
//	--seed <value>     - Set RNG seed for reproducible food placement
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat, grow, don't hit the walls",
	Long: `Snake is the classic single-player game on a fixed-size grid.

Steer with W/A/S/D or the arrow keys. The snake grows by one cell after
each piece of food and the game ends when it leaves the board or runs
into itself.

Available commands:
  play     - Play in the terminal
  window   - Play in a graphical window
  config   - Print the effective configuration

Examples:
  snake play
  snake play --seed 42
  snake window --fps 60
  snake config --config ./my-snake.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.FrameRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// newLogger writes to --log-file when set and to fallback otherwise.
// The returned close function must be called before exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// fatal prints an error and exits, matching the other subcommands.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
