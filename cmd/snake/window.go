package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a graphical window",
	Long: `Open a desktop window sized grid x cell_size pixels.

Controls:
  W/A/S/D, arrows - Steer
  Esc/P           - Pause
  R               - Restart (after game over)
  Q               - Quit

Examples:
  snake window
  snake window --fps 60 --seed 1`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	game := snake.New(cfg)
	if runErr := window.Run(game, cfg.Timing.FrameRate, flagSeed, logger); runErr != nil {
		closeLog()
		fatal("running game: %v", runErr)
	}
}
