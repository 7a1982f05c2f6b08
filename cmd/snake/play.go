package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  W/A/S/D, arrows - Steer
  P/Esc           - Pause
  R               - Restart (after game over)
  ?               - Show all keys
  Q/Ctrl+C        - Quit

Examples:
  snake play
  snake play --seed 7
  snake play --log-file snake.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	// The terminal owns stderr while playing, so logs go nowhere unless a
	// log file is given.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Timing.FrameRate
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	game := snake.New(cfg)
	runErr := tui.Run(game, rc, logger)
	if runErr != nil {
		closeLog()
		fatal("running game: %v", runErr)
	}
}
