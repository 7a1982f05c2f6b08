// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one
// frame interval at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(core.Max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
