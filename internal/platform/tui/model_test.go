package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	g := snake.New(config.Default())
	rc := core.DefaultConfig()
	rc.Seed = 3
	m := NewModel(g, rc, nil)
	require.NotNil(t, m.Init())
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelAppliesInputOnTick(t *testing.T) {
	m, g := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, snake.DirRight, g.Engine().Direction(), "input waits for the next frame")

	m, cmd = update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "ticks keep scheduling the next frame")
	assert.Equal(t, snake.DirDown, g.Engine().Direction())

	// The frame's input is consumed
	assert.True(t, m.inputFrame.Empty())
}

func TestModelPlaysInStandardTerminal(t *testing.T) {
	g := snake.New(config.Default())
	m := NewModel(g, core.DefaultConfig(), nil)
	require.NotNil(t, m.Init())

	for i := 0; i < 60; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	assert.Equal(t, core.Pt(9, 1), g.Engine().Head())
	assert.NotContains(t, m.View(), "Window too small")
}

func TestModelPauseAndGameOver(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.True(t, m.gameState.Paused)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, runeKey('w'))
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	assert.True(t, m.gameState.GameOver)
	assert.Equal(t, snake.StatusOver, g.Engine().Status())

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.False(t, m.gameState.GameOver)
	assert.Equal(t, 3, g.Engine().Len())
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Length: 3")
	assert.Contains(t, view, "quit")

	m, _ = update(t, m, runeKey('?'))
	assert.Contains(t, m.View(), "left")
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, snake.DirDown, g.Engine().Direction(), "resize does not restart the game")
	assert.Contains(t, m.View(), "Window too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.NotContains(t, m.View(), "Window too small")
}
