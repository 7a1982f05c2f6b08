package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// footerHeight is the number of rows reserved below the game for key help.
const footerHeight = 1

// Game is what the terminal platform drives: reset, step once per frame,
// and render into a character screen.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(screenW, screenH int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Seed() int64
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame *core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	frame := core.NewInputFrame()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: &frame,
	}
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	gameCfg := m.config
	gameCfg.ScreenH -= footerHeight
	m.game.Reset(gameCfg)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.game.Seed(), "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next frame. Quit and help are
// handled by the platform directly.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID())
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the game running and only resizes the drawing surface.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, msg.Height-footerHeight)
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick steps the game once and logs status transitions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	restarting := m.inputFrame.Has(core.ActionRestart) && prev.GameOver

	if !m.inputFrame.Empty() {
		m.logger.Debug("input", "actions", m.inputFrame.Sequence())
	}
	result := m.game.Step(*m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case restarting && !m.gameState.GameOver:
		m.logger.Info("game restarted", "seed", m.game.Seed())
	case !prev.GameOver && m.gameState.GameOver:
		m.logger.Info("game over", "game", m.game.ID())
	case prev.Paused != m.gameState.Paused:
		m.logger.Debug("pause toggled", "paused", m.gameState.Paused)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
