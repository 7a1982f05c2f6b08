// Package snake implements the classic single-player Snake game: a pure
// simulation engine (State) and a frame-driven adapter (Game) that the
// platform layers drive with input and render from.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	// cellW is the number of terminal columns used for one grid cell, so
	// cells look roughly square.
	cellW     = 2
	hudHeight = 1
)

// Game wraps a State with frame pacing, input mapping and terminal rendering.
type Game struct {
	cfg     config.SnakeConfig
	rng     *rand.Rand
	seed    int64
	state   *State
	divider *core.Divider

	frame uint64 // Frames stepped since Reset
	moves uint64 // Simulation ticks that actually moved the snake

	screenW  int
	screenH  int
	tickRate int
	tooSmall bool
}

// New creates a Snake game for the given configuration. Call Reset before
// stepping it.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.cfg.Window.Title != "" {
		return g.cfg.Window.Title
	}
	return "Snake"
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = NewState(g.cfg.Grid.Width, g.cfg.Grid.Height, g.rng)
	if g.divider != nil && g.divider.Every() == core.Max(1, g.cfg.Timing.MoveEveryFrames) {
		g.divider.Reset()
	} else {
		g.divider = core.NewDivider(g.cfg.Timing.MoveEveryFrames)
	}
	g.frame = 0
	g.moves = 0
	g.tickRate = cfg.TickRate
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the terminal dimensions without touching the simulation.
// While the board does not fit, Step leaves the game frozen.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	reqW, reqH := g.RequiredScreen()
	g.tooSmall = screenW < reqW || screenH < reqH
}

// RequiredScreen returns the terminal size needed to draw the whole board.
func (g *Game) RequiredScreen() (int, int) {
	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	if g.state != nil {
		w, h = g.state.Width(), g.state.Height()
	}
	return w*cellW + 2, h + 2 + hudHeight
}

// Step advances the game by one frame. Input is applied immediately; the
// snake only moves when the frame divider fires. Terminal conditions are
// checked every frame after the move.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++

	if input.Has(core.ActionRestart) && g.state.Status() == StatusOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Every press is applied in order: each pause press toggles and the
	// last valid direction wins.
	for _, a := range input.Sequence() {
		if a == core.ActionPause {
			g.state.TogglePause()
			continue
		}
		if d, ok := directionFor(a); ok {
			g.state.SetDirection(d)
		}
	}

	moved := false
	if g.divider.Tick() && g.state.Status() == StatusPlaying {
		g.state.AdvanceTick()
		g.moves++
		moved = true
	}

	g.state.CheckTerminalConditions()

	return core.StepResult{State: g.State(), Moved: moved}
}

// State returns the current platform-facing game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		GameOver: g.state.Status() == StatusOver,
		Paused:   g.state.Status() == StatusPaused,
	}
}

// Engine exposes the simulation for read access by renderers.
func (g *Game) Engine() *State {
	return g.state
}

// Seed returns the seed of the current round.
func (g *Game) Seed() int64 {
	return g.seed
}

// BoardFull reports whether the game ended because the snake filled the grid.
func (g *Game) BoardFull() bool {
	return g.state.Status() == StatusOver && g.state.Len() >= g.state.Width()*g.state.Height()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		reqW, reqH := g.RequiredScreen()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Resize to %dx%d", reqW, reqH))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, core.ColorGray)
	g.drawCell(dst, board, g.state.Food(), '(', ')', core.ColorBrightRed)
	g.renderSnake(dst, board)

	switch g.state.Status() {
	case StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case StatusOver:
		title := "Game Over"
		if g.BoardFull() {
			title = "Board full!"
		}
		g.renderOverlay(dst, title, fmt.Sprintf("Length %d - press R to restart", g.state.Len()))
	case StatusPlaying:
	}
}

// boardRect returns the bordered board area, centred horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w := g.state.Width()*cellW + 2
	h := g.state.Height() + 2
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Length: %d", g.Title(), g.state.Len())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	body := g.state.Body()
	// Tail first so the head wins when cells overlap
	for i := len(body) - 1; i >= 0; i-- {
		if i == 0 {
			g.drawCell(dst, board, body[i], '█', '█', core.ColorBrightGreen)
		} else {
			g.drawCell(dst, board, body[i], '▓', '▓', core.ColorGreen)
		}
	}
}

// drawCell draws one grid cell inside the board border. Cells outside the
// grid are not drawn.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, p core.Point, left, right rune, c core.Color) {
	if !g.state.Bounds().ContainsPoint(p) {
		return
	}
	x := board.X + 1 + p.X*cellW
	y := board.Y + 1 + p.Y
	dst.SetColored(x, y, left, c)
	dst.SetColored(x+1, y, right, c)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawHLine(box.X+1, box.Y+2, boxW-2, '─')
	dst.DrawTextCentered(box.Y+3, line2)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Frame: %d, Moves: %d, Seed: %d\n", g.frame, g.moves, g.seed))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", g.state.Len(), g.state.Direction()))
	head, food := g.state.Head(), g.state.Food()
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, food.X, food.Y))
	b.WriteString(fmt.Sprintf("Status: %s\n", g.state.Status()))
	return b.String()
}
