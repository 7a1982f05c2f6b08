// Package window runs the snake game in a graphical window using Ebiten.
// Each grid cell is drawn as a filled square of the configured pixel size.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	backgroundColor = color.Black
	foodColor       = color.RGBA{R: 230, G: 70, B: 70, A: 255}
	bodyColor       = color.RGBA{R: 60, G: 180, B: 100, A: 255}
	headColor       = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	pausedTint      = color.RGBA{A: 120}
	overTint        = color.RGBA{R: 120, A: 140}
)

// keyBindings maps physical keys to game actions.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
}

// Window adapts a snake.Game to ebiten.Game.
type Window struct {
	game     *snake.Game
	cellSize int
	logger   *log.Logger
	input    core.InputFrame
	last     core.GameState
}

// New creates a window for the game. The game must already be Reset.
func New(game *snake.Game, logger *log.Logger) *Window {
	return &Window{
		game:     game,
		cellSize: game.Config().Window.CellSize,
		logger:   logger,
		input:    core.NewInputFrame(),
	}
}

// Update polls input and steps the game once. Ebiten calls it at the TPS set in Run.
//
// Ebiten does not report the order of keys pressed within one tick, so at
// most one direction is taken per tick. A later press in a following tick
// still overrides it.
func (w *Window) Update() error {
	w.input.Clear()
	steered := false
	for _, b := range keyBindings {
		if steered && b.action.IsDirection() {
			continue
		}
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				w.input.Set(b.action)
				steered = steered || b.action.IsDirection()
				break
			}
		}
	}
	if w.input.Has(core.ActionQuit) {
		w.logger.Info("quit", "game", w.game.ID())
		return ebiten.Termination
	}

	res := w.game.Step(w.input)
	w.logTransition(res.State)
	return nil
}

func (w *Window) logTransition(state core.GameState) {
	switch {
	case w.last.GameOver && !state.GameOver:
		w.logger.Info("game restarted", "seed", w.game.Seed())
	case !w.last.GameOver && state.GameOver:
		eng := w.game.Engine()
		w.logger.Info("game over", "length", eng.Len(), "head", eng.Head(), "board_full", w.game.BoardFull())
	case w.last.Paused != state.Paused:
		w.logger.Debug("pause toggled", "paused", state.Paused)
	}
	w.last = state
}

// Draw paints the board: food first, then body from tail to head.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	eng := w.game.Engine()
	w.fillCell(screen, eng.Food(), foodColor)

	body := eng.Body()
	for i := len(body) - 1; i >= 0; i-- {
		c := bodyColor
		if i == 0 {
			c = headColor
		}
		w.fillCell(screen, body[i], c)
	}

	switch eng.Status() {
	case snake.StatusPaused:
		w.tint(screen, pausedTint)
	case snake.StatusOver:
		w.tint(screen, overTint)
	case snake.StatusPlaying:
	}
}

// CellRect returns the pixel rectangle of a grid cell.
func (w *Window) CellRect(p core.Point) core.Rect {
	return core.NewRect(p.X*w.cellSize, p.Y*w.cellSize, w.cellSize, w.cellSize)
}

func (w *Window) fillCell(screen *ebiten.Image, p core.Point, c color.Color) {
	if !w.game.Engine().Bounds().ContainsPoint(p) {
		return
	}
	r := w.CellRect(p)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (w *Window) tint(screen *ebiten.Image, c color.Color) {
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), c, false)
}

// Layout returns the fixed logical screen size: grid size times cell size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.game.Config().WindowSize()
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game *snake.Game, frameRate int, seed int64, logger *log.Logger) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// The whole board is always visible in a window
	screenW, screenH := game.RequiredScreen()
	game.Reset(core.RuntimeConfig{ScreenW: screenW, ScreenH: screenH, TickRate: frameRate, Seed: seed})

	w := New(game, logger)
	width, height := game.Config().WindowSize()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(frameRate)

	logger.Info("window opened", "width", width, "height", height, "fps", frameRate, "seed", seed)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
