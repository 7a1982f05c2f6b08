// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MinGridSize is the smallest accepted grid edge. The starting snake and
// food occupy columns and rows 1..3.
const MinGridSize = 4

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Window WindowConfig `yaml:"window"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the frame loop and the simulation cadence.
type TimingConfig struct {
	FrameRate       int `yaml:"frame_rate"`
	MoveEveryFrames int `yaml:"move_every_frames"`
}

// WindowConfig defines the graphical window.
type WindowConfig struct {
	Title    string `yaml:"title"`
	CellSize int    `yaml:"cell_size"`
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < MinGridSize || c.Grid.Height < MinGridSize {
		return fmt.Errorf("%w: grid must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, MinGridSize, MinGridSize, c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.FrameRate < 1 {
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalidConfig, c.Timing.FrameRate)
	}
	if c.Timing.MoveEveryFrames < 1 {
		return fmt.Errorf("%w: move_every_frames must be positive, got %d", ErrInvalidConfig, c.Timing.MoveEveryFrames)
	}
	if c.Window.CellSize < 1 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, c.Window.CellSize)
	}
	return nil
}

// MovesPerSecond returns the resulting simulation rate.
func (c SnakeConfig) MovesPerSecond() float64 {
	if c.Timing.MoveEveryFrames < 1 {
		return 0
	}
	return float64(c.Timing.FrameRate) / float64(c.Timing.MoveEveryFrames)
}

// WindowSize returns the graphical window size in pixels.
func (c SnakeConfig) WindowSize() (int, int) {
	return c.Grid.Width * c.Window.CellSize, c.Grid.Height * c.Window.CellSize
}
