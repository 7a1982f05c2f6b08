package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in Snake configuration.
func Default() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Timing: TimingConfig{
			FrameRate:       30,
			MoveEveryFrames: 10,
		},
		Window: WindowConfig{
			Title:    "Snake",
			CellSize: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
