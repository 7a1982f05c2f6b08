package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".tui-snake", "config.yaml"), "grid:\n  width: 12\n  height: 8\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Grid.Width)
	assert.Equal(t, 8, cfg.Grid.Height)
	// Omitted sections keep their defaults
	assert.Equal(t, Default().Timing, cfg.Timing)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my-snake.yaml")
	writeFile(t, path, `
grid:
  width: 5
  height: 5
timing:
  frame_rate: 60
  move_every_frames: 4
window:
  title: Tiny
  cell_size: 32
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SnakeConfig{
		Grid:   GridConfig{Width: 5, Height: 5},
		Timing: TimingConfig{FrameRate: 60, MoveEveryFrames: 4},
		Window: WindowConfig{Title: "Tiny", CellSize: 32},
	}, cfg)
	assert.InDelta(t, 15.0, cfg.MovesPerSecond(), 1e-9)

	w, h := cfg.WindowSize()
	assert.Equal(t, 160, w)
	assert.Equal(t, 160, h)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "grid: [not, a, map")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse")

	small := filepath.Join(dir, "small.yaml")
	writeFile(t, small, "grid:\n  width: 3\n  height: 10\n")
	_, err = Load(small)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		valid  bool
	}{
		{"default", func(*SnakeConfig) {}, true},
		{"minimum grid", func(c *SnakeConfig) { c.Grid = GridConfig{Width: 4, Height: 4} }, true},
		{"narrow grid", func(c *SnakeConfig) { c.Grid.Width = 3 }, false},
		{"short grid", func(c *SnakeConfig) { c.Grid.Height = 0 }, false},
		{"zero frame rate", func(c *SnakeConfig) { c.Timing.FrameRate = 0 }, false},
		{"zero move period", func(c *SnakeConfig) { c.Timing.MoveEveryFrames = 0 }, false},
		{"zero cell size", func(c *SnakeConfig) { c.Window.CellSize = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 30

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "move_every_frames: 10")

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}
