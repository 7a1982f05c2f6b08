package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDirectionOppositeAndDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
		delta    core.Point
		name     string
	}{
		{DirUp, DirDown, core.Pt(0, -1), "up"},
		{DirDown, DirUp, core.Pt(0, 1), "down"},
		{DirLeft, DirRight, core.Pt(-1, 0), "left"},
		{DirRight, DirLeft, core.Pt(1, 0), "right"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.opposite, tc.dir.Opposite())
			assert.True(t, tc.dir.IsOpposite(tc.opposite))
			assert.False(t, tc.dir.IsOpposite(tc.dir))
			assert.Equal(t, tc.delta, tc.dir.Delta())
			// A step forward and a step back cancel out
			assert.Equal(t, core.Pt(0, 0), tc.dir.Delta().Add(tc.opposite.Delta()))
			assert.Equal(t, tc.name, tc.dir.String())
		})
	}
}

func TestDirectionForAction(t *testing.T) {
	d, ok := directionFor(core.ActionLeft)
	assert.True(t, ok)
	assert.Equal(t, DirLeft, d)

	_, ok = directionFor(core.ActionPause)
	assert.False(t, ok)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "playing", StatusPlaying.String())
	assert.Equal(t, "paused", StatusPaused.String())
	assert.Equal(t, "over", StatusOver.String())
	assert.Equal(t, "unknown", Status(42).String())
}
