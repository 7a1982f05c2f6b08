package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable
	assert.False(t, f.Has(ActionUp))
	assert.True(t, f.Empty())

	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	assert.True(t, f.Has(ActionUp))
	assert.True(t, f.Has(ActionLeft))
	assert.False(t, f.Has(ActionPause))
	assert.Equal(t, []Action{ActionUp, ActionLeft, ActionUp}, f.Sequence())
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Clear()

	assert.True(t, f.Empty())
	assert.False(t, f.Has(ActionPause))

	f.Set(ActionDown)
	assert.Equal(t, []Action{ActionDown}, f.Sequence())
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		assert.True(t, a.IsDirection(), a.String())
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionRestart, ActionQuit} {
		assert.False(t, a.IsDirection(), a.String())
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Left", ActionLeft.String())
	assert.Equal(t, "Restart", ActionRestart.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
