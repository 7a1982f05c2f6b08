package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			require.Equal(t, ' ', s.Get(x, y), "new screen should be blank at (%d, %d)", x, y)
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, 0, s.Height())
	assert.Equal(t, "", s.String())
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))
	assert.Equal(t, ColorDefault, s.GetCell(5, 5).Color)

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '*', ColorBrightRed)

	cell := s.GetCell(1, 1)
	assert.Equal(t, '*', cell.Rune)
	assert.Equal(t, ColorBrightRed, cell.Color)

	s.Clear()
	assert.Equal(t, Cell{Rune: ' ', Color: ColorDefault}, s.GetCell(1, 1))
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	assert.Equal(t, "  Hello             ", s.Row(1))

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	assert.Equal(t, 'H', s.Get(x, 2))
	assert.Equal(t, 'i', s.Get(x+1, 2))
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "a─b")
	assert.Equal(t, "a─b   ", s.Row(0))
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := ' '
			if x >= 2 && x < 5 && y >= 2 && y < 5 {
				want = '#'
			}
			require.Equal(t, want, s.Get(x, y), "at (%d, %d)", x, y)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}, "\n")
	assert.Equal(t, expected, s.String())
	assert.Equal(t, ColorGray, s.GetCell(0, 0).Color)
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'A')
	s.Set(4, 4, 'B')

	s.Resize(3, 3)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, 'A', s.Get(1, 1))

	s.Resize(6, 6)
	assert.Equal(t, 'A', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(4, 4), "content cut by shrinking must not come back")
}

func TestScreenHLineAndRow(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 0, 3, '-')

	assert.Equal(t, " ---  ", s.Row(0))
	assert.Equal(t, "      ", s.Row(5))
}
