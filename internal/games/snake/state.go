package snake

import (
	"math/rand"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MinGridSize is the smallest grid edge that fits the fixed starting layout.
const MinGridSize = 4

// Rand is the source of randomness used for food placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// State is the snake simulation: body, heading, food and play status on a
// fixed-size grid. It is not safe for concurrent use; a single platform loop
// owns it.
type State struct {
	width  int
	height int
	rng    Rand

	body      []core.Point // Head at index 0, never empty
	direction Direction
	food      core.Point
	status    Status
}

// NewState returns the starting position on a width x height grid:
// body (3,1),(2,1),(1,1) heading right, food at (3,3), playing.
// Dimensions below MinGridSize are raised to it. A nil rng falls back to a
// time-seeded source.
func NewState(width, height int, rng Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &State{
		width:  core.Max(width, MinGridSize),
		height: core.Max(height, MinGridSize),
		rng:    rng,
		body: []core.Point{
			core.Pt(3, 1), // Head
			core.Pt(2, 1),
			core.Pt(1, 1),
		},
		direction: DirRight,
		food:      core.Pt(3, 3),
		status:    StatusPlaying,
	}
}

// SetDirection changes the heading. Reversals and changes after game over
// are ignored. Changes while paused are kept for the next tick.
func (s *State) SetDirection(d Direction) {
	if s.status == StatusOver || d.IsOpposite(s.direction) {
		return
	}
	s.direction = d
}

// TogglePause switches between playing and paused. It does nothing once the
// game is over.
func (s *State) TogglePause() {
	switch s.status {
	case StatusPlaying:
		s.status = StatusPaused
	case StatusPaused:
		s.status = StatusPlaying
	case StatusOver:
	}
}

// AdvanceTick moves the snake one cell. If the head was on the food before
// the move the tail stays (growth by one) and the food is relocated.
// Walls and self collision are left to CheckTerminalConditions.
func (s *State) AdvanceTick() {
	switch s.status {
	case StatusPaused, StatusOver:
		return
	case StatusPlaying:
	}

	head := s.body[0]
	next := head.Add(s.direction.Delta())
	ate := head.Equals(s.food)

	if !ate {
		s.body = s.body[:len(s.body)-1]
	}
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next

	if ate {
		s.relocateFood()
	}
}

// CheckTerminalConditions ends the game when the head has left the grid or
// overlaps another body cell. Safe to call every frame.
func (s *State) CheckTerminalConditions() {
	switch s.status {
	case StatusOver:
		return
	case StatusPlaying, StatusPaused:
	}

	head := s.body[0]
	if !s.Bounds().ContainsPoint(head) {
		s.status = StatusOver
		return
	}
	for _, p := range s.body[1:] {
		if p.Equals(head) {
			s.status = StatusOver
			return
		}
	}
}

// relocateFood moves food to a uniformly chosen free cell. When the body
// covers the whole grid there is nowhere to go and the game is over.
func (s *State) relocateFood() {
	bounds := s.Bounds()
	occupied := intmap.New[int, struct{}](len(s.body))
	for _, p := range s.body {
		if bounds.ContainsPoint(p) {
			occupied.Put(s.index(p), struct{}{})
		}
	}

	free := make([]core.Point, 0, s.width*s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			p := core.Pt(x, y)
			if _, taken := occupied.Get(s.index(p)); !taken {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		s.status = StatusOver
		return
	}
	s.food = free[s.rng.Intn(len(free))]
}

func (s *State) index(p core.Point) int {
	return p.Y*s.width + p.X
}

// Bounds returns the playable area.
func (s *State) Bounds() core.Rect {
	return core.NewRect(0, 0, s.width, s.height)
}

// Width returns the grid width in cells.
func (s *State) Width() int { return s.width }

// Height returns the grid height in cells.
func (s *State) Height() int { return s.height }

// Body returns a copy of the body, head first.
func (s *State) Body() []core.Point {
	return append([]core.Point(nil), s.body...)
}

// Head returns the snake's leading cell.
func (s *State) Head() core.Point { return s.body[0] }

// Len returns the body length.
func (s *State) Len() int { return len(s.body) }

// Food returns the food cell.
func (s *State) Food() core.Point { return s.food }

// Direction returns the current heading.
func (s *State) Direction() Direction { return s.direction }

// Status returns the play status.
func (s *State) Status() Status { return s.status }

// Occupies reports whether any body cell is at p.
func (s *State) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg.Equals(p) {
			return true
		}
	}
	return false
}
