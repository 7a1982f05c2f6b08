package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame    uint64
	Moves    uint64
	Seed     int64
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Status   Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.state.Head()
	food := g.state.Food()

	return Snapshot{
		Frame:    g.frame,
		Moves:    g.moves,
		Seed:     g.seed,
		SnakeLen: g.state.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.state.Direction(),
		FoodX:    food.X,
		FoodY:    food.Y,
		Status:   g.state.Status(),
	}
}
