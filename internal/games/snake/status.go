package snake

// Status is the play state of the engine.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	// StatusOver is terminal. Only a fresh State leaves it.
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}
