package engine

// State is the game phase
type State uint8

const (
	// StateBegin waits for the first flap; ground scrolls, bird hovers
	StateBegin State = iota
	// StatePlaying runs the full simulation
	StatePlaying
	// StateGameOver follows the first collision
	StateGameOver
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateBegin:
		return "Begin"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
