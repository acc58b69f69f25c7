package game

// State is the session state machine's current state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}
