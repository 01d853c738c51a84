package engine

// GameState is the outcome status of a game.
type GameState int

const (
	StatePlaying GameState = iota
	StateWon
	StateLost
)

// String returns the string representation of a state.
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the game has ended.
func (s GameState) IsTerminal() bool {
	return s == StateWon || s == StateLost
}
