package blast

import "github.com/AKGMI/BlastGame/internal/games/blast/engine"

// StateType is the adapter-level status, including UI-only states.
type StateType string

const (
	StatePlaying      StateType = "playing"
	StateShuffling    StateType = "shuffling"
	StateLevelCleared StateType = "level_cleared"
	StateWin          StateType = "win"
	StateGameOver     StateType = "game_over"
	StatePausedSmall  StateType = "paused_small_window"
)

// Snapshot captures the adapter and engine state for determinism tests.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Level  string
	Cursor [2]int
	State  StateType
	Engine engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.levelCleared:
		state = StateLevelCleared
	case g.eng.State() == engine.StateWon:
		state = StateWin
	case g.eng.State() == engine.StateLost:
		state = StateGameOver
	case g.shuffleIn > 0:
		state = StateShuffling
	}

	return Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Level:  g.level.ID,
		Cursor: [2]int{g.cursor.Row, g.cursor.Col},
		State:  state,
		Engine: g.eng.Snapshot(),
	}
}
