package engine

import "github.com/AKGMI/BlastGame/internal/games/blast/booster"

// Snapshot captures the complete engine state for determinism testing and debugging.
type Snapshot struct {
	State         GameState
	Score         int
	Target        int
	MovesLeft     int
	TotalMoves    int
	ShufflesLeft  int
	ShuffleNeeded bool
	Boosters      map[booster.Kind]int
	ActiveBooster string // "" when none is armed
	Board         []string
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	active := ""
	if kind, ok := e.boosters.Active(); ok {
		active = kind.String()
	}
	return Snapshot{
		State:         e.state,
		Score:         e.score.Value(),
		Target:        e.score.Target(),
		MovesLeft:     e.moves.Left(),
		TotalMoves:    e.moves.Total(),
		ShufflesLeft:  e.shuffles.Left(),
		ShuffleNeeded: e.shuffleNeeded,
		Boosters:      e.boosters.Inventory().Counts(),
		ActiveBooster: active,
		Board:         e.board.Layout(),
	}
}
