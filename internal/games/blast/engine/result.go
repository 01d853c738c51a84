package engine

import (
	"github.com/AKGMI/BlastGame/internal/games/blast/booster"
	"github.com/AKGMI/BlastGame/internal/games/blast/core"
)

// SuperTileCreation describes a super tile earned by a large match.
type SuperTileCreation struct {
	Position core.Position
	Variant  core.Variant
}

// MoveResult describes everything one tile click changed.
// A click that was rejected has Applied == false and only echoes counters
// plus the ClickedGroup for feedback.
type MoveResult struct {
	Applied          bool
	Removed          []core.Position
	MovedTiles       []core.Move
	NewTiles         []core.Spawn
	Swapped          *core.Swap
	CreatedSuperTile *SuperTileCreation
	Points           int
	MovesLeft        int
	State            GameState
	ChainLength      int
	ExplosionCenters []core.Position
	ClickedGroup     []core.Position
	// ShuffleNeeded is set on the action that left the board without moves.
	ShuffleNeeded bool
}

// BoosterResult describes one click while a booster was armed.
type BoosterResult struct {
	MoveResult
	Booster          booster.Kind
	NeedsSecondClick bool
}

// ShuffleReason tells whether a shuffle was requested or forced.
type ShuffleReason string

const (
	ShuffleManual ShuffleReason = "manual"
	ShuffleAuto   ShuffleReason = "auto"
)

// ShuffleResult describes a shuffle attempt.
type ShuffleResult struct {
	Reason       ShuffleReason
	Shuffled     bool
	Playable     bool
	ShufflesLeft int
	State        GameState
}
