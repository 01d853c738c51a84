package booster

import "github.com/AKGMI/BlastGame/internal/games/blast/core"

// BombRadius is the Chebyshev radius cleared by the bomb booster.
const BombRadius = 1

// Bomb clears a 3x3 block around the clicked cell. Each target scores one point.
type Bomb struct{}

// NewBomb creates a bomb booster.
func NewBomb() *Bomb {
	return &Bomb{}
}

// Kind returns KindBomb.
func (*Bomb) Kind() Kind {
	return KindBomb
}

// CanActivate returns true for any cell on the board.
func (*Bomb) CanActivate(b *core.Board, pos core.Position) bool {
	return b.IsValid(pos)
}

// Activate returns the block around pos.
func (bb *Bomb) Activate(b *core.Board, pos core.Position) Result {
	if !bb.CanActivate(b, pos) {
		return Result{}
	}
	targets := b.Area(pos, BombRadius)
	center := pos
	return Result{
		Success:         true,
		Removed:         targets,
		Points:          len(targets),
		ExplosionCenter: &center,
	}
}

// NeedsSecondClick is always false for the bomb.
func (*Bomb) NeedsSecondClick() bool {
	return false
}

// Hint returns the player prompt.
func (*Bomb) Hint() string {
	return "Choose a tile to blow up"
}

// Reset does nothing; the bomb holds no state.
func (*Bomb) Reset() {}
