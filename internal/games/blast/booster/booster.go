// Package booster implements player-selectable alternate moves (Bomb, Swap)
// and the limited inventory they are drawn from.
package booster

import (
	"github.com/AKGMI/BlastGame/internal/games/blast/core"
)

// Kind identifies a booster.
type Kind int

const (
	KindBomb Kind = iota + 1
	KindSwap
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindBomb:
		return "bomb"
	case KindSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// AllKinds returns every booster kind in display order.
func AllKinds() []Kind {
	return []Kind{KindBomb, KindSwap}
}

// Result is the outcome of one click while a booster is armed.
// The strategy never touches removal or scoring; the caller applies Removed.
type Result struct {
	Success          bool
	NeedsSecondClick bool
	Removed          []core.Position
	Swapped          *core.Swap
	Points           int
	ExplosionCenter  *core.Position
}

// Strategy is the common contract of all boosters.
type Strategy interface {
	Kind() Kind
	CanActivate(b *core.Board, pos core.Position) bool
	Activate(b *core.Board, pos core.Position) Result
	NeedsSecondClick() bool
	// Hint is a one-line prompt telling the player what to click next.
	Hint() string
	Reset()
}
