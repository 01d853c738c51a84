package booster

import "github.com/AKGMI/BlastGame/internal/games/blast/core"

// SwapPoints is the flat score awarded for a completed swap.
const SwapPoints = 5

type swapState int

const (
	swapIdle swapState = iota
	swapAwaitingSecond
)

// Swap exchanges two tiles picked with two clicks.
type Swap struct {
	state swapState
	first core.Position
}

// NewSwap creates a swap booster in the idle state.
func NewSwap() *Swap {
	return &Swap{}
}

// Kind returns KindSwap.
func (*Swap) Kind() Kind {
	return KindSwap
}

// CanActivate returns true for occupied cells.
func (*Swap) CanActivate(b *core.Board, pos core.Position) bool {
	_, ok := b.Tile(pos)
	return ok
}

// Activate records the first click or performs the swap on the second.
// An invalid click fails and keeps any pending first click. Clicking the
// pending cell again cancels it.
func (s *Swap) Activate(b *core.Board, pos core.Position) Result {
	if !s.CanActivate(b, pos) {
		return Result{NeedsSecondClick: s.NeedsSecondClick()}
	}

	switch s.state {
	case swapIdle:
		s.first = pos
		s.state = swapAwaitingSecond
		return Result{NeedsSecondClick: true}

	case swapAwaitingSecond:
		first := s.first
		s.Reset()
		if pos == first {
			return Result{}
		}
		if !b.SwapTiles(first, pos) {
			return Result{}
		}
		return Result{
			Success: true,
			Swapped: &core.Swap{First: first, Second: pos},
			Points:  SwapPoints,
		}
	}

	return Result{}
}

// NeedsSecondClick reports whether a first tile is pending.
func (s *Swap) NeedsSecondClick() bool {
	return s.state == swapAwaitingSecond
}

// Pending returns the first selected cell while awaiting the second click.
func (s *Swap) Pending() (core.Position, bool) {
	return s.first, s.state == swapAwaitingSecond
}

// Hint returns the player prompt for the current state.
func (s *Swap) Hint() string {
	if s.state == swapAwaitingSecond {
		return "Choose the second tile to swap"
	}
	return "Choose the first tile to swap"
}

// Reset drops any pending first click without touching the board.
func (s *Swap) Reset() {
	s.state = swapIdle
	s.first = core.Position{}
}
