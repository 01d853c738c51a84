package engine

// Score accumulates points toward a target. It never decreases.
type Score struct {
	value  int
	target int
}

// NewScore creates a score counter with the given target.
func NewScore(target int) Score {
	return Score{target: target}
}

// Add adds points. Non-positive amounts are ignored.
func (s *Score) Add(points int) {
	if points > 0 {
		s.value += points
	}
}

// Value returns the current score.
func (s Score) Value() int { return s.value }

// Target returns the score needed to win.
func (s Score) Target() int { return s.target }

// Reached reports whether the target has been met.
func (s Score) Reached() bool { return s.value >= s.target }

// Moves counts down the player's remaining matches.
type Moves struct {
	left  int
	total int
}

// NewMoves creates a move budget.
func NewMoves(total int) Moves {
	return Moves{left: total, total: total}
}

// Use spends one move.
func (m *Moves) Use() {
	if m.left > 0 {
		m.left--
	}
}

// Left returns the remaining moves.
func (m Moves) Left() int { return m.left }

// Total returns the starting budget.
func (m Moves) Total() int { return m.total }

// Used returns how many moves were spent.
func (m Moves) Used() int { return m.total - m.left }

// Exhausted reports whether no moves remain.
func (m Moves) Exhausted() bool { return m.left <= 0 }

// ShuffleBudget limits how many times the board may be reshuffled.
type ShuffleBudget struct {
	left  int
	total int
}

// NewShuffleBudget creates a shuffle budget.
func NewShuffleBudget(total int) ShuffleBudget {
	return ShuffleBudget{left: total, total: total}
}

// Consume spends one shuffle. Returns false if the budget is empty.
func (b *ShuffleBudget) Consume() bool {
	if b.left <= 0 {
		return false
	}
	b.left--
	return true
}

// Left returns the remaining shuffles.
func (b ShuffleBudget) Left() int { return b.left }

// Used returns how many shuffles were spent.
func (b ShuffleBudget) Used() int { return b.total - b.left }
