package core

// MaxShuffleAttempts bounds the retries spent looking for a playable shuffle.
const MaxShuffleAttempts = 10

// Shuffle redistributes regular colors over all non-super cells.
// Super tiles stay in place. The current color multiset is kept and padded
// with random colors if cells are empty. Up to MaxShuffleAttempts permutations
// are tried; the first playable one is kept, otherwise the last attempt stays.
// Returns true if the resulting board has a matchable group.
func (b *Board) Shuffle() bool {
	var slots []Position
	var colors []Color
	for i, t := range b.cells {
		if t != nil && t.Variant.IsSuper() {
			continue
		}
		slots = append(slots, P(i/b.cols, i%b.cols))
		if t != nil {
			colors = append(colors, t.Variant.Color)
		}
	}

	if len(slots) == 0 {
		return b.HasMatchableGroups()
	}

	pool := make([]Color, 0, len(slots))
	for attempt := 0; attempt < MaxShuffleAttempts; attempt++ {
		pool = append(pool[:0], colors...)
		for len(pool) < len(slots) {
			pool = append(pool, randomColor(b.rng))
		}

		// Fisher-Yates
		for i := len(pool) - 1; i > 0; i-- {
			j := b.rng.Intn(i + 1)
			pool[i], pool[j] = pool[j], pool[i]
		}

		for i, p := range slots {
			b.place(p, Regular(pool[i]))
		}

		if b.HasMatchableGroups() {
			return true
		}
	}

	return false
}
