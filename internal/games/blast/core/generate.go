package core

// MaxGenerateAttempts bounds random fills before a seed group is forced.
const MaxGenerateAttempts = 50

// generate fills the board with random regular tiles until it is playable.
// After MaxGenerateAttempts failures a group of MinGroupSize is forced
// near the center so the board is always playable.
func (b *Board) generate() {
	for attempt := 0; attempt < MaxGenerateAttempts; attempt++ {
		for i := range b.cells {
			b.place(P(i/b.cols, i%b.cols), Regular(randomColor(b.rng)))
		}
		if b.HasMatchableGroups() {
			return
		}
	}
	b.forceSeedGroup()
}

// EnsurePlayable makes a loaded board playable: a board without an
// activatable group is shuffled, and if no shuffle helps a seed group of
// MinGroupSize is forced. Returns false only when the board is too small
// to hold such a group.
func (b *Board) EnsurePlayable() bool {
	if b.HasMatchableGroups() || b.Shuffle() {
		return true
	}
	b.forceSeedGroup()
	return b.HasMatchableGroups()
}

// forceSeedGroup paints a connected group of MinGroupSize cells in one color.
func (b *Board) forceSeedGroup() {
	v := Regular(randomColor(b.rng))
	for _, p := range b.seedGroupPositions() {
		b.place(p, v)
	}
}

// seedGroupPositions returns the cells of the forced group.
// Size 4 uses a 2x2 block anchored at the center when it fits. Other sizes
// grow outward from the center in up, down, left, right order, which yields
// a plus shape for sizes up to 5 and stays connected for larger ones.
func (b *Board) seedGroupPositions() []Position {
	n := b.minGroup
	center := P(b.rows/2, b.cols/2)

	if n == 4 && center.Row+1 < b.rows && center.Col+1 < b.cols {
		return []Position{
			center,
			center.Add(0, 1),
			center.Add(1, 0),
			center.Add(1, 1),
		}
	}

	plus := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	visited := make([]bool, b.rows*b.cols)
	visited[b.index(center)] = true
	out := []Position{center}

	for i := 0; i < len(out) && len(out) < n; i++ {
		for _, d := range plus {
			next := out[i].Add(d[0], d[1])
			if !b.IsValid(next) || visited[b.index(next)] {
				continue
			}
			visited[b.index(next)] = true
			out = append(out, next)
			if len(out) == n {
				break
			}
		}
	}

	return out
}
