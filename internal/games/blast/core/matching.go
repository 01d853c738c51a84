package core

// Activation is the outcome of detonating or matching the tile at Origin.
type Activation struct {
	Origin  Position
	Variant Variant
	Removed []Position
	Points  int
	// Affected lists super tiles among the targets, excluding Origin,
	// that a chain reaction should detonate next.
	Affected []Position
}

// RegularPoints returns the score for clearing a regular group of the given size.
func RegularPoints(size int) int {
	bonus := (size - 3) * 5
	if bonus < 0 {
		bonus = 0
	}
	return size*10 + bonus
}

// Group returns the 4-connected same-color component containing p.
// Returns nil for empty cells, off-board positions and super tiles.
func (b *Board) Group(p Position) []Position {
	t, ok := b.Tile(p)
	if !ok || t.Variant.IsSuper() {
		return nil
	}
	visited := make([]bool, b.rows*b.cols)
	return b.floodFill(p, t.Variant.Color, visited)
}

// floodFill runs a BFS over same-colored regular tiles starting at start.
// Cells are marked in visited so callers can share it across scans.
func (b *Board) floodFill(start Position, color Color, visited []bool) []Position {
	group := []Position{start}
	visited[b.index(start)] = true

	for i := 0; i < len(group); i++ {
		cur := group[i]
		for _, d := range cardinal {
			next := cur.Add(d[0], d[1])
			if !b.IsValid(next) || visited[b.index(next)] {
				continue
			}
			t := b.cells[b.index(next)]
			if t == nil || t.Variant.Kind != KindRegular || t.Variant.Color != color {
				continue
			}
			visited[b.index(next)] = true
			group = append(group, next)
		}
	}

	return group
}

// Targets returns the cells affected by activating the tile at p.
func (b *Board) Targets(p Position) []Position {
	t, ok := b.Tile(p)
	if !ok {
		return nil
	}

	switch t.Variant.Kind {
	case KindRegular:
		return b.Group(p)
	case KindSuperRow:
		out := make([]Position, 0, b.cols)
		for c := 0; c < b.cols; c++ {
			out = append(out, P(p.Row, c))
		}
		return out
	case KindSuperColumn:
		out := make([]Position, 0, b.rows)
		for r := 0; r < b.rows; r++ {
			out = append(out, P(r, p.Col))
		}
		return out
	case KindSuperBomb:
		return b.Area(p, SuperBombRadius)
	case KindSuperAll:
		out := make([]Position, 0, b.rows*b.cols)
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.cols; c++ {
				out = append(out, P(r, c))
			}
		}
		return out
	default:
		return nil
	}
}

// CanActivate reports whether the tile at p can be played.
// Super tiles always can; regular tiles need a group of at least MinGroupSize.
func (b *Board) CanActivate(p Position) bool {
	t, ok := b.Tile(p)
	if !ok {
		return false
	}
	if t.Variant.IsSuper() {
		return true
	}
	return len(b.Group(p)) >= b.minGroup
}

// Activate computes the effect of playing the tile at p without mutating the board.
// The second return value is false if the tile cannot be activated.
func (b *Board) Activate(p Position) (Activation, bool) {
	if !b.CanActivate(p) {
		return Activation{}, false
	}
	t, _ := b.Tile(p)
	targets := b.Targets(p)

	act := Activation{
		Origin:  p,
		Variant: t.Variant,
		Removed: targets,
	}

	switch t.Variant.Kind {
	case KindRegular:
		act.Points = RegularPoints(len(targets))
	default:
		act.Points = len(targets) * t.Variant.PerTilePoints()
		// SuperAll clears everything itself, so it never starts a chain.
		if t.Variant.Kind != KindSuperAll {
			act.Affected = b.superTilesAmong(targets, p)
		}
	}

	return act, true
}

// superTilesAmong returns the positions in targets, other than self, holding super tiles.
func (b *Board) superTilesAmong(targets []Position, self Position) []Position {
	var out []Position
	for _, pos := range targets {
		if pos == self {
			continue
		}
		if t, ok := b.Tile(pos); ok && t.Variant.IsSuper() {
			out = append(out, pos)
		}
	}
	return out
}

// HasMatchableGroups reports whether any tile on the board can be activated.
func (b *Board) HasMatchableGroups() bool {
	visited := make([]bool, b.rows*b.cols)
	for i, t := range b.cells {
		if t == nil || visited[i] {
			continue
		}
		if t.Variant.IsSuper() {
			return true
		}
		if len(b.floodFill(t.Pos, t.Variant.Color, visited)) >= b.minGroup {
			return true
		}
	}
	return false
}
