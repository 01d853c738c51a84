package core

// RemoveGroup clears every listed occupied cell and returns how many were cleared.
// Empty or off-board positions are ignored.
func (b *Board) RemoveGroup(positions []Position) int {
	removed := 0
	for _, p := range positions {
		if !b.IsValid(p) {
			continue
		}
		i := b.index(p)
		if b.cells[i] == nil {
			continue
		}
		b.cells[i] = nil
		removed++
	}
	return removed
}

// ApplyGravity compacts each column toward the bottom row, keeping tile order.
// Only tiles that changed row are reported, bottom-up within each column.
func (b *Board) ApplyGravity() []Move {
	var moves []Move
	for c := 0; c < b.cols; c++ {
		write := b.rows - 1
		for r := b.rows - 1; r >= 0; r-- {
			from := P(r, c)
			t := b.cells[b.index(from)]
			if t == nil {
				continue
			}
			if r != write {
				to := P(write, c)
				b.cells[b.index(to)] = t
				b.cells[b.index(from)] = nil
				t.Pos = to
				moves = append(moves, Move{From: from, To: to})
			}
			write--
		}
	}
	return moves
}

// FillEmptyCells spawns a random regular tile in every empty cell.
// Spawns are reported column by column, bottom row first.
func (b *Board) FillEmptyCells() []Spawn {
	var spawns []Spawn
	for c := 0; c < b.cols; c++ {
		for r := b.rows - 1; r >= 0; r-- {
			p := P(r, c)
			if b.cells[b.index(p)] != nil {
				continue
			}
			v := Regular(randomColor(b.rng))
			b.place(p, v)
			spawns = append(spawns, Spawn{Position: p, Variant: v})
		}
	}
	return spawns
}
