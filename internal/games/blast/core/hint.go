package core

// FindHint returns the first playable move in row-major order.
// A super tile hints only its own cell; a regular tile hints its whole group.
func (b *Board) FindHint() ([]Position, bool) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			p := P(r, c)
			t, ok := b.Tile(p)
			if !ok {
				continue
			}
			if t.Variant.IsSuper() {
				return []Position{p}, true
			}
			if group := b.Group(p); len(group) >= b.minGroup {
				return group, true
			}
		}
	}
	return nil, false
}
