package core

// Group sizes at which a match is upgraded to a super tile.
const (
	SuperLineMinSize = 5
	SuperBombMinSize = 7
	SuperAllMinSize  = 9
)

// ClassifyGroup maps a matched regular group to the super tile it earns, if any.
// Groups of 5-6 become a column when they span more rows than columns, otherwise a row.
func ClassifyGroup(group []Position) (Variant, bool) {
	size := len(group)
	switch {
	case size >= SuperAllMinSize:
		return SuperAll, true
	case size >= SuperBombMinSize:
		return SuperBomb, true
	case size >= SuperLineMinSize:
		rows := make(map[int]struct{})
		cols := make(map[int]struct{})
		for _, p := range group {
			rows[p.Row] = struct{}{}
			cols[p.Col] = struct{}{}
		}
		if len(rows) > len(cols) {
			return SuperColumn, true
		}
		return SuperRow, true
	default:
		return Variant{}, false
	}
}

// CreateSuperTile classifies group and, if it qualifies, replaces the tile at p
// with the resulting super tile. The board is untouched otherwise.
func (b *Board) CreateSuperTile(p Position, group []Position) (Variant, bool) {
	if !b.IsValid(p) {
		return Variant{}, false
	}
	v, ok := ClassifyGroup(group)
	if !ok {
		return Variant{}, false
	}
	b.place(p, v)
	return v, true
}
