// Package core implements the rules of the Blast tile-matching puzzle:
// the tile catalog, the board with its remove/gravity/fill cycle,
// matching, super-tile classification and chain reactions.
// It is UI-agnostic and deterministic for a given random source.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMinGroupSize is the smallest regular group that can be activated.
const DefaultMinGroupSize = 2

// ErrInvalidBoard is returned for impossible board dimensions or thresholds.
var ErrInvalidBoard = errors.New("invalid board")

// Board owns the grid of tiles. Cells are stored row-major; nil means empty.
// Accessors return copies so callers never hold a mutable tile.
type Board struct {
	rows     int
	cols     int
	minGroup int
	cells    []*Tile
	rng      Rand
}

// NewBoard creates a board filled by the generation rules.
// The result always has at least one activatable group.
func NewBoard(rows, cols, minGroup int, rng Rand) (*Board, error) {
	b, err := newEmptyBoard(rows, cols, minGroup, rng)
	if err != nil {
		return nil, err
	}
	b.generate()
	return b, nil
}

// NewBoardFromLayout creates a board from rows of variant symbols
// (see Variant.Symbol). Spaces are ignored and '.' leaves a cell empty.
// An unrecognized symbol aborts construction with ErrUnknownVariant.
func NewBoardFromLayout(layout []string, minGroup int, rng Rand) (*Board, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidBoard)
	}

	rows := make([][]rune, len(layout))
	for i, line := range layout {
		rows[i] = []rune(strings.ReplaceAll(line, " ", ""))
	}

	cols := len(rows[0])
	b, err := newEmptyBoard(len(rows), cols, minGroup, rng)
	if err != nil {
		return nil, err
	}

	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, r, len(line), cols)
		}
		for c, sym := range line {
			if sym == '.' {
				continue
			}
			v, err := ParseVariant(sym)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			b.place(P(r, c), v)
		}
	}

	return b, nil
}

func newEmptyBoard(rows, cols, minGroup int, rng Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidBoard, rows, cols)
	}
	if minGroup < 1 || minGroup > rows*cols {
		return nil, fmt.Errorf("%w: min group %d for %dx%d board", ErrInvalidBoard, minGroup, rows, cols)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidBoard)
	}
	return &Board{
		rows:     rows,
		cols:     cols,
		minGroup: minGroup,
		cells:    make([]*Tile, rows*cols),
		rng:      rng,
	}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// MinGroupSize returns the activation threshold for regular groups.
func (b *Board) MinGroupSize() int {
	return b.minGroup
}

// IsValid returns true if the position lies on the board.
func (b *Board) IsValid(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

func (b *Board) index(p Position) int {
	return p.Row*b.cols + p.Col
}

// Tile returns a copy of the tile at p and whether the cell is occupied.
func (b *Board) Tile(p Position) (Tile, bool) {
	if !b.IsValid(p) {
		return Tile{}, false
	}
	t := b.cells[b.index(p)]
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// SetTile places a tile of the given variant at p, replacing any occupant.
func (b *Board) SetTile(p Position, v Variant) error {
	if !b.IsValid(p) {
		return fmt.Errorf("%w: position %s out of bounds", ErrInvalidBoard, p)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	b.place(p, v)
	return nil
}

// place stores a new tile without validation.
func (b *Board) place(p Position, v Variant) {
	b.cells[b.index(p)] = &Tile{Variant: v, Pos: p}
}

// IsFull returns true if every cell holds a tile.
func (b *Board) IsFull() bool {
	for _, t := range b.cells {
		if t == nil {
			return false
		}
	}
	return true
}

// SwapTiles exchanges the occupants of two cells, keeping stored positions in sync.
// Returns false if either position is off the board.
func (b *Board) SwapTiles(a, c Position) bool {
	if !b.IsValid(a) || !b.IsValid(c) {
		return false
	}
	ia, ic := b.index(a), b.index(c)
	b.cells[ia], b.cells[ic] = b.cells[ic], b.cells[ia]
	if t := b.cells[ia]; t != nil {
		t.Pos = a
	}
	if t := b.cells[ic]; t != nil {
		t.Pos = c
	}
	return true
}

// Clone creates a deep copy of the board sharing the same random source.
func (b *Board) Clone() *Board {
	clone := &Board{
		rows:     b.rows,
		cols:     b.cols,
		minGroup: b.minGroup,
		cells:    make([]*Tile, len(b.cells)),
		rng:      b.rng,
	}
	for i, t := range b.cells {
		if t != nil {
			cp := *t
			clone.cells[i] = &cp
		}
	}
	return clone
}

// Counts returns how many tiles of each variant are on the board.
func (b *Board) Counts() map[Variant]int {
	counts := make(map[Variant]int)
	for _, t := range b.cells {
		if t != nil {
			counts[t.Variant]++
		}
	}
	return counts
}

// Area returns all valid positions within the given Chebyshev radius of center,
// in row-major order.
func (b *Board) Area(center Position, radius int) []Position {
	var out []Position
	for r := center.Row - radius; r <= center.Row+radius; r++ {
		for c := center.Col - radius; c <= center.Col+radius; c++ {
			p := P(r, c)
			if b.IsValid(p) {
				out = append(out, p)
			}
		}
	}
	return out
}
