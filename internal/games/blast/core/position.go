package core

import "fmt"

// Position is a zero-based cell coordinate on the board.
// Row grows downward, so gravity pulls tiles toward higher rows.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns a new Position offset by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Move records a tile that fell from one cell to another.
type Move struct {
	From Position
	To   Position
}

// Spawn records a tile created while refilling the board.
type Spawn struct {
	Position Position
	Variant  Variant
}

// Swap records two cells whose tiles were exchanged.
type Swap struct {
	First  Position
	Second Position
}

// cardinal lists the four neighbour offsets used by flood fill.
var cardinal = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
