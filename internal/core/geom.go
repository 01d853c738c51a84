// Package core provides the screen, input and geometry types shared by the
// platform and the games. It has no terminal dependencies so game logic can
// be tested without Bubble Tea.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grid maps a rows x cols board onto the screen, one CellW x CellH box per cell.
type Grid struct {
	X, Y         int
	Rows, Cols   int
	CellW, CellH int
}

// Bounds returns the screen area covered by the grid.
func (g Grid) Bounds() Rect {
	return NewRect(g.X, g.Y, g.Cols*g.CellW, g.Rows*g.CellH)
}

// CellRect returns the screen box of the cell at (row, col).
func (g Grid) CellRect(row, col int) Rect {
	return NewRect(g.X+col*g.CellW, g.Y+row*g.CellH, g.CellW, g.CellH)
}

// At converts a screen point to a board cell.
// ok is false for points outside the grid.
func (g Grid) At(x, y int) (row, col int, ok bool) {
	if g.CellW <= 0 || g.CellH <= 0 || !g.Bounds().Contains(x, y) {
		return 0, 0, false
	}
	return (y - g.Y) / g.CellH, (x - g.X) / g.CellW, true
}

// CenterGrid places a rows x cols grid in the middle of a w x h area,
// shifted down by top lines reserved for a header.
func CenterGrid(w, h, top, rows, cols, cellW, cellH int) Grid {
	g := Grid{Rows: rows, Cols: cols, CellW: cellW, CellH: cellH}
	g.X = Max(0, (w-cols*cellW)/2)
	g.Y = top + Max(0, (h-top-rows*cellH)/2)
	return g
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
