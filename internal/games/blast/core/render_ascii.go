package core

import "strings"

// Layout returns the board as rows of variant symbols, '.' for empty cells.
// The output round-trips through NewBoardFromLayout.
func (b *Board) Layout() []string {
	out := make([]string, b.rows)
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		sb.Reset()
		for c := 0; c < b.cols; c++ {
			t := b.cells[b.index(P(r, c))]
			if t == nil {
				sb.WriteRune('.')
				continue
			}
			sb.WriteRune(t.Variant.Symbol())
		}
		out[r] = sb.String()
	}
	return out
}

// String renders the board with row and column indices for debugging.
func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString("   ")
	for c := 0; c < b.cols; c++ {
		sb.WriteRune(' ')
		sb.WriteByte(byte('0' + c%10))
	}
	sb.WriteRune('\n')

	for r, line := range b.Layout() {
		sb.WriteByte(byte('0' + (r/10)%10))
		sb.WriteByte(byte('0' + r%10))
		sb.WriteRune(' ')
		for _, ch := range line {
			sb.WriteRune(' ')
			sb.WriteRune(ch)
		}
		if r < b.rows-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}
