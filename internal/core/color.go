package core

// Color is the foreground color of a screen cell.
// The platform maps it to an ANSI palette entry.
type Color uint8

// Palette used by game renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorHighlight // cursor, selection and flashes
)

// Cell is one character of a Screen together with its color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}
