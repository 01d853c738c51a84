package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned when a tile variant is not part of the catalog.
var ErrUnknownVariant = errors.New("unknown tile variant")

// Kind tags the variant of a tile.
type Kind uint8

const (
	KindRegular Kind = iota
	KindSuperRow
	KindSuperColumn
	KindSuperBomb
	KindSuperAll
	kindCount
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindSuperRow:
		return "super_row"
	case KindSuperColumn:
		return "super_column"
	case KindSuperBomb:
		return "super_bomb"
	case KindSuperAll:
		return "super_all"
	default:
		return "unknown"
	}
}

// Color is the color of a regular tile.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorBlue:
		return 'B'
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	default:
		return '?'
	}
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "blue", "b":
		return ColorBlue, true
	case "green", "g":
		return ColorGreen, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	default:
		return ColorRed, false
	}
}

// AllColors returns a slice of all regular tile colors.
func AllColors() []Color {
	return []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple}
}

// Variant identifies what a tile is. Color is only meaningful for KindRegular.
type Variant struct {
	Kind  Kind
	Color Color
}

// Super tile variants.
var (
	SuperRow    = Variant{Kind: KindSuperRow}
	SuperColumn = Variant{Kind: KindSuperColumn}
	SuperBomb   = Variant{Kind: KindSuperBomb}
	SuperAll    = Variant{Kind: KindSuperAll}
)

// Regular returns the regular variant of the given color.
func Regular(c Color) Variant {
	return Variant{Kind: KindRegular, Color: c}
}

// IsSuper reports whether the variant is a super tile.
func (v Variant) IsSuper() bool {
	return v.Kind != KindRegular
}

// Validate returns ErrUnknownVariant if the variant is not in the catalog.
func (v Variant) Validate() error {
	if v.Kind >= kindCount {
		return fmt.Errorf("%w: kind %d", ErrUnknownVariant, v.Kind)
	}
	if v.Kind == KindRegular && v.Color >= ColorCount {
		return fmt.Errorf("%w: color %d", ErrUnknownVariant, v.Color)
	}
	return nil
}

// String returns the string representation of a variant.
func (v Variant) String() string {
	if v.Kind == KindRegular {
		return v.Color.String()
	}
	return v.Kind.String()
}

// Symbol returns the single rune used for the variant in ASCII layouts.
func (v Variant) Symbol() rune {
	switch v.Kind {
	case KindRegular:
		return v.Color.Char()
	case KindSuperRow:
		return '-'
	case KindSuperColumn:
		return '|'
	case KindSuperBomb:
		return '*'
	case KindSuperAll:
		return '@'
	default:
		return '?'
	}
}

// ParseVariant converts a layout symbol back to a Variant.
func ParseVariant(symbol rune) (Variant, error) {
	switch symbol {
	case '-':
		return SuperRow, nil
	case '|':
		return SuperColumn, nil
	case '*':
		return SuperBomb, nil
	case '@':
		return SuperAll, nil
	}
	if c, ok := ParseColor(string(symbol)); ok {
		return Regular(c), nil
	}
	return Variant{}, fmt.Errorf("%w: symbol %q", ErrUnknownVariant, symbol)
}

// PerTilePoints returns the points a super tile awards per target cell.
// Regular tiles score by group size instead and return 0.
func (v Variant) PerTilePoints() int {
	switch v.Kind {
	case KindSuperRow, KindSuperColumn:
		return 20
	case KindSuperBomb:
		return 25
	case KindSuperAll:
		return 50
	default:
		return 0
	}
}

// SuperBombRadius is the Chebyshev radius covered by a super bomb.
const SuperBombRadius = 2

// Tile is a board cell occupant. Pos always equals the cell holding the tile.
type Tile struct {
	Variant Variant
	Pos     Position
}
