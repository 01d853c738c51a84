package core_test

import (
	"testing"

	"github.com/AKGMI/BlastGame/internal/games/blast/core"
)

func line(row, col, n int, vertical bool) []core.Position {
	out := make([]core.Position, n)
	for i := range out {
		if vertical {
			out[i] = core.P(row+i, col)
		} else {
			out[i] = core.P(row, col+i)
		}
	}
	return out
}

func TestClassifyGroup(t *testing.T) {
	tests := []struct {
		name     string
		group    []core.Position
		expected core.Variant
		ok       bool
	}{
		{"empty", nil, core.Variant{}, false},
		{"four", line(0, 0, 4, false), core.Variant{}, false},
		{"five horizontal", line(0, 0, 5, false), core.SuperRow, true},
		{"five vertical", line(0, 0, 5, true), core.SuperColumn, true},
		{"six vertical", line(0, 0, 6, true), core.SuperColumn, true},
		{
			"five square-ish tie",
			[]core.Position{core.P(0, 0), core.P(0, 1), core.P(0, 2), core.P(1, 0), core.P(1, 1)},
			core.SuperRow, true,
		},
		{
			"five tall L",
			[]core.Position{core.P(0, 0), core.P(1, 0), core.P(2, 0), core.P(3, 0), core.P(3, 1)},
			core.SuperColumn, true,
		},
		{
			"three rows two columns",
			[]core.Position{core.P(0, 0), core.P(0, 1), core.P(1, 0), core.P(1, 1), core.P(2, 0), core.P(2, 1)},
			core.SuperColumn, true,
		},
		{"seven", line(0, 0, 7, false), core.SuperBomb, true},
		{"eight", line(0, 0, 8, true), core.SuperBomb, true},
		{"nine", line(0, 0, 9, false), core.SuperAll, true},
		{"twelve", line(0, 0, 12, true), core.SuperAll, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := core.ClassifyGroup(tc.group)
			if ok != tc.ok {
				t.Fatalf("ClassifyGroup() ok = %v, expected %v", ok, tc.ok)
			}
			if v != tc.expected {
				t.Errorf("ClassifyGroup() = %v, expected %v", v, tc.expected)
			}
		})
	}
}

func TestCreateSuperTile(t *testing.T) {
	b := mustLayout(t, 2, "RRRRR", "GBGBG")
	group := b.Group(core.P(0, 2))

	v, ok := b.CreateSuperTile(core.P(0, 2), group)
	if !ok || v != core.SuperRow {
		t.Fatalf("CreateSuperTile() = %v, %v, expected super row", v, ok)
	}
	tile, _ := b.Tile(core.P(0, 2))
	if tile.Variant != core.SuperRow {
		t.Errorf("Tile(0,2) = %v, expected super row", tile.Variant)
	}

	small := mustLayout(t, 2, "RRGB")
	before := small.Layout()[0]
	if _, ok := small.CreateSuperTile(core.P(0, 0), small.Group(core.P(0, 0))); ok {
		t.Error("CreateSuperTile(pair) = true, expected false")
	}
	if small.Layout()[0] != before {
		t.Error("board changed after unqualified CreateSuperTile")
	}
}
