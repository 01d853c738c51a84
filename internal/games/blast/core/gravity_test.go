package core_test

import (
	"math/rand"
	"testing"

	"github.com/AKGMI/BlastGame/internal/games/blast/core"
)

func TestRemoveGroupIgnoresEmptyAndOffBoard(t *testing.T) {
	b := mustLayout(t, 2, "R.", "BG")
	before := b.Layout()

	n := b.RemoveGroup([]core.Position{core.P(0, 1), core.P(-1, 0), core.P(2, 2)})
	if n != 0 {
		t.Errorf("RemoveGroup() = %d, expected 0", n)
	}
	after := b.Layout()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("row %d changed: %q -> %q", i, before[i], after[i])
		}
	}
}

func TestRemoveGroupCountsCleared(t *testing.T) {
	b := mustLayout(t, 2, "RR", "BG")
	n := b.RemoveGroup([]core.Position{core.P(0, 0), core.P(0, 1), core.P(0, 1)})
	if n != 2 {
		t.Errorf("RemoveGroup() = %d, expected 2", n)
	}
}

func TestApplyGravityNoGaps(t *testing.T) {
	b := mustLayout(t, 2, ".G", "RB", "YP")
	if moves := b.ApplyGravity(); len(moves) != 0 {
		t.Errorf("ApplyGravity() = %v, expected no moves", moves)
	}
}

func TestApplyGravityCompactsColumns(t *testing.T) {
	b := mustLayout(t, 2,
		"RG",
		"B.",
		".Y",
		"P.",
	)

	moves := b.ApplyGravity()
	expected := []core.Move{
		{From: core.P(1, 0), To: core.P(2, 0)},
		{From: core.P(0, 0), To: core.P(1, 0)},
		{From: core.P(2, 1), To: core.P(3, 1)},
		{From: core.P(0, 1), To: core.P(2, 1)},
	}
	if len(moves) != len(expected) {
		t.Fatalf("len(moves) = %d, expected %d: %v", len(moves), len(expected), moves)
	}
	for i := range expected {
		if moves[i] != expected[i] {
			t.Errorf("moves[%d] = %v, expected %v", i, moves[i], expected[i])
		}
	}

	layout := b.Layout()
	want := []string{"..", "R.", "BG", "PY"}
	for i := range want {
		if layout[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, layout[i], want[i])
		}
	}

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if tile, ok := b.Tile(core.P(r, c)); ok && tile.Pos != core.P(r, c) {
				t.Errorf("tile at (%d,%d) stores Pos %v", r, c, tile.Pos)
			}
		}
	}
}

func TestFillEmptyCells(t *testing.T) {
	b := mustLayout(t, 2, "..", ".R", "BG")

	spawns := b.FillEmptyCells()
	expected := []core.Position{core.P(1, 0), core.P(0, 0), core.P(0, 1)}
	if len(spawns) != len(expected) {
		t.Fatalf("len(spawns) = %d, expected %d", len(spawns), len(expected))
	}
	for i, s := range spawns {
		if s.Position != expected[i] {
			t.Errorf("spawns[%d].Position = %v, expected %v", i, s.Position, expected[i])
		}
		if s.Variant.IsSuper() {
			t.Errorf("spawns[%d] is a super tile", i)
		}
	}
	if !b.IsFull() {
		t.Error("board should be full after FillEmptyCells")
	}
}

func TestRemoveGravityFillKeepsBoardFull(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b, err := core.NewBoard(6, 6, 2, rng)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20; i++ {
		hint, ok := b.FindHint()
		if !ok {
			b.Shuffle()
			continue
		}
		b.RemoveGroup(hint)
		b.ApplyGravity()
		b.FillEmptyCells()
		if !b.IsFull() {
			t.Fatalf("iteration %d: board not full", i)
		}
	}
}
