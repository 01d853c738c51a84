package core_test

import (
	"math/rand"
	"testing"

	"github.com/AKGMI/BlastGame/internal/games/blast/core"
)

func TestShufflePreservesSupersAndColors(t *testing.T) {
	layout := []string{
		"RBRB",
		"B*BR",
		"RBRB",
		"BRB@",
	}
	b, err := core.NewBoardFromLayout(layout, 2, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	before := b.Counts()

	if !b.Shuffle() {
		t.Fatal("Shuffle() = false, expected a playable board")
	}

	after := b.Counts()
	for v, n := range before {
		if after[v] != n {
			t.Errorf("count of %v = %d, expected %d", v, after[v], n)
		}
	}

	for _, p := range []core.Position{core.P(1, 1), core.P(3, 3)} {
		before, _ := core.ParseVariant(rune(layout[p.Row][p.Col]))
		tile, _ := b.Tile(p)
		if tile.Variant != before {
			t.Errorf("super tile at %v became %v", p, tile.Variant)
		}
	}
}

func TestShuffleMakesCheckerboardPlayable(t *testing.T) {
	b, err := core.NewBoardFromLayout([]string{
		"RBRB",
		"BRBR",
		"RBRB",
		"BRBR",
	}, 2, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatal(err)
	}

	if !b.Shuffle() {
		t.Fatal("Shuffle() = false, expected a playable board")
	}
	if !b.HasMatchableGroups() {
		t.Error("board should be playable after Shuffle")
	}
}

func TestShuffleGivesUpAfterMaxAttempts(t *testing.T) {
	// Two distinct colors on a 1x2 board can never pair up.
	b, err := core.NewBoardFromLayout([]string{"RB"}, 2, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	if b.Shuffle() {
		t.Error("Shuffle() = true, expected false")
	}
	if !b.IsFull() {
		t.Error("board should stay full")
	}
}

func TestShuffleFillsEmptyCells(t *testing.T) {
	b := mustLayout(t, 2, "R.", "..")
	b.Shuffle()
	if !b.IsFull() {
		t.Error("Shuffle should pad empty cells with random colors")
	}
}
