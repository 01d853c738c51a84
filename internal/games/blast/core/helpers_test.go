package core_test

import (
	"testing"

	"github.com/AKGMI/BlastGame/internal/games/blast/core"
)

// zeroRand always returns 0, so every spawned tile is red.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// cycleRand returns 0, 1, 2, ... modulo n.
type cycleRand struct{ next int }

func (r *cycleRand) Intn(n int) int {
	v := r.next % n
	r.next++
	return v
}

func mustLayout(t *testing.T, minGroup int, layout ...string) *core.Board {
	t.Helper()
	b, err := core.NewBoardFromLayout(layout, minGroup, zeroRand{})
	if err != nil {
		t.Fatalf("NewBoardFromLayout() failed: %v", err)
	}
	return b
}

func samePositions(a, b []core.Position) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[core.Position]int, len(a))
	for _, p := range a {
		set[p]++
	}
	for _, p := range b {
		set[p]--
		if set[p] < 0 {
			return false
		}
	}
	return true
}
