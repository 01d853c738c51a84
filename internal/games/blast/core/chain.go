package core

// MaxChainWaves caps how many waves of super tiles a chain reaction may detonate.
const MaxChainWaves = 10

// ChainResult is the combined effect of a detonation and everything it set off.
type ChainResult struct {
	Removed          []Position
	Points           int
	ChainLength      int
	ExplosionCenters []Position
}

// PropagateChain expands an initial activation into cascading super tile detonations.
// Each position detonates at most once and propagation stops after MaxChainWaves.
// The board is not mutated; callers remove ChainResult.Removed afterwards.
func (b *Board) PropagateChain(initial Activation, origin Position) ChainResult {
	processed := map[Position]bool{origin: true}
	seen := make(map[Position]bool)

	res := ChainResult{
		Points:           initial.Points,
		ExplosionCenters: []Position{origin},
	}
	addRemoved := func(ps []Position) {
		for _, p := range ps {
			if !seen[p] {
				seen[p] = true
				res.Removed = append(res.Removed, p)
			}
		}
	}
	addRemoved(initial.Removed)

	wave := initial.Affected
	for len(wave) > 0 && res.ChainLength < MaxChainWaves {
		var next []Position
		for _, p := range wave {
			if processed[p] {
				continue
			}
			processed[p] = true

			act, ok := b.Activate(p)
			if !ok {
				continue
			}
			addRemoved(act.Removed)
			res.Points += act.Points
			res.ExplosionCenters = append(res.ExplosionCenters, p)

			for _, a := range act.Affected {
				if !processed[a] {
					next = append(next, a)
				}
			}
		}
		res.ChainLength++
		wave = next
	}

	return res
}
