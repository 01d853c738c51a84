package config

import (
	_ "embed"
)

//go:embed defaults/blast.yaml
var defaultBlastYAML []byte

// DefaultBlastConfig returns the standard 8x8 game.
func DefaultBlastConfig() BlastConfig {
	return BlastConfig{
		Board: BoardConfig{
			Rows: 8,
			Cols: 8,
		},
		Rules: RulesConfig{
			TargetScore:  10000,
			TotalMoves:   30,
			MinGroupSize: 2,
			MaxShuffles:  3,
		},
		Boosters: BoosterConfig{
			Bomb: 3,
			Swap: 3,
		},
	}
}
