// Package engine sequences player actions through the Blast board,
// boosters and counters, and derives the win/loss state.
package engine

import (
	"errors"
	"fmt"

	"github.com/AKGMI/BlastGame/internal/games/blast/booster"
	"github.com/AKGMI/BlastGame/internal/games/blast/core"
)

// ErrInvalidConfig is returned by New and Reset for unusable configurations.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config describes one game.
type Config struct {
	Rows         int
	Cols         int
	TargetScore  int
	TotalMoves   int
	MinGroupSize int
	MaxShuffles  int
	Bombs        int
	Swaps        int
	// Layout optionally fixes the starting board (see core.NewBoardFromLayout).
	Layout []string
	// Seed is used when no random source is injected with WithRand.
	Seed int64
}

// DefaultConfig returns the standard 8x8 game.
func DefaultConfig() Config {
	return Config{
		Rows:         8,
		Cols:         8,
		TargetScore:  10000,
		TotalMoves:   30,
		MinGroupSize: core.DefaultMinGroupSize,
		MaxShuffles:  3,
		Bombs:        booster.DefaultBombs,
		Swaps:        booster.DefaultSwaps,
	}
}

// Validate checks the config for values the engine cannot play with.
func (c Config) Validate() error {
	switch {
	case len(c.Layout) == 0 && (c.Rows <= 0 || c.Cols <= 0):
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.TargetScore <= 0:
		return fmt.Errorf("%w: target score %d", ErrInvalidConfig, c.TargetScore)
	case c.TotalMoves <= 0:
		return fmt.Errorf("%w: total moves %d", ErrInvalidConfig, c.TotalMoves)
	case c.MinGroupSize < 1:
		return fmt.Errorf("%w: min group size %d", ErrInvalidConfig, c.MinGroupSize)
	case c.MaxShuffles < 0 || c.Bombs < 0 || c.Swaps < 0:
		return fmt.Errorf("%w: negative budget", ErrInvalidConfig)
	}
	return nil
}
