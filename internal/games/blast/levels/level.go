// Package levels provides the Blast campaign: level definitions, validation
// and loading from the embedded catalog or a directory.
package levels

import (
	"fmt"

	"github.com/AKGMI/BlastGame/internal/config"
	"github.com/AKGMI/BlastGame/internal/games/blast/core"
	"github.com/AKGMI/BlastGame/internal/games/blast/engine"
)

// Level is a complete level definition.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Rules    config.RulesConfig
	Boosters config.BoosterConfig
	// Layout fixes the starting board when set, one string per row.
	Layout   []string
	Metadata map[string]string
	FilePath string
}

// Validate checks that the level can be played.
func (l Level) Validate() error {
	if l.ID == "" {
		return config.ValidationError{Code: "MISSING_ID", Message: "level has no id"}
	}
	if l.Rows <= 0 || l.Cols <= 0 {
		return config.ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("level %s: board must be at least 1x1, got %dx%d", l.ID, l.Rows, l.Cols),
		}
	}
	if err := l.validateLayout(); err != nil {
		return err
	}

	cfg := config.BlastConfig{Rules: l.Rules, Boosters: l.Boosters}
	if err := cfg.ValidateRules(l.Rows * l.Cols); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	return nil
}

func (l Level) validateLayout() error {
	if len(l.Layout) == 0 {
		return nil
	}
	if len(l.Layout) != l.Rows {
		return config.ValidationError{
			Code:    "LAYOUT_SIZE",
			Message: fmt.Sprintf("level %s: layout has %d rows, expected %d", l.ID, len(l.Layout), l.Rows),
		}
	}
	for r, row := range l.Layout {
		cells := []rune(row)
		if len(cells) != l.Cols {
			return config.ValidationError{
				Code:    "LAYOUT_SIZE",
				Message: fmt.Sprintf("level %s: layout row %d has %d cells, expected %d", l.ID, r, len(cells), l.Cols),
			}
		}
		for c, sym := range cells {
			if sym == '.' {
				continue
			}
			if _, err := core.ParseVariant(sym); err != nil {
				return config.ValidationError{
					Code:    "UNKNOWN_SYMBOL",
					Message: fmt.Sprintf("level %s: cell (%d,%d): %v", l.ID, r, c, err),
				}
			}
		}
	}
	return nil
}

// EngineConfig builds the engine config for one play of the level.
func (l Level) EngineConfig(seed int64) engine.Config {
	return engine.Config{
		Rows:         l.Rows,
		Cols:         l.Cols,
		TargetScore:  l.Rules.TargetScore,
		TotalMoves:   l.Rules.TotalMoves,
		MinGroupSize: l.Rules.MinGroupSize,
		MaxShuffles:  l.Rules.MaxShuffles,
		Bombs:        l.Boosters.Bomb,
		Swaps:        l.Boosters.Swap,
		Layout:       l.Layout,
		Seed:         seed,
	}
}

// FromConfig wraps a plain rules config as an unnamed level with a generated board.
func FromConfig(id, name string, cfg config.BlastConfig) Level {
	return Level{
		ID:       id,
		Name:     name,
		Rows:     cfg.Board.Rows,
		Cols:     cfg.Board.Cols,
		Rules:    cfg.Rules,
		Boosters: cfg.Boosters,
	}
}
