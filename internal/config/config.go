// Package config provides YAML and environment based configuration of the
// Blast rules: board size, score target, move and shuffle budgets and the
// booster stock.
package config

import "fmt"

// BlastConfig contains all tunable rules of a Blast game.
type BlastConfig struct {
	Board    BoardConfig   `yaml:"board"`
	Rules    RulesConfig   `yaml:"rules"`
	Boosters BoosterConfig `yaml:"boosters"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows" env:"BLAST_ROWS"`
	Cols int `yaml:"cols" env:"BLAST_COLS"`
}

// RulesConfig defines win/loss conditions and matching rules.
type RulesConfig struct {
	TargetScore  int `yaml:"target_score"   env:"BLAST_TARGET_SCORE"`
	TotalMoves   int `yaml:"total_moves"    env:"BLAST_TOTAL_MOVES"`
	MinGroupSize int `yaml:"min_group_size" env:"BLAST_MIN_GROUP"`
	MaxShuffles  int `yaml:"max_shuffles"   env:"BLAST_MAX_SHUFFLES"`
}

// BoosterConfig defines the starting booster stock.
type BoosterConfig struct {
	Bomb int `yaml:"bomb" env:"BLAST_BOMBS"`
	Swap int `yaml:"swap" env:"BLAST_SWAPS"`
}

// ValidationError describes why a configuration or level is unusable.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the rules describe a playable game.
func (c BlastConfig) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols),
		}
	}
	return c.Rules.validate(c.Board.Rows*c.Board.Cols, c.Boosters)
}

func (r RulesConfig) validate(cells int, b BoosterConfig) error {
	switch {
	case r.TargetScore <= 0:
		return ValidationError{
			Code:    "INVALID_TARGET",
			Message: fmt.Sprintf("target score must be positive, got %d", r.TargetScore),
		}
	case r.TotalMoves <= 0:
		return ValidationError{
			Code:    "INVALID_MOVES",
			Message: fmt.Sprintf("total moves must be positive, got %d", r.TotalMoves),
		}
	case r.MinGroupSize < 1 || r.MinGroupSize > cells:
		return ValidationError{
			Code:    "INVALID_MIN_GROUP",
			Message: fmt.Sprintf("min group size %d outside [1, %d]", r.MinGroupSize, cells),
		}
	case r.MaxShuffles < 0 || b.Bomb < 0 || b.Swap < 0:
		return ValidationError{
			Code:    "NEGATIVE_BUDGET",
			Message: "shuffle and booster budgets cannot be negative",
		}
	}
	return nil
}

// ValidateRules checks only the rules and boosters, for callers that take
// the board size from elsewhere (fixed level layouts).
func (c BlastConfig) ValidateRules(cells int) error {
	return c.Rules.validate(cells, c.Boosters)
}

// Preset names a built-in board setup.
type Preset string

const (
	PresetDefault Preset = "default"
	PresetSmall   Preset = "small"
	PresetBig     Preset = "big"
)

// Presets lists the built-in board setups in display order.
func Presets() []Preset {
	return []Preset{PresetDefault, PresetSmall, PresetBig}
}

// PresetConfig returns the config of a built-in board setup.
func PresetConfig(p Preset) (BlastConfig, error) {
	cfg := DefaultBlastConfig()
	switch p {
	case PresetDefault, "":
	case PresetSmall:
		cfg.Board = BoardConfig{Rows: 6, Cols: 6}
		cfg.Rules.TargetScore = 300
		cfg.Rules.TotalMoves = 15
		cfg.Rules.MaxShuffles = 1
	case PresetBig:
		cfg.Board = BoardConfig{Rows: 10, Cols: 10}
		cfg.Rules.TargetScore = 2000
		cfg.Rules.TotalMoves = 50
		cfg.Rules.MaxShuffles = 5
	default:
		return cfg, fmt.Errorf("config: unknown preset %q", p)
	}
	return cfg, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // no boosters
)

// ParseDifficulty validates a difficulty name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// ApplyBlastPreset scales the budgets of cfg for a difficulty preset.
// Easy gives half again as many moves and two extra shuffles. Hard cuts
// moves by a quarter and removes one shuffle and one of each booster.
func ApplyBlastPreset(cfg *BlastConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.TotalMoves += cfg.Rules.TotalMoves / 2
		cfg.Rules.MaxShuffles += 2
	case DifficultyHard:
		cfg.Rules.TotalMoves = max(1, cfg.Rules.TotalMoves*3/4)
		cfg.Rules.MaxShuffles = max(0, cfg.Rules.MaxShuffles-1)
		cfg.Boosters.Bomb = max(0, cfg.Boosters.Bomb-1)
		cfg.Boosters.Swap = max(0, cfg.Boosters.Swap-1)
	case DifficultyFixed:
		cfg.Boosters = BoosterConfig{}
	}
}
