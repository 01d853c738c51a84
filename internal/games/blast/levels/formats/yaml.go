// Package formats provides level file parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AKGMI/BlastGame/internal/config"
)

// YAMLLevel is the on-disk structure of a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Rules    YAMLRules         `yaml:"rules"`
	Boosters YAMLBoosters      `yaml:"boosters"`
	Layout   []string          `yaml:"layout,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize holds board dimensions. Optional when a layout is given.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLRules overrides the default rules. Zero values keep the default.
type YAMLRules struct {
	TargetScore  int  `yaml:"target_score"`
	TotalMoves   int  `yaml:"total_moves"`
	MinGroupSize int  `yaml:"min_group_size"`
	MaxShuffles  *int `yaml:"max_shuffles"`
}

// YAMLBoosters overrides the booster stock. Missing keys keep the default;
// an explicit 0 disables the booster.
type YAMLBoosters struct {
	Bomb *int `yaml:"bomb"`
	Swap *int `yaml:"swap"`
}

// Level is a parsed level with every rule resolved.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Rules    config.RulesConfig
	Boosters config.BoosterConfig
	Layout   []string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file. Rules missing from the file are taken
// from config.DefaultBlastConfig.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	def := config.DefaultBlastConfig()
	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Size.Rows,
		Cols:     yl.Size.Cols,
		Rules:    def.Rules,
		Boosters: def.Boosters,
		Metadata: yl.Metadata,
	}

	if yl.Rules.TargetScore != 0 {
		level.Rules.TargetScore = yl.Rules.TargetScore
	}
	if yl.Rules.TotalMoves != 0 {
		level.Rules.TotalMoves = yl.Rules.TotalMoves
	}
	if yl.Rules.MinGroupSize != 0 {
		level.Rules.MinGroupSize = yl.Rules.MinGroupSize
	}
	if yl.Rules.MaxShuffles != nil {
		level.Rules.MaxShuffles = *yl.Rules.MaxShuffles
	}
	if yl.Boosters.Bomb != nil {
		level.Boosters.Bomb = *yl.Boosters.Bomb
	}
	if yl.Boosters.Swap != nil {
		level.Boosters.Swap = *yl.Boosters.Swap
	}

	// Layout rows may be written with spaces between cells.
	for _, row := range yl.Layout {
		level.Layout = append(level.Layout, strings.ReplaceAll(row, " ", ""))
	}
	if len(level.Layout) > 0 {
		if level.Rows == 0 {
			level.Rows = len(level.Layout)
		}
		if level.Cols == 0 {
			level.Cols = len([]rune(level.Layout[0]))
		}
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
