package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AKGMI/BlastGame/internal/config"
	"github.com/AKGMI/BlastGame/internal/core"
	"github.com/AKGMI/BlastGame/internal/games/blast"
	"github.com/AKGMI/BlastGame/internal/platform/tui"
	"github.com/AKGMI/BlastGame/internal/registry"
	"github.com/AKGMI/BlastGame/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagPreset     string
	flagLevel      string
	flagCampaign   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing Blast.

Without --campaign a single classic round is played on the board chosen by
--preset (default reads the config file). With --campaign the levels are
played in order; --level picks the first one, otherwise a level picker opens.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Blast the group under the cursor (mouse clicks work too)
  1 / 2        - Arm bomb / swap booster
  X            - Cancel booster
  F            - Shuffle
  H            - Hint
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Menu (when paused or over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Screenshot

Difficulty options:
  easy   - 50% more moves, two extra shuffles
  normal - Budgets as configured
  hard   - A quarter fewer moves, one shuffle and one of each booster less
  fixed  - No boosters

Examples:
  blast play
  blast play --preset small
  blast play --difficulty hard --config ./my-blast.yaml
  blast play --campaign
  blast play --level 03 --levels-dir ./levels`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagPreset, "preset", string(config.PresetDefault), "Board preset: default, small, big")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Campaign level ID to start from (implies --campaign)")
	playCmd.Flags().BoolVar(&flagCampaign, "campaign", false, "Play the level campaign")
}

// addGameFlags registers the flags shared by commands that start games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom blast config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with campaign level files (default: built-in levels)")
}

// applyGameFlags pushes the shared flags into the blast package.
func applyGameFlags() error {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	blast.SetConfigPath(flagConfig)
	blast.SetDifficultyPreset(difficulty)
	blast.SetLevelsDir(flagLevelsDir)
	return nil
}

// gameIDForPreset maps a board preset to its registered mode.
func gameIDForPreset(p config.Preset) (string, error) {
	switch p {
	case config.PresetDefault, "":
		return "blast", nil
	case config.PresetSmall:
		return "blast_small", nil
	case config.PresetBig:
		return "blast_big", nil
	}
	names := make([]string, 0, len(config.Presets()))
	for _, known := range config.Presets() {
		names = append(names, string(known))
	}
	return "", fmt.Errorf("unknown preset %q (use one of: %s)", p, strings.Join(names, ", "))
}

// terminalConfig builds the runtime config from the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database; failures only disable persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		appLogger().Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	gameID := tui.CampaignGameID
	if !flagCampaign && flagLevel == "" {
		id, err := gameIDForPreset(config.Preset(flagPreset))
		if err != nil {
			return err
		}
		gameID = id
	}

	cfg := terminalConfig()

	blast.SetStartLevel(flagLevel)

	levelID := ""
	if gameID == tui.CampaignGameID && flagLevel == "" {
		picked, err := tui.RunLevelMenu(blast.CampaignLevels(), cfg)
		if err != nil {
			return err
		}
		if picked == "" {
			return nil
		}
		levelID = picked
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if ls, ok := game.(registry.LevelSelector); ok && levelID != "" {
		ls.SelectLevel(levelID)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
