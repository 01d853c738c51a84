package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AKGMI/BlastGame/internal/registry"
	"github.com/AKGMI/BlastGame/internal/storage"
)

var (
	flagRounds   int
	flagTop      int
	flagAllModes bool
	flagClear    bool
	flagRoundID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent rounds",
	Long: `Display the top scores and the most recent rounds for a mode.
Without an argument the classic "blast" mode is shown.

Examples:
  blast scores
  blast scores blast_campaign --rounds 20
  blast scores --top 0
  blast scores --all
  blast scores --round 6f1c...
  blast scores blast_small --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of recent rounds to show")
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of high scores to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagAllModes, "all", false, "Show a summary of every mode played")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and rounds of the mode")
	scoresCmd.Flags().StringVar(&flagRoundID, "round", "", "Show a single round by ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagRoundID != "":
		return printRound(cmd, store, flagRoundID)
	case flagAllModes:
		return printAllModes(cmd, store)
	}

	gameID := "blast"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'blast list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		appLogger().Info("scores cleared", "mode", gameID)
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s.\n", game.Title())
		return nil
	}

	return printScores(cmd, store, gameID, game.Title())
}

func printRound(cmd *cobra.Command, store *storage.Store, id string) error {
	r, err := store.RoundByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no round with id %q", id)
	}

	out := cmd.OutOrStdout()
	level := r.Level
	if level == "" {
		level = "-"
	}
	fmt.Fprintf(out, "Round %s\n\n", r.ID)
	fmt.Fprintf(out, "  Mode:      %s\n", r.GameID)
	fmt.Fprintf(out, "  Level:     %s\n", level)
	fmt.Fprintf(out, "  Outcome:   %s\n", r.Outcome)
	fmt.Fprintf(out, "  Score:     %d / %d\n", r.Score, r.Target)
	fmt.Fprintf(out, "  Moves:     %d\n", r.MovesUsed)
	fmt.Fprintf(out, "  Shuffles:  %d\n", r.ShufflesUsed)
	fmt.Fprintf(out, "  Boosters:  %d\n", r.BoostersUsed)
	fmt.Fprintf(out, "  Played:    %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func printAllModes(cmd *cobra.Command, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-16s  %-6s  %-6s  %-7s  %-7s  %s\n", "Mode", "Games", "Best", "Average", "Win %", "Last played")
	for _, id := range ids {
		gs := all[id]
		fmt.Fprintf(out, "  %-16s  %-6d  %-6d  %-7.0f  %-7.0f  %s\n",
			id, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.WinRate()*100,
			gs.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printScores(cmd *cobra.Command, store *storage.Store, gameID, title string) error {
	out := cmd.OutOrStdout()

	var scores []storage.ScoreEntry
	var err error
	if flagTop > 0 {
		scores, err = store.TopScores(gameID, flagTop)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if stats.GamesCount > 0 {
		fmt.Fprintf(out, "\nBest: %d  Average: %.0f  Games: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	}

	if flagRounds <= 0 {
		return nil
	}
	rounds, err := store.RecentRounds(gameID, flagRounds)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}
	if len(rounds) == 0 {
		return nil
	}

	fmt.Fprintf(out, "\nRecent rounds (won %d of %d overall)\n", stats.Wins, stats.Wins+stats.Losses)
	for _, r := range rounds {
		level := r.Level
		if level == "" {
			level = "-"
		}
		fmt.Fprintf(out, "  %-16s  %-4s  %5d/%-5d  moves %-3d shuffles %-2d boosters %-2d  %s\n",
			level, r.Outcome, r.Score, r.Target, r.MovesUsed, r.ShufflesUsed, r.BoostersUsed,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
