package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AKGMI/BlastGame/internal/games/blast/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [id]",
	Short: "List campaign levels",
	Long: `Shows the campaign levels with their board size and budgets.
With an ID, prints that level in full, including any fixed layout.

Level files that fail validation are skipped; use --check to report them.

Examples:
  blast levels
  blast levels 03
  blast levels --levels-dir ./levels --check`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

var flagCheck bool

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with campaign level files (default: built-in levels)")
	levelsCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate every level file and report errors")
}

func runLevels(cmd *cobra.Command, args []string) error {
	loader := levels.NewCampaignLoader()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}
	out := cmd.OutOrStdout()

	if flagCheck {
		bad, err := loader.Check()
		if err != nil {
			return err
		}
		for _, fe := range bad {
			fmt.Fprintln(out, fe.Error())
		}
		ids, err := loader.ListIDs()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d valid level(s), %d invalid: %v\n", len(ids), len(bad), ids)
		if len(bad) > 0 {
			return fmt.Errorf("%d invalid level file(s)", len(bad))
		}
		return nil
	}

	if len(args) > 0 {
		lvl, err := loader.LoadByID(args[0])
		if err != nil {
			return err
		}
		printLevel(cmd, lvl)
		return nil
	}

	all, err := loader.LoadAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No levels found.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-14s  %-5s  %-6s  %-5s  %-8s  %s\n",
		"ID", "Name", "Size", "Target", "Moves", "Shuffles", "Boosters")
	for _, l := range all {
		fmt.Fprintf(out, "  %-4s  %-14s  %-5s  %-6d  %-5d  %-8d  bomb %d, swap %d\n",
			l.ID, l.Name, fmt.Sprintf("%dx%d", l.Rows, l.Cols),
			l.Rules.TargetScore, l.Rules.TotalMoves, l.Rules.MaxShuffles,
			l.Boosters.Bomb, l.Boosters.Swap)
	}
	return nil
}

func printLevel(cmd *cobra.Command, l levels.Level) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Level %s: %s\n\n", l.ID, l.Name)
	fmt.Fprintf(out, "  Board:      %dx%d\n", l.Rows, l.Cols)
	fmt.Fprintf(out, "  Target:     %d\n", l.Rules.TargetScore)
	fmt.Fprintf(out, "  Moves:      %d\n", l.Rules.TotalMoves)
	fmt.Fprintf(out, "  Shuffles:   %d\n", l.Rules.MaxShuffles)
	fmt.Fprintf(out, "  Min group:  %d\n", l.Rules.MinGroupSize)
	fmt.Fprintf(out, "  Boosters:   bomb %d, swap %d\n", l.Boosters.Bomb, l.Boosters.Swap)
	if l.FilePath != "" {
		fmt.Fprintf(out, "  File:       %s\n", l.FilePath)
	}
	if len(l.Layout) > 0 {
		fmt.Fprintln(out, "\nLayout:")
		for _, row := range l.Layout {
			fmt.Fprintf(out, "  %s\n", row)
		}
	}
}
