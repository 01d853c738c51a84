// blast is a tile-matching puzzle played in the terminal.
//
// Usage:
//
//	blast play               - Play a round (classic or campaign)
//	blast menu               - Start menu to pick modes interactively
//	blast list               - List available modes
//	blast levels             - List campaign levels
//	blast scores [mode]      - Show high scores and recent rounds
//	blast board              - Print a generated board
//	blast serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.arcade/blast.db)
//	--log-file <path>  - Write logs to a file
//	--verbose          - Log engine events at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AKGMI/BlastGame/internal/games/blast"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagVerbose bool

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	closeLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blast",
	Short: "Blast - clear colored groups in your terminal",
	Long: `Blast is a tile-matching puzzle: click groups of same-colored tiles to
clear them, build super tiles from big groups and reach the target score
before you run out of moves.

Available commands:
  play     - Play a round directly
  menu     - Interactive mode picker
  list     - Show all modes
  levels   - Show campaign levels
  scores   - View high scores and recent rounds
  board    - Print a generated board
  serve    - Start SSH server for remote play

Examples:
  blast play
  blast play --preset small --difficulty easy
  blast play --campaign --level 03
  blast board --seed 42
  blast serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/blast.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the TUI owns the terminal)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine events at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger. Without a log file, TUI commands
// discard logs and the rest write to stderr.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case cmd == serveCmd || cmd == boardCmd:
		w = os.Stderr
	}

	blast.SetLogger(newLogger(w, flagVerbose))
	return nil
}

func closeLogger() {
	if logFile != nil {
		logFile.Close()
	}
}

// appLogger returns the logger installed for this run.
func appLogger() *log.Logger {
	return blast.Logger()
}
