// loop8 is a terminal puzzle: rotate tiles until every link on the board
// meets its partner.
//
// Usage:
//
//	loop8 play               - Play random puzzles of rising difficulty
//	loop8 design             - Draw a layout by hand and save it
//	loop8 menu               - Pick a mode interactively
//	loop8 export             - Generate a solved layout as a level file
//	loop8 levels [dir]       - List preset levels
//	loop8 stats              - Show solve history
//	loop8 list               - List modes
//
// Global flags:
//
//	--fps <rate>        - Tick rate (default: 30)
//	--seed <value>      - RNG seed for reproducible puzzles
//	--db <path>         - Database path (default: ~/.loop8/loop8.db)
//	--log-file <path>   - Write game logs to a file
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/loop8/internal/core"
	"github.com/vovakirdan/loop8/internal/games/loop8"
	"github.com/vovakirdan/loop8/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "loop8"})
	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "loop8",
	Short: "Loop8 - rotate tiles until every link connects",
	Long: `Loop8 is a rotation puzzle for the terminal. Each tile carries up to
eight links, one per compass direction. Rotate tiles until every link
meets a matching link on the neighboring tile.

Available commands:
  play     - Play random puzzles; difficulty follows your progress
  design   - Edit a layout link by link and export it
  menu     - Interactive mode picker
  export   - Generate a solved layout as a level file
  levels   - List preset levels
  stats    - Show solve history
  list     - List modes

Examples:
  loop8 play
  loop8 play --width 6 --height 4 --difficulty hard
  loop8 play --level 03-star
  loop8 design --out my-level.yaml
  loop8 export --width 5 --height 5 --seed 42 --format json`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.loop8/loop8.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(designCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
}

// setupLogging configures the CLI logger. Game logs only go to --log-file,
// since the terminal belongs to the puzzle while it runs.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagLogFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	gameLog := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "loop8",
		Level:           level,
	})
	loop8.SetLogger(gameLog)
	return nil
}

// openStore opens the progress database. Failure is only a warning: the
// puzzle still works, it just forgets progress on exit.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig(store *storage.Store) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if store != nil {
		if n, err := store.LevelsSolved(); err == nil {
			cfg.Progress = n
		} else {
			logger.Warn("could not read progress", "err", err)
		}
	}
	return cfg
}
