package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop8/internal/storage"
)

var (
	flagReset  bool
	flagRecent int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show solve history",
	Long: `Display progress and the most recent solves.

Examples:
  loop8 stats
  loop8 stats --recent 25
  loop8 stats --reset`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear progress and solve history")
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent solves to show")
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetProgress(); err != nil {
			return err
		}
		fmt.Println("Progress cleared.")
		return nil
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	recent, err := store.RecentSolves(flagRecent)
	if err != nil {
		return err
	}

	fmt.Println("Loop8 Stats")
	fmt.Println()
	fmt.Printf("  Levels solved:  %d\n", stats.LevelsSolved)
	if stats.Solves == 0 {
		fmt.Println()
		fmt.Println("No solves recorded yet. Run 'loop8 play' to start!")
		return nil
	}
	fmt.Printf("  Total moves:    %d\n", stats.TotalMoves)
	fmt.Printf("  Average moves:  %.1f\n", stats.AvgMoves)
	fmt.Printf("  Fewest moves:   %d\n", stats.BestMoves)
	fmt.Printf("  Fastest solve:  %s\n", stats.Fastest.Round(100*time.Millisecond))
	fmt.Printf("  Last solved:    %s\n", stats.LastSolved.Local().Format("2006-01-02 15:04"))
	fmt.Println()

	fmt.Printf("  %-16s  %-5s  %-5s  %-8s  %-6s  %s\n", "Date", "Size", "Moves", "Time", "Jumble", "Mode")
	fmt.Printf("  %-16s  %-5s  %-5s  %-8s  %-6s  %s\n", "----", "----", "-----", "----", "------", "----")
	for _, r := range recent {
		fmt.Printf("  %-16s  %-5s  %-5d  %-8s  %-6s  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Moves,
			r.Duration.Round(100*time.Millisecond),
			fmt.Sprintf("%.0f%%", r.JumbleChance*100),
			r.Mode)
	}
	return nil
}
