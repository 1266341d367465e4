package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop8/internal/games/loop8/levels"
	"github.com/vovakirdan/loop8/internal/games/loop8/mesh"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List preset levels",
	Long: `Lists the bundled levels, or every level file under dir. Files that
fail to parse are skipped.

Examples:
  loop8 levels
  loop8 levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, args []string) error {
	loader := levels.Bundled()
	if len(args) == 1 {
		loader = levels.NewLoader(args[0])
	}

	all, err := loader.LoadAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Printf("No levels found in %s.\n", loader.Root)
		return nil
	}

	maxIDLen := 2
	for _, lvl := range all {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-5s  %-7s  %s\n", maxIDLen, "ID", "Size", "Links", "Solved", "Name")
	fmt.Printf("  %-*s  %-5s  %-5s  %-7s  %s\n", maxIDLen, "--", "----", "-----", "------", "----")
	for _, lvl := range all {
		links, solved := "?", "?"
		if m, err := lvl.NewMesh(); err == nil {
			links = fmt.Sprint(m.ConnectionCount() / 2)
			solved = fmt.Sprint(mesh.IsGridComplete(m))
		}
		fmt.Printf("  %-*s  %-5s  %-5s  %-7s  %s\n", maxIDLen, lvl.ID,
			fmt.Sprintf("%dx%d", lvl.Puzzle.Width, lvl.Puzzle.Height), links, solved, lvl.Name)
	}
	fmt.Println()
	fmt.Println("Run 'loop8 play --level <id>' to play one.")
	return nil
}
