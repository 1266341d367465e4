package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop8/internal/config"
	"github.com/vovakirdan/loop8/internal/games/loop8"
	"github.com/vovakirdan/loop8/internal/games/loop8/levels"
	"github.com/vovakirdan/loop8/internal/platform/tui"
	"github.com/vovakirdan/loop8/internal/registry"
	"github.com/vovakirdan/loop8/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagLevel      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play random puzzles",
	Long: `Play Loop8. Every solved puzzle is recorded and makes the next one
a little more scrambled.

Controls:
  Arrows/WASD  - Move cursor
  Space/E      - Rotate tile clockwise (or left click)
  X/Z          - Rotate counter-clockwise (or right click)
  O            - Restore tile to its solved state (or alt+click)
  U            - Restore tile to its dealt state
  R            - Reset the puzzle
  N            - Next puzzle
  P            - Pause
  ?            - Full help
  Esc/B        - Back
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Gentle jumble, even-parity layouts
  normal - Jumble grows with each solve
  hard   - Denser layouts, jumble starts high
  fixed  - No progression

Examples:
  loop8 play
  loop8 play --difficulty easy
  loop8 play --width 8 --height 5
  loop8 play --level 02-cross
  loop8 play --level ./my-level.yaml
  loop8 play --config ./my-loop8.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, designCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom loop8 config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().IntVar(&flagWidth, "width", 0, "Grid width (0 = fit terminal)")
		c.Flags().IntVar(&flagHeight, "height", 0, "Grid height (0 = fit terminal)")
		c.Flags().StringVar(&flagLevel, "level", "", "Preset level: bundled ID or path to a level file")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err := runSession(loop8.IDPlay, store)
	return err
}

// applyGameFlags pushes the command-line settings into the loop8 package
// before a game is created.
func applyGameFlags() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagDifficulty == "" {
		preset = ""
	}

	loop8.SetConfigPath(flagConfig)
	loop8.SetDifficultyPreset(preset)
	loop8.SetGridSize(flagWidth, flagHeight)

	if flagLevel == "" {
		loop8.SetLevel(nil)
		return nil
	}
	lvl, err := resolveLevel(flagLevel)
	if err != nil {
		return err
	}
	loop8.SetLevel(&lvl)
	return nil
}

// resolveLevel loads a level file when ref names one on disk, otherwise it
// looks ref up among the bundled levels.
func resolveLevel(ref string) (levels.Level, error) {
	if _, err := os.Stat(ref); err == nil {
		return levels.LoadPath(ref)
	}
	lvl, err := levels.Bundled().LoadByID(ref)
	if err != nil {
		return levels.Level{}, fmt.Errorf("unknown level %q (run 'loop8 levels' to list presets): %w", ref, err)
	}
	return lvl, nil
}

// runSession runs one game mode until the player leaves it.
func runSession(id string, store *storage.Store) (tui.Result, error) {
	game, err := registry.Create(id)
	if err != nil {
		return tui.Result{}, err
	}

	cfg := runtimeConfig(store)
	result, err := tui.Run(game, store, cfg, id == loop8.IDDesign)
	if err != nil {
		return result, fmt.Errorf("running %s: %w", id, err)
	}
	if result.Err != nil {
		logger.Warn("some solves were not saved", "err", result.Err)
	}
	if g, ok := game.(*loop8.Game); ok && g.Err() != nil {
		logger.Error("puzzle generation failed", "err", g.Err())
	}
	return result, nil
}
