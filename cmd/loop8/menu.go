package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop8/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Start Loop8 in menu mode. Pick play, design or stats; leaving a
mode with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Stats
  Q            - Quit

Examples:
  loop8 menu
  loop8 menu --difficulty hard
  loop8 menu --db ./loop8.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	for {
		cfg := runtimeConfig(store)
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsStats {
			goBack, err := tui.RunStats(store, menuResult.Config.ScreenW, menuResult.Config.ScreenH)
			if err != nil {
				logger.Error("stats screen failed", "err", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		result, err := runSession(menuResult.GameID, store)
		if err != nil {
			logger.Error("session failed", "mode", menuResult.GameID, "err", err)
			continue
		}
		if !result.Back {
			return nil
		}
	}
}
