package config

import "github.com/vovakirdan/loop8/internal/core"

// DifficultyManager turns progress into a difficulty level and the level
// into a jumble chance.
type DifficultyManager struct {
	cfg          DifficultyConfig
	jumble       JumbleConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, jumble JumbleConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		jumble:       jumble,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) after the given number
// of solved puzzles.
func (d *DifficultyManager) Level(solved int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	switch d.cfg.Progression.Type {
	case "solved", "":
	default:
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := core.ClampF(float64(solved)/maxAt, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// JumbleChance returns the per-tile jumble probability after the given
// number of solved puzzles. It never decreases as solved grows and stays
// within the configured [min, max] range.
func (d *DifficultyManager) JumbleChance(solved int) float64 {
	level := d.Level(max(solved, 0))
	lo, hi := d.jumble.MinChance, d.jumble.MaxChance
	return core.ClampF(lo+level*(hi-lo), lo, hi)
}
