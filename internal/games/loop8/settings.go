package loop8

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/loop8/internal/config"
	"github.com/vovakirdan/loop8/internal/games/loop8/levels"
)

// Package-level settings, applied on the next Reset.
var (
	logger = log.New(io.Discard)

	configPath       string
	difficultyPreset config.DifficultyPreset
	gridWidth        int
	gridHeight       int
	presetLevel      *levels.Level
)

// SetLogger routes game logs to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetConfigPath sets a custom config file. Empty uses the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects easy, normal, hard or fixed.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficultyPreset = p
}

// SetGridSize overrides the configured grid size. Zero fits the terminal.
func SetGridSize(width, height int) {
	gridWidth = width
	gridHeight = height
}

// SetLevel makes every puzzle start from a preset layout instead of a
// random one. Nil restores random placement.
func SetLevel(lvl *levels.Level) {
	presetLevel = lvl
}

// loadConfig resolves the configuration for a new session.
func loadConfig() config.Loop8Config {
	cfg, err := config.LoadLoop8(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultLoop8Config()
	}
	if difficultyPreset != "" {
		config.ApplyLoop8Preset(&cfg, difficultyPreset)
	}
	if gridWidth > 0 {
		cfg.Grid.Width = gridWidth
	}
	if gridHeight > 0 {
		cfg.Grid.Height = gridHeight
	}
	return cfg
}
