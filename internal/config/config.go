// Package config provides YAML-based puzzle configuration loading and
// difficulty management.
package config

import (
	"fmt"

	"github.com/vovakirdan/loop8/internal/games/loop8/mesh"
)

// Loop8Config contains all configuration for the puzzle.
type Loop8Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Generation GenerationConfig `yaml:"generation"`
	Jumble     JumbleConfig     `yaml:"jumble"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the puzzle size. A zero width or height fits the
// grid to the terminal.
type GridConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MinSize   int `yaml:"min_size"`   // Smallest fitted dimension
	MaxWidth  int `yaml:"max_width"`  // Largest fitted width (0 = unbounded)
	MaxHeight int `yaml:"max_height"` // Largest fitted height (0 = unbounded)
}

// GenerationConfig defines solved-layout placement.
type GenerationConfig struct {
	PlaceChance float64 `yaml:"place_chance"`
	EvenParity  bool    `yaml:"even_parity"`
	MaxPasses   int     `yaml:"max_passes"`
	MaxSteps    int     `yaml:"max_steps"`
}

// JumbleConfig bounds the per-tile jumble probability. Difficulty moves the
// effective chance from MinChance toward MaxChance.
type JumbleConfig struct {
	MinChance float64 `yaml:"min_chance"`
	MaxChance float64 `yaml:"max_chance"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "solved" or "none"
	MaxAt int    `yaml:"max_at"` // Solved count at which max difficulty is reached
}

// Params converts the generation section into engine parameters.
func (g GenerationConfig) Params() mesh.Params {
	return mesh.Params{
		PlaceChance: g.PlaceChance,
		EvenParity:  g.EvenParity,
		MaxPasses:   g.MaxPasses,
		MaxSteps:    g.MaxSteps,
	}
}

// Validate checks the ranges the engine relies on.
func (c Loop8Config) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("%w: grid size %dx%d is negative", mesh.ErrConfiguration, c.Grid.Width, c.Grid.Height)
	}
	if c.Generation.PlaceChance <= 0 || c.Generation.PlaceChance > 1 {
		return fmt.Errorf("%w: place_chance %.2f outside (0,1]", mesh.ErrConfiguration, c.Generation.PlaceChance)
	}
	if c.Jumble.MinChance <= 0 || c.Jumble.MaxChance > 1 || c.Jumble.MinChance > c.Jumble.MaxChance {
		return fmt.Errorf("%w: jumble chance range [%.2f,%.2f] must satisfy 0 < min <= max <= 1",
			mesh.ErrConfiguration, c.Jumble.MinChance, c.Jumble.MaxChance)
	}
	switch c.Difficulty.Progression.Type {
	case "solved", "none", "":
	default:
		return fmt.Errorf("%w: unknown progression type %q", mesh.ErrConfiguration, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard, fixed)", mesh.ErrConfiguration, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
