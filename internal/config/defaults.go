package config

import (
	_ "embed"
)

//go:embed defaults/loop8.yaml
var defaultLoop8YAML []byte

// DefaultLoop8Config returns the hardcoded configuration. It matches
// defaults/loop8.yaml and is used when the embedded copy cannot be parsed.
func DefaultLoop8Config() Loop8Config {
	return Loop8Config{
		Grid: GridConfig{
			MinSize:   3,
			MaxWidth:  16,
			MaxHeight: 7,
		},
		Generation: GenerationConfig{
			PlaceChance: 0.5,
			EvenParity:  false,
			MaxPasses:   10000,
			MaxSteps:    4,
		},
		Jumble: JumbleConfig{
			MinChance: 0.2,
			MaxChance: 0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "solved",
				MaxAt: 20,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLoop8YAML
}
