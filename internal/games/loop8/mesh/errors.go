package mesh

import "errors"

var (
	// ErrInvalidState is returned when querying the single direction of a
	// mask that has zero or several connections.
	ErrInvalidState = errors.New("mesh: invalid state")

	// ErrConfiguration is returned for non-positive grid dimensions, preset
	// masks that do not match the grid, or generation parameters that can
	// never produce a puzzle.
	ErrConfiguration = errors.New("mesh: configuration error")

	// ErrGenerationFailed is returned when jumble cannot leave the solved
	// state within the configured number of passes.
	ErrGenerationFailed = errors.New("mesh: generation failed")
)
