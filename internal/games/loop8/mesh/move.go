package mesh

import "fmt"

// MoveKind enumerates the player moves the engine accepts.
type MoveKind uint8

const (
	MoveRotate          MoveKind = iota // Turn the tile by Steps in Spin direction
	MoveToggle                          // Flip the connection toward Dir on both ends (design mode)
	MoveRestoreOriginal                 // Put the tile back to its solved mask
	MoveRestoreStart                    // Put the tile back to its dealt mask
)

// String returns a human-readable name for the move kind.
func (k MoveKind) String() string {
	switch k {
	case MoveRotate:
		return "Rotate"
	case MoveToggle:
		return "Toggle"
	case MoveRestoreOriginal:
		return "RestoreOriginal"
	case MoveRestoreStart:
		return "RestoreStart"
	default:
		return "Unknown"
	}
}

// Spin is the rotation direction of a move.
type Spin int8

const (
	Clockwise        Spin = 1
	CounterClockwise Spin = -1
)

// Move is a single player action on one tile.
type Move struct {
	Kind  MoveKind
	Steps int       // MoveRotate only; values < 1 mean one step
	Spin  Spin      // MoveRotate only
	Dir   Direction // MoveToggle only
}

// RotateMove turns a tile by steps in the given spin.
func RotateMove(steps int, spin Spin) Move {
	return Move{Kind: MoveRotate, Steps: steps, Spin: spin}
}

// ToggleMove flips the connection toward d.
func ToggleMove(d Direction) Move {
	return Move{Kind: MoveToggle, Dir: d}
}

// RestoreOriginalMove returns a tile to its solved mask.
func RestoreOriginalMove() Move {
	return Move{Kind: MoveRestoreOriginal}
}

// RestoreStartMove returns a tile to its dealt mask.
func RestoreStartMove() Move {
	return Move{Kind: MoveRestoreStart}
}

// Apply performs mv on the tile at index i and reports whether any mask changed.
func (m *Mesh) Apply(i int, mv Move) (bool, error) {
	t := m.Tile(i)
	if t == nil {
		return false, fmt.Errorf("%w: tile %d out of range [0,%d)", ErrInvalidState, i, m.Len())
	}

	before := t.mask
	switch mv.Kind {
	case MoveRotate:
		steps := mv.Steps
		if steps < 1 {
			steps = 1
		}
		if mv.Spin == CounterClockwise {
			t.Unrotate(steps)
		} else {
			t.Rotate(steps)
		}
	case MoveToggle:
		if !mv.Dir.Valid() {
			return false, fmt.Errorf("%w: toggle direction %d is not a single flag", ErrInvalidState, mv.Dir)
		}
		return t.Toggle(mv.Dir), nil
	case MoveRestoreOriginal:
		t.RestoreOriginal()
	case MoveRestoreStart:
		t.RestoreStart()
	default:
		return false, fmt.Errorf("%w: unknown move kind %d", ErrInvalidState, mv.Kind)
	}
	return t.mask != before, nil
}
