package mesh

import (
	"fmt"
	"math/bits"
)

// HammingWeight returns the number of connections set in mask.
func HammingWeight(mask uint8) int {
	return bits.OnesCount8(mask)
}

// RotateRight turns every connection clockwise by steps positions.
// North becomes NorthEast, ..., NorthWest wraps around to North.
func RotateRight(mask uint8, steps int) uint8 {
	return bits.RotateLeft8(mask, normalizeSteps(steps))
}

// RotateLeft turns every connection counter-clockwise by steps positions.
// It is the inverse of RotateRight.
func RotateLeft(mask uint8, steps int) uint8 {
	return bits.RotateLeft8(mask, -normalizeSteps(steps))
}

// SingleDirection returns the only direction set in mask.
// Callers must check HammingWeight(mask) == 1 first.
func SingleDirection(mask uint8) (Direction, error) {
	if HammingWeight(mask) != 1 {
		return 0, fmt.Errorf("%w: mask %08b has %d connections, want 1",
			ErrInvalidState, mask, HammingWeight(mask))
	}
	return Direction(mask), nil
}

// Has reports whether mask contains the connection d.
func Has(mask uint8, d Direction) bool {
	return mask&uint8(d) != 0
}

// DirectionsOf lists the connections in mask in clockwise order from North.
func DirectionsOf(mask uint8) []Direction {
	out := make([]Direction, 0, HammingWeight(mask))
	for _, d := range Directions {
		if Has(mask, d) {
			out = append(out, d)
		}
	}
	return out
}

// normalizeSteps reduces a step count to [0, 8). Negative counts rotate the
// other way.
func normalizeSteps(steps int) int {
	steps %= 8
	if steps < 0 {
		steps += 8
	}
	return steps
}
