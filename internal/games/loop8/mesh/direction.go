// Package mesh provides the Loop8 puzzle engine: the 8-direction connection
// algebra, the linked tile grid, placement and jumble generation, and the
// completion check. It is UI-agnostic and deterministic for a given RNG.
package mesh

// Direction is a single connection flag. Flags are ordered clockwise from
// North, one bit each, so a tile's connections fit in a uint8.
type Direction uint8

const (
	North     Direction = 1 << iota // 0b00000001
	NorthEast                       // 0b00000010
	East                            // 0b00000100
	SouthEast                       // 0b00001000
	South                           // 0b00010000
	SouthWest                       // 0b00100000
	West                            // 0b01000000
	NorthWest                       // 0b10000000
)

// Directions lists all eight flags in clockwise order starting at North.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Index returns the bit position (0..7) of the flag, or -1 if d is not a
// single flag.
func (d Direction) Index() int {
	for i, dir := range Directions {
		if dir == d {
			return i
		}
	}
	return -1
}

// Valid reports whether d is exactly one of the eight flags.
func (d Direction) Valid() bool {
	return d.Index() >= 0
}

// Opposite returns the flag pointing the other way (N<->S, NE<->SW, E<->W, SE<->NW).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case NorthEast:
		return SouthWest
	case East:
		return West
	case SouthEast:
		return NorthWest
	case South:
		return North
	case SouthWest:
		return NorthEast
	case West:
		return East
	case NorthWest:
		return SouthEast
	default:
		return d
	}
}

// Delta returns the (dx, dy) offset to the neighbor in this direction.
// Y grows downward (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// Angle returns the compass bearing of the flag in degrees, clockwise from North.
func (d Direction) Angle() int {
	i := d.Index()
	if i < 0 {
		return -1
	}
	return i * 45
}

// String returns the short compass name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "?"
	}
}
