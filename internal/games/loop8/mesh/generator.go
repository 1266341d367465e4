package mesh

import (
	"fmt"
	"math/rand"
)

// placeDirections visits each undirected edge exactly once when combined
// with a row-major walk.
var placeDirections = [4]Direction{East, SouthEast, South, SouthWest}

// ChanceFunc returns the per-tile jumble probability for the current
// progress level. The host owns the progress counter.
type ChanceFunc func() float64

// FixedChance returns a ChanceFunc that always yields p.
func FixedChance(p float64) ChanceFunc {
	return func() float64 { return p }
}

// Params configures puzzle generation.
type Params struct {
	PlaceChance float64 // Probability of connecting each neighbor pair (0-1]
	EvenParity  bool    // Force an even connection count per tile where possible
	MaxPasses   int     // Cap on placement retries and jumble passes
	MaxSteps    int     // Largest rotation applied to one tile in a jumble pass
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		PlaceChance: 0.5,
		EvenParity:  false,
		MaxPasses:   10000,
		MaxSteps:    4,
	}
}

// Generator creates solved layouts and jumbles them into puzzles.
type Generator struct {
	params Params
	rng    *rand.Rand
}

// NewGenerator creates a generator. The RNG fully determines the output.
func NewGenerator(p Params, rng *rand.Rand) *Generator {
	if p.MaxPasses <= 0 {
		p.MaxPasses = DefaultParams().MaxPasses
	}
	if p.MaxSteps <= 0 {
		p.MaxSteps = DefaultParams().MaxSteps
	}
	return &Generator{params: p, rng: rng}
}

// Params returns the generator's effective parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Place builds a random solved layout: every neighbor pair is connected on
// both ends with probability PlaceChance. An all-empty result is retried.
// Afterwards the masks are recorded as the tiles' original (solved) state.
func (g *Generator) Place(m *Mesh) error {
	if g.params.PlaceChance <= 0 {
		return fmt.Errorf("%w: place chance %.2f must be positive", ErrConfiguration, g.params.PlaceChance)
	}
	if m.InternalEdges() == 0 {
		return fmt.Errorf("%w: %dx%d mesh has no internal edges", ErrConfiguration, m.width, m.height)
	}

	placed := false
	for range g.params.MaxPasses {
		m.Clear()
		for _, t := range m.All() {
			for _, d := range placeDirections {
				if t.HasNeighbor(d) && g.rng.Float64() < g.params.PlaceChance {
					t.connect(d)
				}
			}
		}
		if m.ConnectionCount() > 0 {
			placed = true
			break
		}
	}
	if !placed {
		return fmt.Errorf("%w: no connections placed after %d passes", ErrGenerationFailed, g.params.MaxPasses)
	}

	if g.params.EvenParity {
		Normalize(m)
	}

	m.SnapshotOriginal()
	m.SnapshotStart()
	return nil
}

// PlaceFrom loads preset masks instead of placing at random. No randomness
// is used; see Load.
func (g *Generator) PlaceFrom(m *Mesh, lvl Level) error {
	return Load(m, lvl)
}

// Normalize gives every tile with an odd connection count one more
// connection, East if free and present, otherwise South. Both ends are set,
// so the layout stays solved.
func Normalize(m *Mesh) {
	for _, t := range m.All() {
		if t.Weight()%2 == 0 {
			continue
		}
		if !Has(t.mask, East) && t.connect(East) {
			continue
		}
		if !Has(t.mask, South) {
			t.connect(South)
		}
	}
}

// Jumble rotates tiles away from the solved layout. Each pass gives every
// tile, with probability chance(), a random rotation of 0..MaxSteps steps in
// a random direction. Passes repeat until the grid is no longer complete.
// The resulting masks are recorded as the tiles' dealt state.
func (g *Generator) Jumble(m *Mesh, chance ChanceFunc) (passes int, err error) {
	p := 1.0
	if chance != nil {
		p = chance()
	}
	if p <= 0 {
		return 0, fmt.Errorf("%w: jumble chance %.2f must be positive", ErrConfiguration, p)
	}
	if m.ConnectionCount() == 0 {
		return 0, fmt.Errorf("%w: cannot jumble an empty mesh", ErrConfiguration)
	}

	for pass := 1; pass <= g.params.MaxPasses; pass++ {
		for _, t := range m.All() {
			if g.rng.Float64() >= p {
				continue
			}
			steps := g.rng.Intn(g.params.MaxSteps + 1)
			if g.rng.Intn(2) == 0 {
				t.Rotate(steps)
			} else {
				t.Unrotate(steps)
			}
		}
		if !IsGridComplete(m) {
			m.SnapshotStart()
			return pass, nil
		}
	}

	return g.params.MaxPasses, fmt.Errorf("%w: grid still solved after %d jumble passes",
		ErrGenerationFailed, g.params.MaxPasses)
}

// Generate builds a fresh width x height puzzle: a mesh, a random solved
// layout, and a jumble. It returns the mesh and the number of jumble passes.
func (g *Generator) Generate(width, height int, chance ChanceFunc) (*Mesh, int, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, 0, err
	}
	if err := g.Place(m); err != nil {
		return nil, 0, err
	}
	passes, err := g.Jumble(m, chance)
	if err != nil {
		return nil, passes, err
	}
	return m, passes, nil
}
