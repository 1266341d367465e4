package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/loop8/internal/games/loop8/mesh"
)

var meshSizes = []struct{ w, h int }{
	{1, 1}, {1, 4}, {4, 1}, {2, 2}, {3, 3}, {5, 4}, {7, 5},
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 4}, {0, 0}} {
		_, err := mesh.New(size[0], size[1])
		require.ErrorIs(t, err, mesh.ErrConfiguration, "size %v", size)
	}
}

func TestNeighborReciprocity(t *testing.T) {
	for _, size := range meshSizes {
		m, err := mesh.New(size.w, size.h)
		require.NoError(t, err)

		for _, tile := range m.All() {
			for _, d := range mesh.Directions {
				n := tile.Neighbor(d)
				if n == nil {
					continue
				}
				require.Same(t, tile, n.Neighbor(d.Opposite()),
					"%dx%d tile %d dir %s", size.w, size.h, tile.Index(), d)
			}
		}
	}
}

func TestNeighborPositions(t *testing.T) {
	for _, size := range meshSizes {
		m, err := mesh.New(size.w, size.h)
		require.NoError(t, err)

		for _, tile := range m.All() {
			for _, d := range mesh.Directions {
				dx, dy := d.Delta()
				want := m.At(tile.Col()+dx, tile.Row()+dy)
				got := tile.Neighbor(d)
				if want == nil {
					assert.Nil(t, got, "tile (%d,%d) dir %s should be off-grid", tile.Col(), tile.Row(), d)
					continue
				}
				assert.Same(t, want, got, "tile (%d,%d) dir %s", tile.Col(), tile.Row(), d)
			}
		}
	}
}

func TestDiagonalsComposePrimaryLinks(t *testing.T) {
	m, err := mesh.New(5, 4)
	require.NoError(t, err)

	compose := func(tile *mesh.Tile, a, b mesh.Direction) *mesh.Tile {
		if n := tile.Neighbor(a); n != nil {
			return n.Neighbor(b)
		}
		return nil
	}

	for _, tile := range m.All() {
		assert.Same(t, compose(tile, mesh.East, mesh.North), tile.Neighbor(mesh.NorthEast))
		assert.Same(t, compose(tile, mesh.East, mesh.South), tile.Neighbor(mesh.SouthEast))
		assert.Same(t, compose(tile, mesh.West, mesh.South), tile.Neighbor(mesh.SouthWest))
		assert.Same(t, compose(tile, mesh.West, mesh.North), tile.Neighbor(mesh.NorthWest))
	}
}

func TestCornerBoundaries(t *testing.T) {
	m, err := mesh.New(4, 3)
	require.NoError(t, err)

	corners := []struct {
		name   string
		tile   *mesh.Tile
		absent []mesh.Direction
	}{
		{"top-left", m.At(0, 0), []mesh.Direction{mesh.North, mesh.NorthWest, mesh.West, mesh.SouthWest, mesh.NorthEast}},
		{"top-right", m.At(3, 0), []mesh.Direction{mesh.North, mesh.NorthEast, mesh.East, mesh.SouthEast, mesh.NorthWest}},
		{"bottom-left", m.At(0, 2), []mesh.Direction{mesh.South, mesh.SouthWest, mesh.West, mesh.NorthWest, mesh.SouthEast}},
		{"bottom-right", m.At(3, 2), []mesh.Direction{mesh.South, mesh.SouthEast, mesh.East, mesh.NorthEast, mesh.SouthWest}},
	}

	for _, c := range corners {
		t.Run(c.name, func(t *testing.T) {
			absent := make(map[mesh.Direction]bool)
			for _, d := range c.absent {
				absent[d] = true
			}
			for _, d := range mesh.Directions {
				if absent[d] {
					assert.False(t, c.tile.HasNeighbor(d), "%s should be absent", d)
				} else {
					assert.True(t, c.tile.HasNeighbor(d), "%s should be present", d)
				}
			}
		})
	}
}

func TestIterationOrderIsRowMajor(t *testing.T) {
	m, err := mesh.New(4, 3)
	require.NoError(t, err)

	next := 0
	for i, tile := range m.All() {
		require.Equal(t, next, i)
		require.Equal(t, i, tile.Index())
		require.Equal(t, i%4, tile.Col())
		require.Equal(t, i/4, tile.Row())
		require.Same(t, m.Tile(i), tile)
		next++
	}
	assert.Equal(t, 12, next)
	assert.Same(t, m.Root(), m.Tile(0))
}

func TestIterationStopsEarly(t *testing.T) {
	m, err := mesh.New(3, 3)
	require.NoError(t, err)

	seen := 0
	for i := range m.All() {
		seen++
		if i == 4 {
			break
		}
	}
	assert.Equal(t, 5, seen)
}

func TestInternalEdges(t *testing.T) {
	for _, size := range meshSizes {
		m, err := mesh.New(size.w, size.h)
		require.NoError(t, err)
		w, h := size.w, size.h
		want := (w-1)*h + w*(h-1) + 2*(w-1)*(h-1)
		assert.Equal(t, want, m.InternalEdges(), "%dx%d", w, h)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	m, err := mesh.New(3, 3)
	require.NoError(t, err)

	assert.Nil(t, m.Tile(-1))
	assert.Nil(t, m.Tile(9))
	assert.Nil(t, m.At(3, 0))
	assert.Nil(t, m.At(0, -1))
	assert.Equal(t, 9, m.Len())
}
