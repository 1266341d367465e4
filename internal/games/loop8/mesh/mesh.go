package mesh

import (
	"fmt"
	"iter"
)

// Mesh is the rectangular grid of tiles. Tiles live in a flat arena in
// row-major order (index = row*width + col) and link to each other by index.
type Mesh struct {
	width  int
	height int
	tiles  []Tile
}

// New builds a width x height mesh with all eight neighbor links in place.
// Primary links (N/E/S/W) are created row by row; diagonal links are then
// derived from them, so NE is always the East neighbor's North neighbor.
func New(width, height int) (*Mesh, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: mesh size %dx%d must be positive", ErrConfiguration, width, height)
	}

	m := &Mesh{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for i := range m.tiles {
		t := &m.tiles[i]
		t.mesh = m
		t.index = i
		for d := range t.links {
			t.links[d] = noLink
		}
	}

	// Primary links: East/West within a row, North/South to the row above.
	for row := range height {
		for col := range width {
			i := row*width + col
			if col > 0 {
				m.link(i-1, East, i)
			}
			if row > 0 {
				m.link(i-width, South, i)
			}
		}
	}

	// Diagonals, composed from one E/W step and one N/S step.
	for _, t := range m.All() {
		if e := t.Neighbor(East); e != nil {
			if ne := e.Neighbor(North); ne != nil {
				m.link(t.index, NorthEast, ne.index)
			}
			if se := e.Neighbor(South); se != nil {
				m.link(t.index, SouthEast, se.index)
			}
		}
		if w := t.Neighbor(West); w != nil {
			if sw := w.Neighbor(South); sw != nil {
				m.link(t.index, SouthWest, sw.index)
			}
			if nw := w.Neighbor(North); nw != nil {
				m.link(t.index, NorthWest, nw.index)
			}
		}
	}

	return m, nil
}

// link records b as a's neighbor in direction d and a as b's neighbor in
// the opposite direction.
func (m *Mesh) link(a int, d Direction, b int) {
	m.tiles[a].links[d.Index()] = b
	m.tiles[b].links[d.Opposite().Index()] = a
}

// Width returns the number of columns.
func (m *Mesh) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Mesh) Height() int {
	return m.height
}

// Len returns the number of tiles.
func (m *Mesh) Len() int {
	return len(m.tiles)
}

// Root returns the top-left tile.
func (m *Mesh) Root() *Tile {
	return &m.tiles[0]
}

// Tile returns the tile at row-major index i, or nil if out of range.
func (m *Mesh) Tile(i int) *Tile {
	if i < 0 || i >= len(m.tiles) {
		return nil
	}
	return &m.tiles[i]
}

// At returns the tile at (col, row), or nil if out of bounds.
func (m *Mesh) At(col, row int) *Tile {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return nil
	}
	return &m.tiles[row*m.width+col]
}

// All yields every tile top-to-bottom, left-to-right, walking the South
// links from the root and the East links along each row. Renderers rely on
// this order matching the visual grid.
func (m *Mesh) All() iter.Seq2[int, *Tile] {
	return func(yield func(int, *Tile) bool) {
		for rowStart := m.Root(); rowStart != nil; rowStart = rowStart.Neighbor(South) {
			for t := rowStart; t != nil; t = t.Neighbor(East) {
				if !yield(t.index, t) {
					return
				}
			}
		}
	}
}

// InternalEdges returns the number of neighbor pairs in the mesh, counting
// each undirected link once (diagonals included).
func (m *Mesh) InternalEdges() int {
	n := 0
	for _, t := range m.All() {
		for _, d := range placeDirections {
			if t.HasNeighbor(d) {
				n++
			}
		}
	}
	return n
}

// Masks returns the current masks in iteration order.
func (m *Mesh) Masks() []uint8 {
	out := make([]uint8, 0, len(m.tiles))
	for _, t := range m.All() {
		out = append(out, t.mask)
	}
	return out
}

// OriginalMasks returns the solved-state masks in iteration order.
func (m *Mesh) OriginalMasks() []uint8 {
	out := make([]uint8, 0, len(m.tiles))
	for _, t := range m.All() {
		out = append(out, t.original)
	}
	return out
}

// ConnectionCount returns the number of set bits across all tiles.
func (m *Mesh) ConnectionCount() int {
	n := 0
	for _, t := range m.All() {
		n += t.Weight()
	}
	return n
}

// SnapshotOriginal records every tile's current mask as its solved state.
func (m *Mesh) SnapshotOriginal() {
	for _, t := range m.All() {
		t.original = t.mask
	}
}

// SnapshotStart records every tile's current mask as its dealt state.
func (m *Mesh) SnapshotStart() {
	for _, t := range m.All() {
		t.start = t.mask
	}
}

// RestoreOriginal puts every tile back to its solved state.
func (m *Mesh) RestoreOriginal() {
	for _, t := range m.All() {
		t.RestoreOriginal()
	}
}

// RestoreStart puts every tile back to its dealt state.
func (m *Mesh) RestoreStart() {
	for _, t := range m.All() {
		t.RestoreStart()
	}
}

// Clear removes every connection, including the snapshots.
func (m *Mesh) Clear() {
	for _, t := range m.All() {
		t.mask, t.original, t.start = 0, 0, 0
	}
}
