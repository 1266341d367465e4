package mesh

// noLink marks an absent neighbor at the grid boundary.
const noLink = -1

// Tile is one node of the mesh. It owns an 8-bit connection mask and refers
// to its neighbors by arena index; the neighbor links are fixed once the
// mesh is built and only the masks change during play.
type Tile struct {
	mesh  *Mesh
	index int

	mask     uint8 // Current connections
	original uint8 // Solved layout, snapshot taken after placement
	start    uint8 // Dealt layout, snapshot taken after jumble

	links [8]int // Neighbor index per Direction.Index(), noLink at edges
}

// Index returns the tile's row-major position in the mesh.
func (t *Tile) Index() int {
	return t.index
}

// Col returns the tile's column.
func (t *Tile) Col() int {
	return t.index % t.mesh.width
}

// Row returns the tile's row.
func (t *Tile) Row() int {
	return t.index / t.mesh.width
}

// Mask returns the current connection mask.
func (t *Tile) Mask() uint8 {
	return t.mask
}

// OriginalMask returns the solved-state mask recorded after placement.
func (t *Tile) OriginalMask() uint8 {
	return t.original
}

// StartMask returns the mask the tile was dealt with after jumble.
func (t *Tile) StartMask() uint8 {
	return t.start
}

// Weight returns the number of connections on the tile.
func (t *Tile) Weight() int {
	return HammingWeight(t.mask)
}

// Neighbor returns the adjacent tile in direction d, or nil at the boundary.
func (t *Tile) Neighbor(d Direction) *Tile {
	i := d.Index()
	if i < 0 || t.links[i] == noLink {
		return nil
	}
	return &t.mesh.tiles[t.links[i]]
}

// HasNeighbor reports whether a tile exists in direction d.
func (t *Tile) HasNeighbor(d Direction) bool {
	return t.Neighbor(d) != nil
}

// Rotate turns the tile clockwise by steps. Neighbors are not touched.
func (t *Tile) Rotate(steps int) {
	t.mask = RotateRight(t.mask, steps)
}

// Unrotate turns the tile counter-clockwise by steps.
func (t *Tile) Unrotate(steps int) {
	t.mask = RotateLeft(t.mask, steps)
}

// Toggle flips the connection toward d on this tile and the reciprocal
// connection on the neighbor, so the pair always agrees afterwards.
// Toggling toward the boundary is ignored. Returns whether anything changed.
func (t *Tile) Toggle(d Direction) bool {
	n := t.Neighbor(d)
	if n == nil {
		return false
	}
	if Has(t.mask, d) {
		t.mask &^= uint8(d)
		n.mask &^= uint8(d.Opposite())
	} else {
		t.mask |= uint8(d)
		n.mask |= uint8(d.Opposite())
	}
	return true
}

// connect sets the connection toward d on both ends. Returns false at the boundary.
func (t *Tile) connect(d Direction) bool {
	n := t.Neighbor(d)
	if n == nil {
		return false
	}
	t.mask |= uint8(d)
	n.mask |= uint8(d.Opposite())
	return true
}

// IsComplete reports whether every connection on the tile is matched by the
// neighbor it points at. An empty tile is complete.
func (t *Tile) IsComplete() bool {
	for _, d := range Directions {
		if !Has(t.mask, d) {
			continue
		}
		n := t.Neighbor(d)
		if n == nil || !Has(n.mask, d.Opposite()) {
			return false
		}
	}
	return true
}

// RestoreOriginal puts the tile back to its solved-state mask.
func (t *Tile) RestoreOriginal() {
	t.mask = t.original
}

// RestoreStart puts the tile back to the mask it was dealt with.
func (t *Tile) RestoreStart() {
	t.mask = t.start
}
