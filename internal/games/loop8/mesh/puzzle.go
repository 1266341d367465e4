package mesh

// Puzzle is a mesh in play. It counts moves, stops accepting moves once the
// grid is complete, and notifies the host exactly once when that happens.
type Puzzle struct {
	mesh     *Mesh
	onSolved func(*Puzzle)
	moves    int
	solved   bool
}

// NewPuzzle wraps a generated mesh. onSolved may be nil.
func NewPuzzle(m *Mesh, onSolved func(*Puzzle)) *Puzzle {
	return &Puzzle{
		mesh:     m,
		onSolved: onSolved,
		solved:   IsGridComplete(m),
	}
}

// Mesh returns the underlying mesh.
func (p *Puzzle) Mesh() *Mesh {
	return p.mesh
}

// Moves returns the number of moves that changed the grid.
func (p *Puzzle) Moves() int {
	return p.moves
}

// Solved reports whether the grid has been completed.
func (p *Puzzle) Solved() bool {
	return p.solved
}

// Apply performs mv on tile i unless the puzzle is already solved. Moves
// that change nothing are not counted. Returns whether the grid changed.
func (p *Puzzle) Apply(i int, mv Move) (bool, error) {
	if p.solved {
		return false, nil
	}
	changed, err := p.mesh.Apply(i, mv)
	if err != nil || !changed {
		return false, err
	}
	p.moves++
	if IsGridComplete(p.mesh) {
		p.solved = true
		if p.onSolved != nil {
			p.onSolved(p)
		}
	}
	return true, nil
}

// Restart returns every tile to its dealt state and clears the move count.
func (p *Puzzle) Restart() {
	p.mesh.RestoreStart()
	p.moves = 0
	p.solved = IsGridComplete(p.mesh)
}
