package mesh

// IsGridComplete walks the mesh in iteration order and reports whether every
// tile is complete. It stops at the first incomplete tile and never mutates
// the mesh, so it is safe to call after every move.
func IsGridComplete(m *Mesh) bool {
	for _, t := range m.All() {
		if !t.IsComplete() {
			return false
		}
	}
	return true
}

// IsComplete is shorthand for IsGridComplete(m).
func (m *Mesh) IsComplete() bool {
	return IsGridComplete(m)
}

// IncompleteCount returns how many tiles still have an unmatched connection.
func IncompleteCount(m *Mesh) int {
	n := 0
	for _, t := range m.All() {
		if !t.IsComplete() {
			n++
		}
	}
	return n
}
