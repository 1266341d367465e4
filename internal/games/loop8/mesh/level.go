package mesh

import "fmt"

// Level is the serialized form of a layout: grid dimensions plus one mask
// per tile in iteration (row-major) order.
type Level struct {
	Width  int
	Height int
	Masks  []uint8
}

// Validate checks that the dimensions are positive and the mask count matches.
func (l Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: level size %dx%d must be positive", ErrConfiguration, l.Width, l.Height)
	}
	if len(l.Masks) != l.Width*l.Height {
		return fmt.Errorf("%w: level has %d masks, want %d (%dx%d)",
			ErrConfiguration, len(l.Masks), l.Width*l.Height, l.Width, l.Height)
	}
	return nil
}

// Load copies the level's masks onto m in iteration order and records them
// as both the original and the dealt state. Masks are taken verbatim.
func Load(m *Mesh, lvl Level) error {
	if err := lvl.Validate(); err != nil {
		return err
	}
	if lvl.Width != m.width || lvl.Height != m.height {
		return fmt.Errorf("%w: level is %dx%d, mesh is %dx%d",
			ErrConfiguration, lvl.Width, lvl.Height, m.width, m.height)
	}
	for i, t := range m.All() {
		t.mask = lvl.Masks[i]
	}
	m.SnapshotOriginal()
	m.SnapshotStart()
	return nil
}

// FromLevel builds a mesh sized for lvl and loads its masks.
func FromLevel(lvl Level) (*Mesh, error) {
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	m, err := New(lvl.Width, lvl.Height)
	if err != nil {
		return nil, err
	}
	if err := Load(m, lvl); err != nil {
		return nil, err
	}
	return m, nil
}

// Level returns the current masks as a Level.
func (m *Mesh) Level() Level {
	return Level{Width: m.width, Height: m.height, Masks: m.Masks()}
}

// OriginalLevel returns the solved-state masks as a Level.
func (m *Mesh) OriginalLevel() Level {
	return Level{Width: m.width, Height: m.height, Masks: m.OriginalMasks()}
}
