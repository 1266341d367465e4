package loop8

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StateDesigning   GameStateType = "designing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateFailed      GameStateType = "generation_failed"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Seed         int64
	Width        int
	Height       int
	Cursor       int
	Moves        int
	Progress     int
	Dealt        int
	JumbleChance float64
	Passes       int
	Masks        []uint8
	Original     []uint8
	State        GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	s := Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Seed:         g.seed,
		Width:        g.gridW,
		Height:       g.gridH,
		Cursor:       g.cursor,
		Moves:        st.Moves,
		Progress:     g.progress,
		Dealt:        g.dealt,
		JumbleChance: g.jumbleChance,
		Passes:       g.passes,
	}
	if g.puzzle != nil {
		s.Masks = g.puzzle.Mesh().Masks()
		s.Original = g.puzzle.Mesh().OriginalMasks()
	}

	switch {
	case g.tooSmall:
		s.State = StatePausedSmall
	case g.paused:
		s.State = StatePaused
	case g.puzzle == nil:
		s.State = StateFailed
	case g.mode == ModeDesign:
		s.State = StateDesigning
	case st.Solved:
		s.State = StateSolved
	default:
		s.State = StatePlaying
	}
	return s
}
