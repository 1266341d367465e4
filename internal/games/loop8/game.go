// Package loop8 is the playable Loop8 puzzle: a rotation puzzle on an
// eight-connected grid where every tile must point at a neighbor that
// points back.
package loop8

import (
	"math/rand"

	"github.com/vovakirdan/loop8/internal/config"
	"github.com/vovakirdan/loop8/internal/core"
	"github.com/vovakirdan/loop8/internal/games/loop8/levels"
	"github.com/vovakirdan/loop8/internal/games/loop8/mesh"
	"github.com/vovakirdan/loop8/internal/registry"
)

// Mode selects between solving puzzles and editing layouts.
type Mode string

const (
	ModePlay   Mode = "play"
	ModeDesign Mode = "design"
)

// Registry IDs.
const (
	IDPlay   = "loop8"
	IDDesign = "loop8_design"
)

// Game implements registry.Game for both modes.
type Game struct {
	mode Mode
	rng  *rand.Rand
	seed int64
	tick uint64

	cfg        config.Loop8Config
	difficulty *config.DifficultyManager
	preset     *levels.Level

	progress     int // Puzzles solved, owned by the host
	jumbleChance float64
	passes       int
	dealt        int // Puzzles dealt this session

	puzzle    *mesh.Puzzle
	genErr    error
	cursor    int
	edits     int // Design mode move count
	startTick uint64
	solve     *core.SolveInfo

	gridW   int
	gridH   int
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game in play mode.
func New() *Game {
	return &Game{mode: ModePlay}
}

// NewDesign creates a game in design mode: the layout is shown solved and
// toggles edit its links.
func NewDesign() *Game {
	return &Game{mode: ModeDesign}
}

func init() {
	registry.Register(IDPlay, func() registry.Game {
		return New()
	})
	registry.Register(IDDesign, func() registry.Game {
		return NewDesign()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeDesign {
		return IDDesign
	}
	return IDPlay
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDesign {
		return "Loop8 (Design)"
	}
	return "Loop8"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset starts a new session and deals the first puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.seed = cfg.Seed
	g.tick = 0
	g.progress = max(cfg.Progress, 0)
	g.paused = false
	g.dealt = 0

	g.cfg = loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Jumble)
	g.preset = presetLevel

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gridW, g.gridH = g.gridSize()
	g.checkScreenSize()

	g.newPuzzle()
}

// Resize adapts to a new terminal size without discarding the puzzle.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// SetProgress updates the solved-puzzle counter used for the next deal.
func (g *Game) SetProgress(n int) {
	g.progress = max(n, 0)
}

// Progress returns the solved-puzzle counter.
func (g *Game) Progress() int {
	return g.progress
}

// gridSize picks the puzzle dimensions: the preset's, the configured ones,
// or as many cells as fit the terminal, never fewer than Grid.MinSize.
func (g *Game) gridSize() (int, int) {
	if g.preset != nil {
		return g.preset.Puzzle.Width, g.preset.Puzzle.Height
	}

	minSize := g.cfg.Grid.MinSize
	if minSize <= 0 {
		minSize = 3
	}

	w := g.cfg.Grid.Width
	if w <= 0 {
		w = max((g.screenW-2)/cellWidth, minSize)
		if g.cfg.Grid.MaxWidth > 0 {
			w = min(w, g.cfg.Grid.MaxWidth)
		}
	}
	h := g.cfg.Grid.Height
	if h <= 0 {
		h = max((g.screenH-hudHeight-footerHeight-2)/cellHeight, minSize)
		if g.cfg.Grid.MaxHeight > 0 {
			h = min(h, g.cfg.Grid.MaxHeight)
		}
	}
	return w, h
}

func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	g.tooSmall = g.screenW < boardW || g.screenH < hudHeight+boardH+footerHeight
}

// newPuzzle places a solved layout (or loads the preset) and, in play
// mode, jumbles it with the chance for the current progress.
func (g *Game) newPuzzle() {
	g.puzzle = nil
	g.genErr = nil
	g.cursor = 0
	g.edits = 0
	g.solve = nil
	g.startTick = g.tick
	g.jumbleChance = 0
	g.passes = 0

	gen := mesh.NewGenerator(g.cfg.Generation.Params(), g.rng)

	m, err := g.layout(gen)
	if err == nil && g.mode == ModePlay {
		g.jumbleChance = g.difficulty.JumbleChance(g.progress)
		g.passes, err = gen.Jumble(m, g.currentChance)
	}
	if err != nil {
		g.genErr = err
		logger.Error("puzzle generation failed",
			"mode", g.mode, "width", g.gridW, "height", g.gridH, "seed", g.seed, "err", err)
		return
	}

	g.dealt++
	g.puzzle = mesh.NewPuzzle(m, g.onSolved)
	logger.Info("puzzle dealt",
		"mode", g.mode,
		"width", m.Width(),
		"height", m.Height(),
		"connections", m.ConnectionCount(),
		"jumble_chance", g.jumbleChance,
		"passes", g.passes,
		"levels_solved", g.progress,
	)
}

func (g *Game) layout(gen *mesh.Generator) (*mesh.Mesh, error) {
	if g.preset != nil {
		return g.preset.NewMesh()
	}
	m, err := mesh.New(g.gridW, g.gridH)
	if err != nil {
		return nil, err
	}
	if err := gen.Place(m); err != nil {
		return nil, err
	}
	return m, nil
}

// currentChance is the jumble ChanceFunc: the difficulty curve evaluated
// at the current progress.
func (g *Game) currentChance() float64 {
	return g.difficulty.JumbleChance(g.progress)
}

func (g *Game) onSolved(p *mesh.Puzzle) {
	m := p.Mesh()
	g.progress++
	g.solve = &core.SolveInfo{
		Width:        m.Width(),
		Height:       m.Height(),
		Moves:        p.Moves(),
		Ticks:        g.tick - g.startTick,
		JumbleChance: g.jumbleChance,
	}
	logger.Info("puzzle solved", "moves", p.Moves(), "ticks", g.solve.Ticks, "levels_solved", g.progress)
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.solve = nil

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.tooSmall || g.paused {
		return g.result()
	}

	if in.Has(core.ActionNewPuzzle) {
		g.newPuzzle()
		return g.result()
	}
	if g.puzzle == nil {
		return g.result()
	}

	if in.Pointer {
		g.click(in.PointerX, in.PointerY, in.PointerAction)
	}
	g.moveCursor(in)

	if in.Has(core.ActionReset) {
		g.restart()
	}
	for _, a := range tileActions {
		if in.Has(a) {
			g.applyAction(a)
		}
	}
	if g.mode == ModeDesign {
		for i, a := range core.ToggleActions {
			if in.Has(a) {
				g.apply(mesh.ToggleMove(mesh.Directions[i]))
			}
		}
	}

	return g.result()
}

// tileActions are the actions that change the cursor tile, in the order
// they apply within one tick.
var tileActions = [...]core.Action{
	core.ActionRotate,
	core.ActionUnrotate,
	core.ActionRestoreOriginal,
	core.ActionRestoreStart,
}

// click moves the cursor to the tile under (x, y) and applies a there.
// Clicks off the board are ignored.
func (g *Game) click(x, y int, a core.Action) {
	i, ok := g.tileAt(x, y)
	if !ok {
		return
	}
	g.cursor = i
	g.applyAction(a)
}

func (g *Game) applyAction(a core.Action) {
	switch a {
	case core.ActionRotate:
		g.apply(mesh.RotateMove(1, mesh.Clockwise))
	case core.ActionUnrotate:
		g.apply(mesh.RotateMove(1, mesh.CounterClockwise))
	case core.ActionRestoreOriginal:
		g.apply(mesh.RestoreOriginalMove())
	case core.ActionRestoreStart:
		g.apply(mesh.RestoreStartMove())
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Solve: g.solve}
}

func (g *Game) moveCursor(in core.InputFrame) {
	col, row := g.cursor%g.gridW, g.cursor/g.gridW
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	g.cursor = core.Wrap(row, g.gridH)*g.gridW + core.Wrap(col, g.gridW)
}

// apply runs mv on the cursor tile. Play mode goes through the puzzle so
// moves are counted and refused once solved; design mode edits freely.
func (g *Game) apply(mv mesh.Move) {
	var err error
	if g.mode == ModeDesign {
		var changed bool
		changed, err = g.puzzle.Mesh().Apply(g.cursor, mv)
		if changed {
			g.edits++
		}
	} else {
		_, err = g.puzzle.Apply(g.cursor, mv)
	}
	if err != nil {
		logger.Debug("move rejected", "move", mv.Kind, "tile", g.cursor, "err", err)
	}
}

// restart returns every tile to its dealt state.
func (g *Game) restart() {
	if g.mode == ModeDesign {
		g.puzzle.Mesh().RestoreStart()
		g.edits = 0
		return
	}
	if g.puzzle.Solved() {
		return
	}
	g.puzzle.Restart()
	g.startTick = g.tick
}

// State returns the current state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused || g.tooSmall}
	if g.puzzle == nil {
		return st
	}
	if g.mode == ModeDesign {
		st.Moves = g.edits
		st.Solved = mesh.IsGridComplete(g.puzzle.Mesh())
	} else {
		st.Moves = g.puzzle.Moves()
		st.Solved = g.puzzle.Solved()
	}
	return st
}

// Layout returns the current layout as a level, for saving designs.
// False if no puzzle could be generated.
func (g *Game) Layout() (mesh.Level, bool) {
	if g.puzzle == nil {
		return mesh.Level{}, false
	}
	return g.puzzle.Mesh().Level(), true
}

// Err returns the last generation error, if any.
func (g *Game) Err() error {
	return g.genErr
}
