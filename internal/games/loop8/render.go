package loop8

import (
	"fmt"

	"github.com/vovakirdan/loop8/internal/core"
	"github.com/vovakirdan/loop8/internal/games/loop8/mesh"
)

const (
	cellWidth    = 5 // Characters per tile horizontally
	cellHeight   = 3 // Characters per tile vertically
	hudHeight    = 2 // Title and status lines above the board
	footerHeight = 1 // Message line below the board
)

// strokes places one glyph per connection inside a tile cell; the center
// of the cell is (2, 1). Diagonals end in the cell corners so they meet the
// diagonal neighbor's stroke.
var strokes = [8][]struct {
	x, y int
	r    rune
}{
	{{2, 0, '│'}},              // N
	{{4, 0, '╱'}},              // NE
	{{3, 1, '─'}, {4, 1, '─'}}, // E
	{{4, 2, '╲'}},              // SE
	{{2, 2, '│'}},              // S
	{{0, 2, '╱'}},              // SW
	{{0, 1, '─'}, {1, 1, '─'}}, // W
	{{0, 0, '╲'}},              // NW
}

// tileGlyphs draws a mask into a cellWidth x cellHeight block.
func tileGlyphs(mask uint8) [cellHeight][cellWidth]rune {
	var out [cellHeight][cellWidth]rune
	for y := range cellHeight {
		for x := range cellWidth {
			out[y][x] = ' '
		}
	}

	for i, d := range mesh.Directions {
		if !mesh.Has(mask, d) {
			continue
		}
		for _, s := range strokes[i] {
			out[s.y][s.x] = s.r
		}
	}

	switch _, err := mesh.SingleDirection(mask); {
	case err == nil:
		out[1][2] = '●' // Loose end
	case mask == 0:
		out[1][2] = '·'
	default:
		out[1][2] = '•'
	}
	return out
}

// boardSize returns the framed board dimensions in characters.
func (g *Game) boardSize() (int, int) {
	return g.gridW*cellWidth + 2, g.gridH*cellHeight + 2
}

// boardOrigin returns the top-left corner of the board frame.
func (g *Game) boardOrigin() (int, int) {
	boardW, _ := g.boardSize()
	return max((g.screenW-boardW)/2, 0), hudHeight
}

// tileRect returns the screen area of tile i.
func (g *Game) tileRect(i int) core.Rect {
	bx, by := g.boardOrigin()
	col, row := i%g.gridW, i/g.gridW
	return core.NewRect(bx+1+col*cellWidth, by+1+row*cellHeight, cellWidth, cellHeight)
}

// tileAt maps a screen cell to the tile under it.
func (g *Game) tileAt(x, y int) (int, bool) {
	for i := range g.gridW * g.gridH {
		if g.tileRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the HUD, the board, and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	bx, by := g.boardOrigin()
	boardW, boardH := g.boardSize()
	frame := core.ColorGray
	if st := g.State(); st.Solved && g.mode == ModePlay {
		frame = core.ColorBrightGreen
	}
	dst.DrawBox(core.NewRect(bx, by, boardW, boardH), frame)

	if g.puzzle == nil {
		msg := "Could not generate a puzzle"
		if g.genErr != nil {
			msg = g.genErr.Error()
		}
		dst.DrawTextCentered(by+boardH/2, msg, core.ColorRed)
		dst.DrawTextCentered(by+boardH/2+1, "N: try again", core.ColorGray)
		return
	}

	g.renderBoard(dst)
	g.renderFooter(dst, by+boardH)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	boardW, boardH := g.boardSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", boardW, hudHeight+boardH+footerHeight), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	st := g.State()
	var status string
	switch {
	case g.puzzle == nil:
		status = fmt.Sprintf("%dx%d", g.gridW, g.gridH)
	case g.mode == ModeDesign:
		status = fmt.Sprintf("%dx%d  Edits: %d  Links: %d",
			g.gridW, g.gridH, st.Moves, g.puzzle.Mesh().ConnectionCount())
	default:
		status = fmt.Sprintf("%dx%d  Moves: %d  Open: %d  Solved: %d  Jumble: %.0f%%",
			g.gridW, g.gridH, st.Moves, mesh.IncompleteCount(g.puzzle.Mesh()), g.progress, g.jumbleChance*100)
	}
	dst.DrawTextCentered(1, status, core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen) {
	m := g.puzzle.Mesh()
	solved := g.State().Solved

	for i, t := range m.All() {
		color := g.tileColor(t, solved)
		if i == g.cursor {
			color = core.ColorOrange
		}

		r := g.tileRect(i)
		glyphs := tileGlyphs(t.Mask())
		for y := range cellHeight {
			for x := range cellWidth {
				if glyphs[y][x] != ' ' {
					dst.SetColor(r.X+x, r.Y+y, glyphs[y][x], color)
				}
			}
		}
	}
}

func (g *Game) tileColor(t *mesh.Tile, solved bool) core.Color {
	switch {
	case g.mode == ModeDesign:
		return core.ColorCyan
	case solved:
		return core.ColorBrightGreen
	case t.IsComplete():
		return core.ColorGreen
	default:
		return core.ColorYellow
	}
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch {
	case g.paused:
		dst.DrawTextCentered(y, "PAUSED - P to resume", core.ColorBrightYellow)
	case g.mode == ModePlay && g.puzzle.Solved():
		dst.DrawTextCentered(y, fmt.Sprintf("SOLVED in %d moves! N: next puzzle", g.puzzle.Moves()), core.ColorBrightGreen)
	case g.mode == ModeDesign && !mesh.IsGridComplete(g.puzzle.Mesh()):
		dst.DrawTextCentered(y, "Layout has unmatched links", core.ColorRed)
	}
}
