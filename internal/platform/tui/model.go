package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/loop8/internal/core"
	"github.com/vovakirdan/loop8/internal/registry"
	"github.com/vovakirdan/loop8/internal/storage"
)

// Resizer is implemented by games that can follow a terminal resize
// without starting over.
type Resizer interface {
	Resize(width, height int)
}

// ProgressSetter is implemented by games whose difficulty follows the
// persisted solve counter.
type ProgressSetter interface {
	SetProgress(n int)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a puzzle.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	helpLines  int
	inputFrame core.InputFrame
	gameState  core.GameState
	solves     int
	saveErr    error
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, design bool) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(DefaultKeyMap(design)),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.helpLines = m.measureHelp()
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// Init deals the first puzzle and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config minus the rows used by the help bar.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.boardHeight()
	return cfg
}

func (m Model) boardHeight() int {
	return max(m.config.ScreenH-m.helpLines, 0)
}

func (m Model) measureHelp() int {
	return lipgloss.Height(m.help.View(m.keyMapper.Keys()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keyMapper.Keys().Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// relayout resizes the screen buffer after a terminal resize or a help
// toggle. The puzzle is kept when the game supports it.
func (m *Model) relayout() {
	m.helpLines = m.measureHelp()
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	m.game.Reset(cfg)
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Solve != nil {
		m.recordSolve(*result.Solve)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordSolve persists a solve and feeds the stored counter back to the
// game. Without a store the game keeps counting on its own.
func (m *Model) recordSolve(info core.SolveInfo) {
	m.solves++
	if m.store == nil {
		return
	}

	n, err := m.store.RecordSolve(storage.SolveRecord{
		Mode:         m.game.ID(),
		Width:        info.Width,
		Height:       info.Height,
		Moves:        info.Moves,
		Duration:     ticksToDuration(info.Ticks, m.config.TickRate),
		JumbleChance: info.JumbleChance,
	})
	m.saveErr = err
	if err != nil {
		return
	}
	if ps, ok := m.game.(ProgressSetter); ok {
		ps.SetProgress(n)
	}
}

func ticksToDuration(ticks uint64, tickRate int) time.Duration {
	if tickRate <= 0 {
		return 0
	}
	return time.Duration(ticks) * time.Second / time.Duration(tickRate)
}

// saveScreenshot saves the current screen to ~/.loop8/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".loop8", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the puzzle and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// Result describes how a puzzle session ended.
type Result struct {
	Game   registry.Game
	Back   bool // Back to the menu rather than quit
	Solves int
	Err    error // Last failed attempt to record a solve
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, design bool) (Result, error) {
	model := NewModel(game, store, cfg, design)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{Game: game}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{Game: game}, nil
	}
	return Result{Game: game, Back: m.back, Solves: m.solves, Err: m.saveErr}, nil
}
