package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/loop8/internal/core"
)

// KeyMap holds the puzzle key bindings. It doubles as the help.KeyMap for
// the footer.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Left            key.Binding
	Right           key.Binding
	Rotate          key.Binding
	Unrotate        key.Binding
	RestoreOriginal key.Binding
	RestoreStart    key.Binding
	Reset           key.Binding
	NewPuzzle       key.Binding
	Toggle          [8]key.Binding
	Pause           key.Binding
	Help            key.Binding
	Back            key.Binding
	Quit            key.Binding

	design bool
}

// DefaultKeyMap returns the standard bindings. Toggles are only enabled
// in design mode.
func DefaultKeyMap(design bool) KeyMap {
	k := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys(" ", "e", "enter"),
			key.WithHelp("space/e", "rotate"),
		),
		Unrotate: key.NewBinding(
			key.WithKeys("x", "z", "backspace"),
			key.WithHelp("x/z", "rotate back"),
		),
		RestoreOriginal: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "restore solved"),
		),
		RestoreStart: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo tile"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		NewPuzzle: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new puzzle"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		design: design,
	}

	// Numpad layout: 8 is north, then clockwise.
	toggleKeys := [8]string{"8", "9", "6", "3", "2", "1", "4", "7"}
	toggleHelp := [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	for i := range k.Toggle {
		k.Toggle[i] = key.NewBinding(
			key.WithKeys(toggleKeys[i]),
			key.WithHelp(toggleKeys[i], "toggle "+toggleHelp[i]),
			key.WithDisabled(),
		)
		k.Toggle[i].SetEnabled(design)
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	if k.design {
		return []key.Binding{k.Up, k.Down, k.Toggle[0], k.Rotate, k.NewPuzzle, k.Help, k.Quit}
	}
	return []key.Binding{k.Up, k.Down, k.Rotate, k.Unrotate, k.NewPuzzle, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Rotate, k.Unrotate, k.RestoreOriginal, k.RestoreStart},
		{k.Reset, k.NewPuzzle, k.Pause},
		{k.Help, k.Back, k.Quit},
	}
	if k.design {
		groups = append(groups, k.Toggle[:4], k.Toggle[4:])
	}
	return groups
}

// KeyMapper translates Bubble Tea key messages to puzzle actions.
type KeyMapper struct {
	keys  KeyMap
	table []binding
}

type binding struct {
	key    *key.Binding
	action core.Action
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	km.table = []binding{
		{&km.keys.Quit, core.ActionQuit},
		{&km.keys.Back, core.ActionBack},
		{&km.keys.Pause, core.ActionPause},
		{&km.keys.Up, core.ActionUp},
		{&km.keys.Down, core.ActionDown},
		{&km.keys.Left, core.ActionLeft},
		{&km.keys.Right, core.ActionRight},
		{&km.keys.Rotate, core.ActionRotate},
		{&km.keys.Unrotate, core.ActionUnrotate},
		{&km.keys.RestoreOriginal, core.ActionRestoreOriginal},
		{&km.keys.RestoreStart, core.ActionRestoreStart},
		{&km.keys.Reset, core.ActionReset},
		{&km.keys.NewPuzzle, core.ActionNewPuzzle},
	}
	for i := range km.keys.Toggle {
		km.table = append(km.table, binding{&km.keys.Toggle[i], core.ToggleActions[i]})
	}
	return km
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.table {
		if key.Matches(msg, *b.key) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapMouseToFrame turns a click into a pointer action. Left click rotates,
// right click (or shift/ctrl+click) rotates back, alt+click restores the
// solved mask. Returns false for anything that is not a button press.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}

	var action core.Action
	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Alt:
		action = core.ActionRestoreOriginal
	case msg.Button == tea.MouseButtonLeft && (msg.Shift || msg.Ctrl):
		action = core.ActionUnrotate
	case msg.Button == tea.MouseButtonLeft:
		action = core.ActionRotate
	case msg.Button == tea.MouseButtonRight:
		action = core.ActionUnrotate
	default:
		return false
	}

	frame.SetPointer(msg.X, msg.Y, action)
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionStats
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionStats
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
