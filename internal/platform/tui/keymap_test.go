package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/loop8/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(false))

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRotate, false},
		{"e", runeKey('e'), core.ActionRotate, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRotate, false},
		{"x", runeKey('x'), core.ActionUnrotate, false},
		{"z", runeKey('z'), core.ActionUnrotate, false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionUnrotate, false},
		{"o", runeKey('o'), core.ActionRestoreOriginal, false},
		{"u", runeKey('u'), core.ActionRestoreStart, false},
		{"r", runeKey('r'), core.ActionReset, false},
		{"n", runeKey('n'), core.ActionNewPuzzle, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('y'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestVimKeysMoveInDesign(t *testing.T) {
	design := NewKeyMapper(DefaultKeyMap(true))

	moves := map[rune]core.Action{
		'k': core.ActionUp,
		'j': core.ActionDown,
		'h': core.ActionLeft,
		'l': core.ActionRight,
	}
	for r, want := range moves {
		if action, _ := design.MapKey(runeKey(r)); action != want {
			t.Errorf("design mode mapped %q to %v, expected %v", r, action, want)
		}
	}
}

func TestTogglesOnlyInDesign(t *testing.T) {
	play := NewKeyMapper(DefaultKeyMap(false))
	design := NewKeyMapper(DefaultKeyMap(true))

	digits := []rune{'8', '9', '6', '3', '2', '1', '4', '7'}
	for i, d := range digits {
		if action, _ := play.MapKey(runeKey(d)); action != core.ActionNone {
			t.Errorf("play mode mapped %q to %v", d, action)
		}
		if action, _ := design.MapKey(runeKey(d)); action != core.ToggleActions[i] {
			t.Errorf("design mode mapped %q to %v, expected %v", d, action, core.ToggleActions[i])
		}
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(false))

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		action core.Action
		ok     bool
	}{
		{"left", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionRotate, true},
		{"right", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionUnrotate, true},
		{"shift left", tea.MouseMsg{X: 4, Y: 7, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionUnrotate, true},
		{"alt left", tea.MouseMsg{X: 4, Y: 7, Alt: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionRestoreOriginal, true},
		{"release", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone, false},
		{"wheel", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			ok := km.MapMouseToFrame(tt.msg, &frame)
			if ok != tt.ok {
				t.Fatalf("MapMouseToFrame() = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				if len(frame.Actions) != 0 || frame.Pointer {
					t.Error("ignored mouse event should leave the frame untouched")
				}
				return
			}
			if frame.PointerAction != tt.action {
				t.Errorf("pointer action = %v, expected %v", frame.PointerAction, tt.action)
			}
			if frame.Has(tt.action) {
				t.Errorf("click should not set the keyboard action %v", tt.action)
			}
			if !frame.Pointer || frame.PointerX != 4 || frame.PointerY != 7 {
				t.Errorf("pointer = (%v, %d, %d), expected (true, 4, 7)", frame.Pointer, frame.PointerX, frame.PointerY)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(false))

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionStats},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestHelpShowsTogglesInDesign(t *testing.T) {
	if n := len(DefaultKeyMap(false).FullHelp()); n != 4 {
		t.Errorf("play FullHelp groups = %d, expected 4", n)
	}
	if n := len(DefaultKeyMap(true).FullHelp()); n != 6 {
		t.Errorf("design FullHelp groups = %d, expected 6", n)
	}
}
