package core

// Action represents a semantic puzzle action, abstracted from physical key presses.
type Action int

const (
	ActionNone            Action = iota
	ActionUp                     // W, K, Up arrow - move cursor up
	ActionDown                   // S, J, Down arrow - move cursor down
	ActionLeft                   // A, H, Left arrow - move cursor left
	ActionRight                  // D, L, Right arrow - move cursor right
	ActionRotate                 // Space, E, Enter, left click - rotate tile clockwise
	ActionUnrotate               // X, Z, Backspace, right click - rotate tile counter-clockwise
	ActionRestoreOriginal        // O, alt+click - put tile back to its solved mask
	ActionRestoreStart           // U - put tile back to its dealt mask
	ActionReset                  // R - put every tile back to its dealt mask
	ActionNewPuzzle              // N - generate the next puzzle
	ActionToggleN                // Design mode: 8 - flip the north link
	ActionToggleNE               // Design mode: 9
	ActionToggleE                // Design mode: 6
	ActionToggleSE               // Design mode: 3
	ActionToggleS                // Design mode: 2
	ActionToggleSW               // Design mode: 1
	ActionToggleW                // Design mode: 4
	ActionToggleNW               // Design mode: 7
	ActionPause                  // P - pause/unpause
	ActionBack                   // B, Escape - go back to menu
	ActionQuit                   // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:            "None",
	ActionUp:              "Up",
	ActionDown:            "Down",
	ActionLeft:            "Left",
	ActionRight:           "Right",
	ActionRotate:          "Rotate",
	ActionUnrotate:        "Unrotate",
	ActionRestoreOriginal: "RestoreOriginal",
	ActionRestoreStart:    "RestoreStart",
	ActionReset:           "Reset",
	ActionNewPuzzle:       "NewPuzzle",
	ActionToggleN:         "ToggleN",
	ActionToggleNE:        "ToggleNE",
	ActionToggleE:         "ToggleE",
	ActionToggleSE:        "ToggleSE",
	ActionToggleS:         "ToggleS",
	ActionToggleSW:        "ToggleSW",
	ActionToggleW:         "ToggleW",
	ActionToggleNW:        "ToggleNW",
	ActionPause:           "Pause",
	ActionBack:            "Back",
	ActionQuit:            "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ToggleActions lists the design-mode toggle actions in clockwise order
// starting at north.
var ToggleActions = [8]Action{
	ActionToggleN, ActionToggleNE, ActionToggleE, ActionToggleSE,
	ActionToggleS, ActionToggleSW, ActionToggleW, ActionToggleNW,
}

// InputFrame holds the actions triggered during one platform tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is set when a click targeted a screen cell. PointerAction
	// applies to the tile under that cell, not to the keyboard cursor.
	Pointer       bool
	PointerX      int
	PointerY      int
	PointerAction Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer records a click on a screen cell and the action it triggers.
func (f *InputFrame) SetPointer(x, y int, a Action) {
	f.Pointer = true
	f.PointerX = x
	f.PointerY = y
	f.PointerAction = a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = false
	f.PointerX, f.PointerY = 0, 0
	f.PointerAction = ActionNone
}
