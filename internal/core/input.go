package core

// Action is a semantic player intent, decoupled from physical keys.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Steer left
	ActionRight          // Steer right
	ActionStop           // Drop the held direction
	ActionPause          // Toggle pause
	ActionRestart        // New run after game over
	ActionQuit           // Leave the game or session
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionStop:    "Stop",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame collects the actions pressed between two ticks.
// The zero value is an empty frame.
type InputFrame struct {
	pressed uint16 // Bit per Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as pressed. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a != ActionNone {
		f.pressed |= 1 << a
	}
}

// Has reports whether the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.pressed&(1<<a) != 0
}

// Empty reports whether nothing was pressed.
func (f InputFrame) Empty() bool {
	return f.pressed == 0
}

// Clear drops every action for the next frame.
func (f *InputFrame) Clear() {
	f.pressed = 0
}

// MoveDirection resolves the horizontal intent of this frame.
// Stop wins over movement; pressing both directions cancels out.
// ok is false when the frame carries no movement action at all.
func (f InputFrame) MoveDirection() (dir int, ok bool) {
	if f.Has(ActionStop) {
		return 0, true
	}
	left, right := f.Has(ActionLeft), f.Has(ActionRight)
	switch {
	case left && right:
		return 0, true
	case left:
		return -1, true
	case right:
		return 1, true
	}
	return 0, false
}
