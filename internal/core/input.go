package core

import "math/bits"

// Action is a semantic input, decoupled from the physical key that caused it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm // Enter: submit the typed word or a menu row
	ActionPause   // Esc
	ActionRestart // r: open the restart settings while paused or ended
	ActionExit    // q: leave the session while paused or ended
	ActionQuit    // Ctrl+C
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right",
	"Confirm", "Pause", "Restart", "Exit", "Quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ActionSet is a bitmask of the actions triggered in one tick.
type ActionSet uint16

// Count returns how many actions are set.
func (s ActionSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Control runes carried in InputFrame.Keys.
const (
	KeyBackspace = '\b'
	KeyEnter     = '\n'
)

// InputFrame collects the input of one tick. Keys keeps typed runes in
// arrival order, so "a", backspace, "b" inside one tick replays as typed.
type InputFrame struct {
	Actions ActionSet
	Keys    []rune
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.Actions |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.Actions&(1<<a) != 0
}

// Type appends a rune, KeyBackspace and KeyEnter included.
func (f *InputFrame) Type(r rune) {
	f.Keys = append(f.Keys, r)
}

// Clear empties the frame, keeping the key buffer's capacity.
func (f *InputFrame) Clear() {
	f.Actions = 0
	f.Keys = f.Keys[:0]
}
