package core

import "time"

// Action is a discrete command decoded from a key press.
type Action uint8

const (
	ActionNone        Action = iota
	ActionToggleWalls        // t
	ActionConfirm            // enter
	ActionBack               // b, esc: leave to the menu
	ActionRestart            // r: new maze
	ActionQuit               // q, ctrl+c
	ActionPause              // p, space
	actionCount
)

var actionNames = [actionCount]string{
	"None", "ToggleWalls", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ActionSet holds the actions triggered during one frame, one bit each.
type ActionSet uint16

// InputFrame is everything the player did during one frame. Move and Look
// are held axes sampled once per frame; Actions fire on the frame their key
// was pressed and are cleared afterwards.
type InputFrame struct {
	Actions ActionSet

	// Move holds the axis pair in [-1, 1]: X strafes right, Y goes forward.
	Move Vec2

	// Look is the turn axis in [-1, 1]. Positive turns right.
	Look float64

	// DT is the wall time since the previous frame. Zero means one nominal tick.
	DT time.Duration
}

// NewInputFrame returns a frame with nothing pressed.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a triggered action.
func (f *InputFrame) Set(a Action) {
	f.Actions |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions&(1<<a) != 0
}

// MoveVector returns the sampled move axes.
func (f InputFrame) MoveVector() Vec2 {
	return f.Move
}

// LookDelta returns the sampled look axis.
func (f InputFrame) LookDelta() float64 {
	return f.Look
}

// Clear drops the triggered actions. Axes are left to the sampler.
func (f *InputFrame) Clear() {
	f.Actions = 0
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
