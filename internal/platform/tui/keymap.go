package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// movement key counts as held until it stops repeating.
const (
	// firstHold covers the keyboard's initial repeat delay after a fresh press.
	firstHold = 500 * time.Millisecond
	// repeatHold covers the gap between auto-repeats.
	repeatHold = 150 * time.Millisecond
)

// axis identifies one held direction.
type axis int

const (
	axisForward axis = iota
	axisBack
	axisStrafeLeft
	axisStrafeRight
	axisLookLeft
	axisLookRight
	axisCount
)

var axisKeys = map[string]axis{
	"w":     axisForward,
	"up":    axisForward,
	"s":     axisBack,
	"down":  axisBack,
	"a":     axisStrafeLeft,
	"d":     axisStrafeRight,
	"left":  axisLookLeft,
	"h":     axisLookLeft,
	"right": axisLookRight,
	"l":     axisLookRight,
}

// KeyMapper translates Bubble Tea key messages to game actions and held axes.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	until [axisCount]time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a discrete action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "t":
		return core.ActionToggleWalls, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	case "enter":
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
}

// Press records a key press at now. Returns false if the key is not a
// movement or look key.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time) bool {
	a, ok := axisKeys[msg.String()]
	if !ok {
		return false
	}

	hold := firstHold
	if now.Before(km.until[a]) {
		// Auto-repeat of a key already held
		hold = repeatHold
	}
	km.until[a] = now.Add(hold)

	// Opposite directions cancel the older press
	if opp := a ^ 1; now.Before(km.until[opp]) {
		km.until[opp] = time.Time{}
	}
	return true
}

// Sample returns the axes held at now.
func (km *KeyMapper) Sample(now time.Time) (move core.Vec2, look float64) {
	held := func(a axis) float64 {
		if now.Before(km.until[a]) {
			return 1
		}
		return 0
	}
	move = core.V(
		held(axisStrafeRight)-held(axisStrafeLeft),
		held(axisForward)-held(axisBack),
	)
	look = held(axisLookRight) - held(axisLookLeft)
	return move, look
}

// Release drops every held axis.
func (km *KeyMapper) Release() {
	km.until = [axisCount]time.Time{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	if km.Press(msg, now) {
		return false
	}
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
