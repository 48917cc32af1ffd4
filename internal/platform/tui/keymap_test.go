package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"toggle walls", runeKey('t'), core.ActionToggleWalls, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestHeldAxes(t *testing.T) {
	km := NewKeyMapper()
	start := time.Unix(0, 0)

	km.Press(runeKey('w'), start)
	km.Press(tea.KeyMsg{Type: tea.KeyRight}, start)

	move, look := km.Sample(start.Add(100 * time.Millisecond))
	if move != core.V(0, 1) {
		t.Errorf("Sample() move = %v, expected (0, 1)", move)
	}
	if look != 1 {
		t.Errorf("Sample() look = %v, expected 1", look)
	}

	// Released once the first hold runs out
	move, look = km.Sample(start.Add(firstHold))
	if move != (core.Vec2{}) || look != 0 {
		t.Errorf("Sample() after hold = (%v, %v), expected zero", move, look)
	}
}

func TestAutoRepeatKeepsAxisHeld(t *testing.T) {
	km := NewKeyMapper()
	now := time.Unix(0, 0)

	km.Press(runeKey('a'), now)
	for range 10 {
		now = now.Add(100 * time.Millisecond)
		km.Press(runeKey('a'), now)
		if move, _ := km.Sample(now); move != core.V(-1, 0) {
			t.Fatalf("Sample() while repeating = %v, expected (-1, 0)", move)
		}
	}

	// Repeats hold for a short window only
	if move, _ := km.Sample(now.Add(repeatHold)); move != (core.Vec2{}) {
		t.Errorf("Sample() after last repeat = %v, expected zero", move)
	}
}

func TestOppositeKeyCancels(t *testing.T) {
	km := NewKeyMapper()
	now := time.Unix(0, 0)

	km.Press(runeKey('w'), now)
	km.Press(runeKey('s'), now.Add(10*time.Millisecond))

	if move, _ := km.Sample(now.Add(20 * time.Millisecond)); move != core.V(0, -1) {
		t.Errorf("Sample() = %v, expected (0, -1)", move)
	}
}

func TestRelease(t *testing.T) {
	km := NewKeyMapper()
	now := time.Unix(0, 0)

	km.Press(runeKey('d'), now)
	km.Release()

	if move, _ := km.Sample(now); move != (core.Vec2{}) {
		t.Errorf("Sample() after Release = %v, expected zero", move)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	now := time.Unix(0, 0)

	if km.MapKeyToFrame(runeKey('w'), &frame, now) {
		t.Error("movement key reported as quit")
	}
	if frame.Actions != 0 {
		t.Errorf("movement key set actions %b", frame.Actions)
	}

	km.MapKeyToFrame(runeKey('t'), &frame, now)
	if !frame.Has(core.ActionToggleWalls) {
		t.Error("expected ToggleWalls action")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame, now) {
		t.Error("expected quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	nominal := time.Second / 60
	now := time.Unix(10, 0)

	if got := frameDelta(time.Time{}, now, nominal); got != nominal {
		t.Errorf("frameDelta() first tick = %v, expected %v", got, nominal)
	}
	if got := frameDelta(now, now.Add(40*time.Millisecond), nominal); got != 40*time.Millisecond {
		t.Errorf("frameDelta() = %v, expected 40ms", got)
	}
	if got := frameDelta(now, now.Add(-time.Second), nominal); got != nominal {
		t.Errorf("frameDelta() backwards = %v, expected %v", got, nominal)
	}
}
