package core

import (
	"testing"
	"time"
)

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionToggleWalls)

	if !f.Has(ActionToggleWalls) {
		t.Error("Has(ToggleWalls) = false, expected true")
	}
	if f.Has(ActionPause) {
		t.Error("Has(Pause) = true, expected false")
	}

	f.Move = V(1, 0)
	f.Clear()
	if f.Has(ActionToggleWalls) {
		t.Error("Clear() kept ToggleWalls")
	}
	if f.MoveVector() != V(1, 0) {
		t.Errorf("Clear() reset axes to %v", f.MoveVector())
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Set() on zero frame did not record the action")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Look = -0.5
	f.DT = time.Second

	c := f.Clone()
	c.Set(ActionRestart)

	if f.Has(ActionRestart) {
		t.Error("Clone() shares actions with the original")
	}
	if c.LookDelta() != -0.5 || c.DT != time.Second || !c.Has(ActionPause) {
		t.Errorf("Clone() = %+v, expected a copy of %+v", c, f)
	}
}

func TestActionString(t *testing.T) {
	if got := ActionToggleWalls.String(); got != "ToggleWalls" {
		t.Errorf("String() = %q, expected \"ToggleWalls\"", got)
	}
	if got := ActionPause.String(); got != "Pause" {
		t.Errorf("String() = %q, expected \"Pause\"", got)
	}
	if got := Action(99).String(); got != "Unknown" {
		t.Errorf("String() = %q, expected \"Unknown\"", got)
	}
}

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{50, 20 * time.Millisecond},
		{0, time.Second / 60},
	}
	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.FrameDuration(); got != tc.expected {
			t.Errorf("FrameDuration(%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}
