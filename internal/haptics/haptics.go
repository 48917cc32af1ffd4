// Package haptics provides rumble sinks for terminals, which have no motors:
// a Meter that the HUD draws as bars and a Nop for a disconnected device.
package haptics

import "github.com/vovakirdan/tui-maze/internal/core"

// Meter remembers the last motor speeds it was given.
type Meter struct {
	left, right float64
	peak        float64
}

// NewMeter creates a meter at rest.
func NewMeter() *Meter {
	return &Meter{}
}

// SetMotorSpeeds records the speeds clamped to [0,1].
func (m *Meter) SetMotorSpeeds(left, right float64) {
	m.left = core.ClampF(left, 0, 1)
	m.right = core.ClampF(right, 0, 1)
	m.peak = max(m.peak, m.left, m.right)
}

// Speeds returns the current left and right speeds.
func (m *Meter) Speeds() (left, right float64) {
	return m.left, m.right
}

// Peak returns the highest speed seen since the last Reset.
func (m *Meter) Peak() float64 {
	return m.peak
}

// Reset stops both motors and clears the peak.
func (m *Meter) Reset() {
	*m = Meter{}
}

// Bar renders v in [0,1] as a bar of width cells.
func Bar(v float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(core.ClampF(v, 0, 1)*float64(width) + 0.5)
	out := make([]rune, width)
	for i := range out {
		if i < filled {
			out[i] = '█'
		} else {
			out[i] = '·'
		}
	}
	return string(out)
}

// Nop discards motor speeds.
type Nop struct{}

func (Nop) SetMotorSpeeds(float64, float64) {}
