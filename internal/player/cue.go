package player

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Pair is a left/right value pair.
type Pair struct {
	Left, Right float64
}

// Sum returns Left + Right.
func (p Pair) Sum() float64 {
	return p.Left + p.Right
}

// Balance returns Right - Left, in [-1, 1] for orientations.
func (p Pair) Balance() float64 {
	return p.Right - p.Left
}

// Scale multiplies both sides by f.
func (p Pair) Scale(f float64) Pair {
	return Pair{Left: p.Left * f, Right: p.Right * f}
}

// Cue is the directional feedback for one wall contact.
// Orientation components lie in [0,1] and sum to 1.
type Cue struct {
	Orientation Pair
	Intensity   Pair
}

// Compute derives the cue for a contact normal seen from a body whose local
// up axis is up. A wall straight ahead yields a balanced (0.5, 0.5) cue; a
// wall on the right pushes everything to the right side.
func Compute(normal, up core.Vec2, gain float64) Cue {
	theta := core.SignedAngle(normal.Neg(), up)
	s := math.Sin(theta * core.Deg2Rad)
	o := Pair{Left: 0.5 - 0.5*s, Right: 0.5 + 0.5*s}
	return Cue{Orientation: o, Intensity: o.Scale(gain)}
}

// Active reports whether the cue is strong enough to be felt.
func (c Cue) Active() bool {
	return c.Intensity.Sum() >= cueEpsilon
}

const cueEpsilon = 0.01
