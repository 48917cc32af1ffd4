package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func TestComputeHeadOnIsBalanced(t *testing.T) {
	// Wall straight ahead: the normal points back at the body.
	c := Compute(core.V(0, -1), core.V(0, 1), 1)
	assert.Equal(t, Pair{Left: 0.5, Right: 0.5}, c.Orientation)
	assert.Equal(t, Pair{Left: 0.5, Right: 0.5}, c.Intensity)
}

func TestComputeSides(t *testing.T) {
	up := core.V(0, 1)

	right := Compute(core.V(-1, 0), up, 1)
	assert.InDelta(t, 0, right.Orientation.Left, 1e-9)
	assert.InDelta(t, 1, right.Orientation.Right, 1e-9)
	assert.InDelta(t, 1, right.Orientation.Balance(), 1e-9)

	left := Compute(core.V(1, 0), up, 1)
	assert.InDelta(t, 1, left.Orientation.Left, 1e-9)
	assert.InDelta(t, 0, left.Orientation.Right, 1e-9)
}

func TestComputeFollowsHeading(t *testing.T) {
	// Rotated a quarter turn counter-clockwise, a wall at world -X is ahead.
	up := core.V(0, 1).Rotate(90)
	c := Compute(core.V(1, 0), up, 1)
	assert.InDelta(t, 0.5, c.Orientation.Left, 1e-9)
	assert.InDelta(t, 0.5, c.Orientation.Right, 1e-9)
}

func TestComputeBounds(t *testing.T) {
	for deg := 0; deg < 360; deg += 7 {
		for _, heading := range []float64{0, 33, -120} {
			n := core.V(0, -1).Rotate(float64(deg))
			up := core.V(0, 1).Rotate(heading)
			c := Compute(n, up, 0.3)

			o := c.Orientation
			assert.GreaterOrEqual(t, o.Left, 0.0)
			assert.LessOrEqual(t, o.Left, 1.0)
			assert.GreaterOrEqual(t, o.Right, 0.0)
			assert.LessOrEqual(t, o.Right, 1.0)
			assert.InDelta(t, 1, o.Sum(), 1e-12)
			assert.InDelta(t, 0.3, c.Intensity.Sum(), 1e-12)
		}
	}
}

func TestCueActive(t *testing.T) {
	assert.False(t, Cue{}.Active())
	assert.True(t, Compute(core.V(0, -1), core.V(0, 1), 0.3).Active())
}
