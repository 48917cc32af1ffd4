package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
)

const step = 20 * time.Millisecond

type recorder struct {
	begins   []Contact
	ends     []BodyID
	triggers []BodyID
}

func (r *recorder) OnCollisionBegin(c Contact)  { r.begins = append(r.begins, c) }
func (r *recorder) OnCollisionEnd(other BodyID) { r.ends = append(r.ends, other) }
func (r *recorder) OnTriggerEnter(other BodyID) { r.triggers = append(r.triggers, other) }

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(1)
	require.NoError(t, err)
	return w
}

func newTestBody(t *testing.T, w *World, pos core.Vec2) (*Body, *recorder) {
	t.Helper()
	b, err := w.AddBody(BodyConfig{Radius: 0.25, Mass: 1}, pos)
	require.NoError(t, err)
	rec := &recorder{}
	b.SetListener(rec)
	return b, rec
}

func TestNewWorldValidation(t *testing.T) {
	_, err := NewWorld(0)
	assert.ErrorIs(t, err, ErrInvalidCell)

	w := newTestWorld(t)
	_, err = w.AddBody(BodyConfig{Radius: 0, Mass: 1}, core.Vec2{})
	assert.ErrorIs(t, err, ErrInvalidBody)
	_, err = w.AddBody(BodyConfig{Radius: 1, Mass: 0}, core.Vec2{})
	assert.ErrorIs(t, err, ErrInvalidBody)
}

func TestBodyAxes(t *testing.T) {
	w := newTestWorld(t)
	b, _ := newTestBody(t, w, core.Vec2{})

	assert.InDelta(t, 0, b.Up().X, 1e-9)
	assert.InDelta(t, 1, b.Up().Y, 1e-9)
	assert.InDelta(t, 1, b.Right().X, 1e-9)

	b.SetRotation(90)
	assert.InDelta(t, -1, b.Up().X, 1e-9)
	assert.InDelta(t, 0, b.Up().Y, 1e-9)
	assert.InDelta(t, 0, b.Right().X, 1e-9)
	assert.InDelta(t, 1, b.Right().Y, 1e-9)
}

func TestIntegration(t *testing.T) {
	w := newTestWorld(t)
	b, err := w.AddBody(BodyConfig{Radius: 0.25, Mass: 2}, core.Vec2{})
	require.NoError(t, err)

	b.AddForce(core.V(2, 0))
	w.Step(time.Second)

	assert.InDelta(t, 1, b.Velocity().X, 1e-9)
	assert.InDelta(t, 1, b.Position().X, 1e-9)

	// Force is consumed by the step.
	w.Step(time.Second)
	assert.InDelta(t, 1, b.Velocity().X, 1e-9)
	assert.InDelta(t, 2, b.Position().X, 1e-9)
}

func TestDragAndMaxSpeed(t *testing.T) {
	w := newTestWorld(t)
	b, err := w.AddBody(BodyConfig{Radius: 0.25, Mass: 1, LinearDrag: 1, MaxSpeed: 3}, core.Vec2{})
	require.NoError(t, err)

	b.AddForce(core.V(100, 0))
	w.Step(100 * time.Millisecond)
	assert.InDelta(t, 3, b.Velocity().Len(), 1e-9)

	for range 50 {
		w.Step(step)
	}
	assert.Less(t, b.Velocity().Len(), 3.0)
}

func TestZeroStepIsNoop(t *testing.T) {
	w := newTestWorld(t)
	b, _ := newTestBody(t, w, core.Vec2{})
	b.AddForce(core.V(10, 0))
	w.Step(0)
	assert.Equal(t, core.Vec2{}, b.Position())
}

func TestCollisionBeginAndEnd(t *testing.T) {
	w := newTestWorld(t)
	wall := w.AddStatic(core.BoxAt(core.V(0, 2), 1))
	b, rec := newTestBody(t, w, core.V(0, 1))

	for range 40 {
		b.AddForce(core.V(0, 10))
		w.Step(step)
	}

	require.Len(t, rec.begins, 1, "held contact must report begin once")
	c := rec.begins[0]
	assert.Equal(t, wall, c.Other)
	assert.InDelta(t, 0, c.Normal.X, 1e-9)
	assert.InDelta(t, -1, c.Normal.Y, 1e-9)
	assert.InDelta(t, 1.5, c.Point.Y, 1e-9)
	assert.LessOrEqual(t, b.Position().Y, 1.25+1e-9)
	assert.LessOrEqual(t, b.Velocity().Y, 1e-9)
	assert.Empty(t, rec.ends)
	assert.Len(t, b.Contacts(), 1)

	b.AddForce(core.V(0, -100))
	w.Step(step)
	w.Step(step)

	require.Equal(t, []BodyID{wall}, rec.ends)
	assert.Empty(t, b.Contacts())
}

func TestCornerReportsBothWalls(t *testing.T) {
	w := newTestWorld(t)
	top := w.AddStatic(core.BoxAt(core.V(0, 1), 1))
	right := w.AddStatic(core.BoxAt(core.V(1, 0), 1))
	b, rec := newTestBody(t, w, core.V(0, 0))

	for range 20 {
		b.AddForce(core.V(10, 10))
		w.Step(step)
	}

	require.Len(t, rec.begins, 2)
	ids := []BodyID{rec.begins[0].Other, rec.begins[1].Other}
	assert.ElementsMatch(t, []BodyID{top, right}, ids)

	p0, p1 := rec.begins[0].Point, rec.begins[1].Point
	assert.NotEqual(t, p0.X, p1.X)
	assert.NotEqual(t, p0.Y, p1.Y)
}

func TestTriggerEntersOnce(t *testing.T) {
	w := newTestWorld(t)
	goal := w.AddTrigger(core.BoxAt(core.V(0, 2), 1))
	b, rec := newTestBody(t, w, core.V(0, 0))

	for range 60 {
		b.AddForce(core.V(0, 4))
		w.Step(step)
	}

	assert.Equal(t, []BodyID{goal}, rec.triggers)
	assert.Empty(t, rec.begins, "triggers are not solid")
	assert.Greater(t, b.Position().Y, 1.5, "body passes through the trigger")
}

func TestNoListener(t *testing.T) {
	w := newTestWorld(t)
	w.AddStatic(core.BoxAt(core.V(0, 1), 1))
	b, err := w.AddBody(BodyConfig{Radius: 0.25, Mass: 1}, core.V(0, 0.3))
	require.NoError(t, err)

	w.Step(step)
	assert.Len(t, b.Contacts(), 1)
}

func TestCenterInsideBoxIsPushedOut(t *testing.T) {
	w := newTestWorld(t)
	w.AddStatic(core.BoxAt(core.V(0, 0), 1))
	b, _ := newTestBody(t, w, core.V(0.4, 0))

	w.Step(step)
	assert.InDelta(t, 0.75, b.Position().X, 1e-9)
}

func TestDeterminism(t *testing.T) {
	run := func() core.Vec2 {
		w := newTestWorld(t)
		for x := -3; x <= 3; x++ {
			w.AddStatic(core.BoxAt(core.V(float64(x), 3), 1))
			w.AddStatic(core.BoxAt(core.V(3, float64(x)), 1))
		}
		b, _ := newTestBody(t, w, core.Vec2{})
		for i := range 200 {
			b.AddForce(core.V(5, 3).Rotate(float64(i)))
			w.Step(step)
		}
		return b.Position()
	}
	assert.Equal(t, run(), run())
}

func TestStaticCount(t *testing.T) {
	w := newTestWorld(t)
	w.AddStatic(core.BoxAt(core.V(0, 0), 1))
	w.AddStatic(core.BoxAt(core.V(1, 0), 1))
	w.AddTrigger(core.BoxAt(core.V(2, 0), 1))
	assert.Equal(t, 2, w.StaticCount())
}
