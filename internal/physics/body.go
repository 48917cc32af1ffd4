// Package physics is a small deterministic 2D rigid-body world: dynamic circle
// bodies moving among static axis-aligned boxes, with edge-triggered contact
// and trigger events delivered to a listener.
package physics

import (
	"github.com/vovakirdan/tui-maze/internal/core"
)

// BodyID identifies a body or collider within a World.
type BodyID int

// NoBody is the zero BodyID; no collider is ever assigned it.
const NoBody BodyID = 0

// Contact describes a touching collider.
type Contact struct {
	Other  BodyID    // Collider being touched
	Normal core.Vec2 // Unit normal pointing from the collider towards the body
	Point  core.Vec2 // Contact point on the collider surface
}

// Listener receives contact events for a body.
type Listener interface {
	OnCollisionBegin(c Contact)
	OnCollisionEnd(other BodyID)
	OnTriggerEnter(other BodyID)
}

// BodyConfig holds the physical properties of a dynamic body.
type BodyConfig struct {
	Radius     float64 // Collision circle radius
	Mass       float64 // Must be positive
	LinearDrag float64 // Velocity damping per second
	MaxSpeed   float64 // 0 means unlimited
}

// Body is a dynamic circle. Rotation is in degrees; at rotation 0 the body's
// up axis is world +Y.
type Body struct {
	id       BodyID
	cfg      BodyConfig
	pos      core.Vec2
	vel      core.Vec2
	rotation float64
	force    core.Vec2

	listener Listener
	touching []Contact // sorted by Other
	inside   []BodyID  // triggers currently overlapped, sorted
}

// ID returns the body's identifier.
func (b *Body) ID() BodyID {
	return b.id
}

// Position returns the body's center.
func (b *Body) Position() core.Vec2 {
	return b.pos
}

// SetPosition teleports the body and zeroes its velocity.
func (b *Body) SetPosition(p core.Vec2) {
	b.pos = p
	b.vel = core.Vec2{}
}

// Velocity returns the body's linear velocity in world units per second.
func (b *Body) Velocity() core.Vec2 {
	return b.vel
}

// Radius returns the collision radius.
func (b *Body) Radius() float64 {
	return b.cfg.Radius
}

// Rotation returns the heading in degrees, counter-clockwise from world +Y.
func (b *Body) Rotation() float64 {
	return b.rotation
}

// SetRotation sets the heading in degrees.
func (b *Body) SetRotation(deg float64) {
	b.rotation = deg
}

// Up returns the body's local up axis in world space.
func (b *Body) Up() core.Vec2 {
	return core.V(0, 1).Rotate(b.rotation)
}

// Right returns the body's local right axis in world space.
func (b *Body) Right() core.Vec2 {
	return core.V(1, 0).Rotate(b.rotation)
}

// AddForce accumulates a force applied during the next Step.
func (b *Body) AddForce(f core.Vec2) {
	b.force = b.force.Add(f)
}

// SetListener registers the receiver of this body's contact events.
func (b *Body) SetListener(l Listener) {
	b.listener = l
}

// Contacts returns the colliders currently touching the body.
func (b *Body) Contacts() []Contact {
	out := make([]Contact, len(b.touching))
	copy(out, b.touching)
	return out
}
