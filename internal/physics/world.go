package physics

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// DefaultSkin is the distance within which a collider still counts as touching.
const DefaultSkin = 0.01

// resolveIterations bounds the penetration passes per step; corners need two.
const resolveIterations = 4

var (
	// ErrInvalidCell is returned for a non-positive spatial hash cell size.
	ErrInvalidCell = errors.New("physics: cell size must be positive")
	// ErrInvalidBody is returned for a body with non-positive radius or mass.
	ErrInvalidBody = errors.New("physics: body needs positive radius and mass")
)

type collider struct {
	id      BodyID
	box     core.Box
	trigger bool
}

type cellKey struct {
	x, y int
}

// World holds static colliders and dynamic bodies.
type World struct {
	cellSize  float64
	skin      float64
	nextID    BodyID
	colliders []collider
	hash      map[cellKey][]int // cell -> collider indices
	bodies    []*Body

	// Scratch state for candidate queries.
	stamp   []int
	queryNo int
}

// NewWorld creates an empty world. cellSize sets the spatial hash granularity
// and should be close to the typical collider size.
func NewWorld(cellSize float64) (*World, error) {
	if cellSize <= 0 {
		return nil, ErrInvalidCell
	}
	return &World{
		cellSize: cellSize,
		skin:     DefaultSkin,
		hash:     make(map[cellKey][]int),
	}, nil
}

// CellSize returns the spatial hash granularity.
func (w *World) CellSize() float64 {
	return w.cellSize
}

// SetSkin overrides the touching tolerance.
func (w *World) SetSkin(skin float64) {
	w.skin = math.Max(skin, 0)
}

func (w *World) newID() BodyID {
	w.nextID++
	return w.nextID
}

func (w *World) cellRange(lo, hi core.Vec2) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(lo.X / w.cellSize))
	y0 = int(math.Floor(lo.Y / w.cellSize))
	x1 = int(math.Floor(hi.X / w.cellSize))
	y1 = int(math.Floor(hi.Y / w.cellSize))
	return
}

func (w *World) addCollider(box core.Box, trigger bool) BodyID {
	id := w.newID()
	idx := len(w.colliders)
	w.colliders = append(w.colliders, collider{id: id, box: box, trigger: trigger})
	w.stamp = append(w.stamp, 0)

	x0, y0, x1, y1 := w.cellRange(box.Min, box.Max)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			k := cellKey{x, y}
			w.hash[k] = append(w.hash[k], idx)
		}
	}
	return id
}

// AddStatic adds a solid box and returns its id.
func (w *World) AddStatic(box core.Box) BodyID {
	return w.addCollider(box, false)
}

// AddTrigger adds a non-solid box that reports overlaps and returns its id.
func (w *World) AddTrigger(box core.Box) BodyID {
	return w.addCollider(box, true)
}

// AddBody adds a dynamic circle body at pos.
func (w *World) AddBody(cfg BodyConfig, pos core.Vec2) (*Body, error) {
	if cfg.Radius <= 0 || cfg.Mass <= 0 {
		return nil, ErrInvalidBody
	}
	b := &Body{
		id:  w.newID(),
		cfg: cfg,
		pos: pos,
	}
	w.bodies = append(w.bodies, b)
	return b, nil
}

// StaticCount returns the number of solid colliders.
func (w *World) StaticCount() int {
	n := 0
	for _, c := range w.colliders {
		if !c.trigger {
			n++
		}
	}
	return n
}

// nearby returns indices of colliders whose hash cells intersect the circle's
// bounding square, in ascending id order.
func (w *World) nearby(p core.Vec2, reach float64) []int {
	w.queryNo++
	var out []int
	x0, y0, x1, y1 := w.cellRange(core.V(p.X-reach, p.Y-reach), core.V(p.X+reach, p.Y+reach))
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for _, idx := range w.hash[cellKey{x, y}] {
				if w.stamp[idx] == w.queryNo {
					continue
				}
				w.stamp[idx] = w.queryNo
				out = append(out, idx)
			}
		}
	}
	// Collider ids grow with their index.
	sort.Ints(out)
	return out
}

// Step advances the simulation by dt and dispatches contact events.
func (w *World) Step(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}
	for _, b := range w.bodies {
		w.integrate(b, secs)
		w.resolve(b)
		w.updateContacts(b)
	}
}

func (w *World) integrate(b *Body, secs float64) {
	acc := b.force.Scale(1 / b.cfg.Mass)
	b.vel = b.vel.Add(acc.Scale(secs))
	b.vel = b.vel.Scale(math.Max(0, 1-b.cfg.LinearDrag*secs))
	if b.cfg.MaxSpeed > 0 {
		if s := b.vel.Len(); s > b.cfg.MaxSpeed {
			b.vel = b.vel.Scale(b.cfg.MaxSpeed / s)
		}
	}
	b.pos = b.pos.Add(b.vel.Scale(secs))
	b.force = core.Vec2{}
}

// separation returns the contact normal and penetration depth of circle (p, r)
// against box. ok is false when they do not overlap.
func separation(p core.Vec2, r float64, box core.Box) (normal core.Vec2, depth float64, ok bool) {
	cp := box.ClosestPoint(p)
	d := p.Sub(cp)
	dist := d.Len()
	if dist > 0 {
		if dist >= r {
			return core.Vec2{}, 0, false
		}
		return d.Scale(1 / dist), r - dist, true
	}

	// Center inside the box: push out through the nearest face.
	left := p.X - box.Min.X
	right := box.Max.X - p.X
	down := p.Y - box.Min.Y
	up := box.Max.Y - p.Y
	best := left
	normal = core.V(-1, 0)
	if right < best {
		best, normal = right, core.V(1, 0)
	}
	if down < best {
		best, normal = down, core.V(0, -1)
	}
	if up < best {
		best, normal = up, core.V(0, 1)
	}
	return normal, best + r, true
}

func (w *World) resolve(b *Body) {
	r := b.cfg.Radius
	for range resolveIterations {
		moved := false
		for _, idx := range w.nearby(b.pos, r) {
			c := w.colliders[idx]
			if c.trigger {
				continue
			}
			n, depth, ok := separation(b.pos, r, c.box)
			if !ok {
				continue
			}
			b.pos = b.pos.Add(n.Scale(depth))
			if vn := b.vel.Dot(n); vn < 0 {
				b.vel = b.vel.Sub(n.Scale(vn))
			}
			moved = true
		}
		if !moved {
			return
		}
	}
}

func (w *World) updateContacts(b *Body) {
	r := b.cfg.Radius
	var touching []Contact
	var inside []BodyID

	for _, idx := range w.nearby(b.pos, r+w.skin) {
		c := w.colliders[idx]
		cp := c.box.ClosestPoint(b.pos)
		d := b.pos.Sub(cp)
		dist := d.Len()

		if c.trigger {
			if dist < r {
				inside = append(inside, c.id)
			}
			continue
		}
		if dist > r+w.skin {
			continue
		}
		n := d.Normalized()
		if dist == 0 {
			n, _, _ = separation(b.pos, r, c.box)
		}
		touching = append(touching, Contact{Other: c.id, Normal: n, Point: cp})
	}

	prevTouching, prevInside := b.touching, b.inside
	b.touching, b.inside = touching, inside

	if b.listener == nil {
		return
	}
	for _, c := range prevTouching {
		if !hasContact(touching, c.Other) {
			b.listener.OnCollisionEnd(c.Other)
		}
	}
	for _, c := range touching {
		if !hasContact(prevTouching, c.Other) {
			b.listener.OnCollisionBegin(c)
		}
	}
	for _, id := range inside {
		if !hasID(prevInside, id) {
			b.listener.OnTriggerEnter(id)
		}
	}
}

func hasContact(cs []Contact, id BodyID) bool {
	for _, c := range cs {
		if c.Other == id {
			return true
		}
	}
	return false
}

func hasID(ids []BodyID, id BodyID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
