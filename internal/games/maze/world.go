package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	mazegen "github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/physics"
)

// worldBuilder places a layout into a physics world.
type worldBuilder struct {
	world *physics.World
	phys  config.MazePhysics
	body  *physics.Body
	goal  physics.BodyID
	walls int
	err   error
}

func (b *worldBuilder) PlaceWall(pos core.Vec2, size float64) {
	b.world.AddStatic(core.BoxAt(pos, size))
}

func (b *worldBuilder) PlacePlayer(pos core.Vec2) {
	body, err := b.world.AddBody(physics.BodyConfig{
		Radius:     b.phys.Radius,
		Mass:       b.phys.Mass,
		LinearDrag: b.phys.LinearDrag,
		MaxSpeed:   b.phys.MaxSpeed,
	}, pos)
	if err != nil {
		b.err = err
		return
	}
	b.body = body
}

func (b *worldBuilder) PlaceGoal(pos core.Vec2) {
	// Half a block: the goal is entered once the body is well inside the cell.
	b.goal = b.world.AddTrigger(core.BoxAt(pos, b.cellScale()/2))
}

func (b *worldBuilder) cellScale() float64 {
	return b.world.CellSize()
}

// buildWorld creates the physics world for layout.
func buildWorld(layout *mazegen.Layout, phys config.MazePhysics) (*worldBuilder, error) {
	w, err := physics.NewWorld(layout.Scale)
	if err != nil {
		return nil, fmt.Errorf("maze: cannot create world: %w", err)
	}
	w.SetSkin(phys.Skin)

	b := &worldBuilder{world: w, phys: phys}
	b.walls = mazegen.Place(layout, b)
	if b.err != nil {
		return nil, fmt.Errorf("maze: cannot place player: %w", b.err)
	}
	return b, nil
}
