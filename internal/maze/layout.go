package maze

import "github.com/vovakirdan/tui-maze/internal/core"

// Layout is a finished maze ready to be placed into a world.
type Layout struct {
	Grid  *Grid
	Size  int     // Cells per side
	Scale float64 // World size of one wall-grid block
	Entry Point   // Wall-grid coordinate of the start cell
	Exit  Point   // Wall-grid coordinate of the goal cell
}

// EdgeSize returns the number of wall-grid blocks per side.
func (l *Layout) EdgeSize() int {
	return l.Grid.Width()
}

// WorldSize returns the world extent of one side of the maze.
func (l *Layout) WorldSize() float64 {
	return l.Scale * float64(l.EdgeSize())
}

// ToWorld converts a wall-grid coordinate to the world position of its block center.
func (l *Layout) ToWorld(p Point) core.Vec2 {
	return core.V(float64(p.X)*l.Scale, float64(p.Y)*l.Scale)
}

// ToGrid converts a world position to the wall-grid block containing it.
func (l *Layout) ToGrid(v core.Vec2) Point {
	round := func(f float64) int {
		if f < 0 {
			return int(f - 0.5)
		}
		return int(f + 0.5)
	}
	return Point{X: round(v.X / l.Scale), Y: round(v.Y / l.Scale)}
}

// EntryWorld returns the player start position.
func (l *Layout) EntryWorld() core.Vec2 {
	return l.ToWorld(l.Entry)
}

// ExitWorld returns the goal position.
func (l *Layout) ExitWorld() core.Vec2 {
	return l.ToWorld(l.Exit)
}

// Placer receives the objects making up a maze world.
type Placer interface {
	PlaceWall(pos core.Vec2, size float64)
	PlacePlayer(pos core.Vec2)
	PlaceGoal(pos core.Vec2)
}

// Place instantiates the layout into sink: every wall block (x outer, y inner),
// then the player at the entry and the goal at the exit.
// Returns the number of walls placed.
func Place(l *Layout, sink Placer) int {
	walls := 0
	w := l.EdgeSize()
	for x := 0; x < w; x++ {
		for y := 0; y < w; y++ {
			if l.Grid.IsWall(x, y) {
				sink.PlaceWall(l.ToWorld(Point{X: x, Y: y}), l.Scale)
				walls++
			}
		}
	}
	sink.PlacePlayer(l.EntryWorld())
	sink.PlaceGoal(l.ExitWorld())
	return walls
}
