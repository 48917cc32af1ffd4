// Package maze generates perfect mazes with a randomized depth-first search.
//
// A maze of N×N cells is stored in a (2N+1)×(2N+1) wall grid so that cells and
// the walls between them share one coordinate space: cell (cx, cy) sits at
// (2cx+1, 2cy+1) and the wall between two adjacent cells sits halfway between
// them. Walls and cells render uniformly as equal-sized blocks.
package maze

import "strings"

// Point is an integer coordinate, either in cell space or in wall-grid space
// depending on context.
type Point struct {
	X, Y int
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// CellToGrid maps a cell coordinate to its wall-grid coordinate.
func CellToGrid(c Point) Point {
	return Point{X: 2*c.X + 1, Y: 2*c.Y + 1}
}

// WallBetween returns the wall-grid coordinate separating adjacent cells a and b.
func WallBetween(a, b Point) Point {
	return Point{X: a.X + b.X + 1, Y: a.Y + b.Y + 1}
}

// Grid is the wall grid: a square boolean matrix where true means wall.
// Storage is a flat slice indexed by y*width+x.
type Grid struct {
	width int
	walls []bool
}

// newGrid creates the initial wall grid for a maze of size cells per side.
// Every position with an even coordinate, and the outer ring, starts as wall;
// only cell centers are open.
func newGrid(size int) *Grid {
	width := 2*size + 1
	g := &Grid{
		width: width,
		walls: make([]bool, width*width),
	}
	edge := func(v int) bool {
		return v == 0 || v == width-1 || v%2 == 0
	}
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			g.walls[g.index(x, y)] = edge(x) || edge(y)
		}
	}
	return g
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Width returns the number of wall-grid positions per side (2N+1).
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.width
}

// IsWall reports whether (x, y) is a wall. Positions outside the grid are walls.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.walls[g.index(x, y)]
}

func (g *Grid) clear(p Point) {
	g.walls[g.index(p.X, p.Y)] = false
}

// WallCount returns the number of wall positions.
func (g *Grid) WallCount() int {
	n := 0
	for _, w := range g.walls {
		if w {
			n++
		}
	}
	return n
}

// Bytes encodes the grid one byte per position ('1' wall, '0' open), row by row
// starting at y = 0.
func (g *Grid) Bytes() []byte {
	out := make([]byte, len(g.walls))
	for i, w := range g.walls {
		if w {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return out
}

// String draws the grid with '#' for walls, highest y on the first line so it
// reads the same way the maze is displayed.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width * (g.width + 1))
	for y := g.width - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			if g.IsWall(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
