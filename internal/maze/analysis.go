package maze

// Openings counts the carved walls between cells.
// A perfect maze of N×N cells has exactly N²-1.
func (g *Grid) Openings() int {
	n := 0
	for y := 1; y < g.width-1; y++ {
		for x := 1; x < g.width-1; x++ {
			// Inter-cell walls have exactly one odd coordinate.
			if (x%2 == 1) != (y%2 == 1) && !g.IsWall(x, y) {
				n++
			}
		}
	}
	return n
}

// Cells returns the number of cells per side.
func (g *Grid) Cells() int {
	return (g.width - 1) / 2
}

// Components counts connected regions of cells, where two adjacent cells are
// connected if the wall between them is open.
func (g *Grid) Components() int {
	size := g.Cells()
	seen := make([]bool, size*size)
	components := 0

	for i := range seen {
		if seen[i] {
			continue
		}
		components++
		seen[i] = true
		queue := []Point{{X: i % size, Y: i / size}}
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			for _, d := range directions {
				n := c.Add(d)
				if n.X < 0 || n.X >= size || n.Y < 0 || n.Y >= size {
					continue
				}
				w := WallBetween(c, n)
				if g.IsWall(w.X, w.Y) || seen[n.Y*size+n.X] {
					continue
				}
				seen[n.Y*size+n.X] = true
				queue = append(queue, n)
			}
		}
	}
	return components
}

// HasCycle reports whether the cell graph contains a cycle. A graph with V
// vertices, E edges and C components is a forest iff E == V - C.
func (g *Grid) HasCycle() bool {
	size := g.Cells()
	return g.Openings() > size*size-g.Components()
}

// IsPerfect reports whether every cell is reachable from every other by exactly
// one path and the outer ring is closed.
func (g *Grid) IsPerfect() bool {
	return g.Components() == 1 && !g.HasCycle() && g.BoundaryClosed()
}

// BoundaryClosed reports whether every position on the outer ring is a wall.
func (g *Grid) BoundaryClosed() bool {
	last := g.width - 1
	for i := 0; i < g.width; i++ {
		if !g.IsWall(i, 0) || !g.IsWall(i, last) || !g.IsWall(0, i) || !g.IsWall(last, i) {
			return false
		}
	}
	return true
}

// Solve returns the shortest path of open wall-grid positions from one
// position to another, both ends included. Returns nil if either end is a wall
// or the ends are not connected.
func (g *Grid) Solve(from, to Point) []Point {
	if g.IsWall(from.X, from.Y) || g.IsWall(to.X, to.Y) {
		return nil
	}

	prev := make([]int, len(g.walls))
	for i := range prev {
		prev[i] = -1
	}
	start := g.index(from.X, from.Y)
	prev[start] = start

	queue := []Point{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == to {
			break
		}
		for _, d := range directions {
			n := p.Add(d)
			if g.IsWall(n.X, n.Y) {
				continue
			}
			ni := g.index(n.X, n.Y)
			if prev[ni] != -1 {
				continue
			}
			prev[ni] = g.index(p.X, p.Y)
			queue = append(queue, n)
		}
	}

	end := g.index(to.X, to.Y)
	if prev[end] == -1 {
		return nil
	}

	var path []Point
	for i := end; ; i = prev[i] {
		path = append(path, Point{X: i % g.width, Y: i / g.width})
		if i == start {
			break
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
