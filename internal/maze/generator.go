package maze

import (
	"errors"
)

var (
	// ErrInvalidSize is returned for a non-positive maze size.
	ErrInvalidSize = errors.New("maze: size must be positive")
	// ErrInvalidScale is returned for a non-positive cell-to-world scale.
	ErrInvalidScale = errors.New("maze: scale must be positive")
	// ErrNoRand is returned when no random source is supplied.
	ErrNoRand = errors.New("maze: random source is required")
)

// Rand is the source of uniform random integers used for carving.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Neighbor order is part of the output contract: with a fixed Rand sequence the
// carved maze depends on it.
var directions = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Generate carves a perfect maze of size×size cells.
//
// Randomized DFS: start from a random cell, repeatedly extend the path to a
// random unvisited neighbor of the cell on top of the frontier stack, and
// backtrack when it has none. The opened walls form a spanning tree over the
// cells, so every pair of cells is joined by exactly one path.
func Generate(size int, scale float64, rng Rand) (*Layout, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if scale <= 0 {
		return nil, ErrInvalidScale
	}
	if rng == nil {
		return nil, ErrNoRand
	}

	grid := newGrid(size)
	visited := make([]bool, size*size)
	visit := func(c Point) { visited[c.Y*size+c.X] = true }
	open := func(c Point) bool {
		return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size && !visited[c.Y*size+c.X]
	}

	start := Point{X: rng.Intn(size), Y: rng.Intn(size)}
	visit(start)
	stack := make([]Point, 1, size*size)
	stack[0] = start

	var candidates [len(directions)]Point
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		n := 0
		for _, d := range directions {
			if next := current.Add(d); open(next) {
				candidates[n] = next
				n++
			}
		}

		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(n)]
		grid.clear(WallBetween(current, next))
		visit(next)
		stack = append(stack, next)
	}

	last := 2*size - 1
	return &Layout{
		Grid:  grid,
		Size:  size,
		Scale: scale,
		Entry: Point{X: 1, Y: 1},
		Exit:  Point{X: last, Y: last},
	}, nil
}
