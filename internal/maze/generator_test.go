package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// recordingRand returns fixed values and remembers every requested bound.
type recordingRand struct {
	bounds []int
}

func (r *recordingRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	return 0
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Generate(0, 1, rng)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Generate(-3, 1, rng)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Generate(4, 0, rng)
	assert.ErrorIs(t, err, ErrInvalidScale)

	_, err = Generate(4, 1, nil)
	assert.ErrorIs(t, err, ErrNoRand)
}

func TestGeneratePerfectMaze(t *testing.T) {
	for size := 1; size <= 16; size++ {
		for seed := int64(0); seed < 5; seed++ {
			layout, err := Generate(size, 1, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			g := layout.Grid
			assert.Equal(t, 2*size+1, g.Width())
			assert.Equal(t, size*size-1, g.Openings(), "size %d seed %d", size, seed)
			assert.Equal(t, 1, g.Components(), "size %d seed %d", size, seed)
			assert.False(t, g.HasCycle(), "size %d seed %d", size, seed)
			assert.True(t, g.IsPerfect(), "size %d seed %d", size, seed)
		}
	}
}

func TestGenerateBoundaryClosed(t *testing.T) {
	for size := 1; size <= 12; size++ {
		layout, err := Generate(size, 1, rand.New(rand.NewSource(int64(size))))
		require.NoError(t, err)

		g := layout.Grid
		last := g.Width() - 1
		for i := 0; i < g.Width(); i++ {
			assert.True(t, g.IsWall(i, 0))
			assert.True(t, g.IsWall(i, last))
			assert.True(t, g.IsWall(0, i))
			assert.True(t, g.IsWall(last, i))
		}
	}
}

func TestGenerateCellCentersOpenPillarsClosed(t *testing.T) {
	layout, err := Generate(7, 1, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	g := layout.Grid
	for y := 0; y < g.Width(); y++ {
		for x := 0; x < g.Width(); x++ {
			switch {
			case x%2 == 1 && y%2 == 1:
				assert.False(t, g.IsWall(x, y), "cell center (%d,%d) must be open", x, y)
			case x%2 == 0 && y%2 == 0:
				assert.True(t, g.IsWall(x, y), "pillar (%d,%d) must stay a wall", x, y)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(10, 1, rand.New(rand.NewSource(12345)))
	require.NoError(t, err)
	b, err := Generate(10, 1, rand.New(rand.NewSource(12345)))
	require.NoError(t, err)

	assert.Equal(t, a.Grid.Bytes(), b.Grid.Bytes())
	assert.Equal(t, a.Grid.String(), b.Grid.String())

	c, err := Generate(10, 1, rand.New(rand.NewSource(54321)))
	require.NoError(t, err)
	assert.NotEqual(t, a.Grid.Bytes(), c.Grid.Bytes())
}

func TestGenerateScriptedSequence(t *testing.T) {
	// Always choosing index 0 from (0,0) walks +x first, so a 2×2 maze carves
	// (0,0)->(1,0)->(1,1)->(0,1) and leaves the wall between (0,0) and (0,1).
	rng := &recordingRand{}
	layout, err := Generate(2, 1, rng)
	require.NoError(t, err)

	want := "" +
		"#####\n" +
		"#   #\n" +
		"### #\n" +
		"#   #\n" +
		"#####"
	assert.Equal(t, want, layout.Grid.String())

	// Two start coordinates, then one pick per carved wall, each bounded by
	// the candidate count at that moment.
	assert.Equal(t, []int{2, 2, 2, 1, 1}, rng.bounds)
}

func TestGenerateSingleCell(t *testing.T) {
	layout, err := Generate(1, 2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	g := layout.Grid
	require.Equal(t, 3, g.Width())
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				assert.False(t, g.IsWall(x, y))
			} else {
				assert.True(t, g.IsWall(x, y))
			}
		}
	}
	assert.Equal(t, 8, g.WallCount())
	assert.Equal(t, 0, g.Openings())

	assert.Equal(t, Point{X: 1, Y: 1}, layout.Entry)
	assert.Equal(t, layout.Entry, layout.Exit)
	assert.Equal(t, core.V(2, 2), layout.EntryWorld())
	assert.Equal(t, layout.EntryWorld(), layout.ExitWorld())
}

func TestWallBetween(t *testing.T) {
	assert.Equal(t, Point{X: 1, Y: 1}, CellToGrid(Point{}))
	assert.Equal(t, Point{X: 5, Y: 3}, CellToGrid(Point{X: 2, Y: 1}))

	// The wall lies halfway between the two cell centers.
	a, b := Point{X: 2, Y: 1}, Point{X: 3, Y: 1}
	ga, gb := CellToGrid(a), CellToGrid(b)
	w := WallBetween(a, b)
	assert.Equal(t, Point{X: (ga.X + gb.X) / 2, Y: (ga.Y + gb.Y) / 2}, w)
	assert.Equal(t, w, WallBetween(b, a))
}
