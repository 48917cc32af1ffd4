// Package camera frames the maze for the terminal. It owns two views: a
// follow view centred on the player and an overview that fits the whole maze.
package camera

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// View selects which camera is active.
type View int

const (
	FollowView View = iota
	MazeView
)

func (v View) String() string {
	if v == MazeView {
		return "maze"
	}
	return "follow"
}

// Terminal cells are roughly twice as tall as wide.
const colsPerRow = 2

// Scene is what the camera draws.
type Scene struct {
	Layout  *maze.Layout
	Player  core.Vec2
	Heading float64      // Degrees, counter-clockwise from world +Y
	Path    []maze.Point // Drawn when non-empty
}

// Manager owns camera state.
type Manager struct {
	view         View
	wallsVisible bool
	edgeSize     int
	worldSize    float64
	target       core.Vec2
}

// New returns a follow camera with walls hidden.
func New() *Manager {
	return &Manager{}
}

// OnMazeGenerated sizes the overview for a maze of edgeSize blocks spanning
// worldSize units and returns to the follow view with walls hidden.
func (m *Manager) OnMazeGenerated(edgeSize int, worldSize float64) {
	m.edgeSize = edgeSize
	m.worldSize = worldSize
	m.view = FollowView
	m.wallsVisible = false
}

// Follow moves the follow camera onto pos.
func (m *Manager) Follow(pos core.Vec2) {
	m.target = pos
}

// ToggleWalls flips wall visibility.
func (m *Manager) ToggleWalls() {
	m.wallsVisible = !m.wallsVisible
}

// OnGameWon switches to the overview and reveals the walls.
func (m *Manager) OnGameWon() {
	m.view = MazeView
	m.wallsVisible = true
}

// View returns the active view.
func (m *Manager) View() View {
	return m.view
}

// WallsVisible reports whether walls are drawn.
func (m *Manager) WallsVisible() bool {
	return m.wallsVisible
}

// projection maps world coordinates to screen cells.
type projection struct {
	center      core.Vec2
	rowsPerUnit float64
	w, h        int
}

func (p projection) toScreen(v core.Vec2) (int, int) {
	d := v.Sub(p.center)
	sx := float64(p.w)/2 + d.X*p.rowsPerUnit*colsPerRow
	sy := float64(p.h)/2 - d.Y*p.rowsPerUnit
	return int(math.Floor(sx)), int(math.Floor(sy))
}

func (p projection) toWorld(sx, sy int) core.Vec2 {
	x := (float64(sx) + 0.5 - float64(p.w)/2) / (p.rowsPerUnit * colsPerRow)
	y := (float64(p.h)/2 - float64(sy) - 0.5) / p.rowsPerUnit
	return p.center.Add(core.V(x, y))
}

func (m *Manager) projection(l *maze.Layout, w, h int) projection {
	p := projection{w: w, h: h}
	if m.view == MazeView && m.worldSize > 0 {
		half := float64(m.edgeSize-1) * l.Scale / 2
		p.center = core.V(half, half)
		p.rowsPerUnit = math.Min(float64(h)/m.worldSize, float64(w)/colsPerRow/m.worldSize)
	} else {
		p.center = m.target
		p.rowsPerUnit = 1 / l.Scale
	}
	if p.rowsPerUnit <= 0 {
		p.rowsPerUnit = 1
	}
	return p
}

// Render draws the scene into rows [top, top+height) of scr.
func (m *Manager) Render(scr *core.Screen, scene Scene, top, height int) {
	l := scene.Layout
	if l == nil || height <= 0 {
		return
	}
	w := scr.Width()
	p := m.projection(l, w, height)

	onPath := make(map[maze.Point]bool, len(scene.Path))
	for _, pt := range scene.Path {
		onPath[pt] = true
	}

	for sy := 0; sy < height; sy++ {
		for sx := 0; sx < w; sx++ {
			g := l.ToGrid(p.toWorld(sx, sy))
			if !l.Grid.InBounds(g.X, g.Y) {
				continue
			}
			switch {
			case l.Grid.IsWall(g.X, g.Y):
				if m.wallsVisible {
					scr.SetColor(sx, top+sy, '█', core.ColorWall)
				}
			case g == l.Exit:
				scr.SetColor(sx, top+sy, '▒', core.ColorGoal)
			case onPath[g]:
				scr.SetColor(sx, top+sy, '·', core.ColorPath)
			}
		}
	}

	px, py := p.toScreen(scene.Player)
	if py >= 0 && py < height {
		scr.SetColor(px, top+py, HeadingRune(scene.Heading), core.ColorPlayer)
	}
}

var headingRunes = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

// HeadingRune returns an arrow for a heading in degrees.
func HeadingRune(deg float64) rune {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Floor((deg+22.5)/45)) % len(headingRunes)
	return headingRunes[idx]
}
