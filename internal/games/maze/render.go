package maze

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-maze/internal/camera"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/haptics"
)

// hudRows is the height of the status area above the maze view.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	if g.err != nil {
		dst.DrawTextCentered(h/2-1, "CANNOT START MAZE", core.ColorAlert)
		dst.DrawTextCentered(h/2+1, g.err.Error(), core.ColorHUD)
		return
	}
	if g.screenTooSmall || w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorAlert)
		return
	}
	if g.layout == nil {
		return
	}

	g.cam.Render(dst, camera.Scene{
		Layout:  g.layout,
		Player:  g.body.Position(),
		Heading: g.body.Rotation(),
		Path:    g.path,
	}, hudRows, h-hudRows)

	g.renderHUD(dst)

	switch {
	case g.won:
		secs := int(g.restartIn/time.Second) + 1
		dst.DrawTextCentered(h/2, fmt.Sprintf(" ESCAPED in %s ", formatElapsed(g.elapsed)), core.ColorGoal)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf(" next maze in %d ", secs), core.ColorHUD)
	case g.paused:
		dst.DrawTextCentered(h/2, " PAUSED ", core.ColorAlert)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()

	walls := "hidden"
	if g.cam.WallsVisible() {
		walls = "shown"
	}
	status := fmt.Sprintf("%s  %dx%d  %s  bumps %d  walls %s",
		g.variant.title, g.size, g.size, formatElapsed(g.elapsed), g.ctrl.Pulses(), walls)
	dst.DrawTextColor(0, 0, status, core.ColorHUD)

	// Rumble meters, left motor on the left
	left, right := g.meter.Speeds()
	barW := max((w-8)/2, 1)
	dst.DrawTextColor(0, 1, "L", core.ColorHUD)
	dst.DrawTextColor(2, 1, haptics.Bar(left, barW), cueColor(left))
	dst.DrawTextColor(w-barW-2, 1, haptics.Bar(right, barW), cueColor(right))
	dst.DrawTextColor(w-1, 1, "R", core.ColorHUD)
}

func cueColor(v float64) core.Color {
	if v >= 0.5 {
		return core.ColorCueHigh
	}
	return core.ColorCueLow
}

// formatElapsed renders a duration as m:ss.t.
func formatElapsed(d time.Duration) string {
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
