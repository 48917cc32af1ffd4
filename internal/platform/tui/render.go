package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// palette holds one style per core.Color, indexed by the color value.
var palette = func() []lipgloss.Style {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

	p := make([]lipgloss.Style, core.ColorAlert+1)
	p[core.ColorDefault] = lipgloss.NewStyle()
	p[core.ColorWall] = fg("245")
	p[core.ColorFloor] = fg("236")
	p[core.ColorPlayer] = fg("14").Bold(true)
	p[core.ColorGoal] = fg("10").Bold(true)
	p[core.ColorPath] = fg("11")
	p[core.ColorHUD] = fg("7")
	p[core.ColorCueLow] = fg("208")
	p[core.ColorCueHigh] = fg("9")
	p[core.ColorAlert] = fg("13").Bold(true)
	return p
}()

func styleOf(c core.Color) lipgloss.Style {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// RenderScreen turns the buffer into terminal text. Each row is split into
// spans of one color so a style is applied once per span, not per cell.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var out strings.Builder
	out.Grow(w*h*2 + h)

	span := make([]rune, 0, w)
	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			span = span[:0]
			for ; x < w && s.GetCell(x, y).Color == color; x++ {
				span = append(span, s.GetCell(x, y).Rune)
			}
			out.WriteString(styleOf(color).Render(string(span)))
		}
	}
	return out.String()
}
