package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Swarm gradient endpoints, top row to bottom row
var (
	swarmTop    = colorful.Color{R: 0.95, G: 0.30, B: 0.85} // magenta
	swarmBottom = colorful.Color{R: 0.25, G: 0.85, B: 0.95} // cyan
)

// RowStyles returns one foreground style per row, blended top to bottom in Lab space
func RowStyles(rows int) []tcell.Style {
	if rows <= 0 {
		return nil
	}

	styles := make([]tcell.Style, rows)
	for y := range styles {
		t := 0.0
		if rows > 1 {
			t = float64(y) / float64(rows-1)
		}
		r, g, b := swarmTop.BlendLab(swarmBottom, t).Clamped().RGB255()
		styles[y] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	return styles
}
