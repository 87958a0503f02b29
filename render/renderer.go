package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/core"
)

// Sink is the character-grid surface frames are written to; tcell.Screen satisfies it
type Sink interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Render writes the cells of curr that differ from prev, then flushes the sink.
// force writes every cell regardless of prev. Neither frame is modified.
// Returns the number of cells written.
func Render(sink Sink, prev, curr *core.Frame, force bool) int {
	b := curr.Bounds()
	if prev == nil || prev.Bounds() != b {
		force = true
	}

	written := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := curr.Get(x, y)
			if !force && c == prev.Get(x, y) {
				continue
			}
			sink.SetContent(x, y, c.Rune, nil, c.Style)
			written++
		}
	}

	sink.Show()
	return written
}
