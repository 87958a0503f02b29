package core

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Cell represents a single displayable cell of a frame
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// BlankCell is the content of every cell of a new frame
var BlankCell = Cell{Rune: ' ', Style: tcell.StyleDefault}

// Frame is a fixed-size grid of cells, stored row-major.
// A frame is built once per tick and handed to the renderer; it is never reused afterwards.
type Frame struct {
	bounds Bounds
	cells  []Cell
}

// NewFrame creates a frame with every cell blank
func NewFrame(b Bounds) *Frame {
	cells := make([]Cell, b.Width*b.Height)
	for i := range cells {
		cells[i] = BlankCell
	}
	return &Frame{bounds: b, cells: cells}
}

// Bounds returns the frame dimensions
func (f *Frame) Bounds() Bounds {
	return f.bounds
}

// Get returns the cell at (x, y); panics outside the frame
func (f *Frame) Get(x, y int) Cell {
	return f.cells[f.index(x, y)]
}

// Set writes a cell at (x, y).
// Entities are clamped to the playfield, so an out-of-bounds write is a bug and panics.
func (f *Frame) Set(x, y int, c Cell) {
	f.cells[f.index(x, y)] = c
}

// SetRune writes r with the given style at p
func (f *Frame) SetRune(p Point, r rune, style tcell.Style) {
	f.Set(p.X, p.Y, Cell{Rune: r, Style: style})
}

func (f *Frame) index(x, y int) int {
	if !f.bounds.Contains(Point{X: x, Y: y}) {
		panic(fmt.Sprintf("frame: cell (%d,%d) outside %dx%d", x, y, f.bounds.Width, f.bounds.Height))
	}
	return y*f.bounds.Width + x
}
