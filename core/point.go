package core

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Bounds is the fixed size of the playfield
type Bounds struct {
	Width, Height int
}

// Contains reports whether p lies inside [0,Width) x [0,Height)
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}
