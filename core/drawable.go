package core

// Drawable is anything that renders itself into a frame
type Drawable interface {
	Draw(f *Frame)
}
