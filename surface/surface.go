// Package surface keeps a drawing surface sized to the container that
// displays it.
//
// A surface carries its size in three places: the backing store the client
// draws into, the displayed (layout) size, and the GPU viewport. The
// Synchronizer makes all three follow the container.
package surface

import "fmt"

type Dimensions struct {
	Width, Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Empty reports whether either side is zero or negative.
func (d Dimensions) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Container reports the current size of whatever displays the surface.
type Container interface {
	Size() (width, height int)
}

type Surface interface {
	BackingSize() (width, height int)
	SetBackingSize(width, height int) error
	SetDisplaySize(width, height int) error
}

type Viewport interface {
	SetViewport(x, y, width, height int) error
}
