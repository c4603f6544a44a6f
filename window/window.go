package window

import "image/color"

// Window is a host for the frame loop. It owns the refresh-driven callback
// facility, the clock, the display container and the drawing surface inside
// it.
type Window interface {
	// RequestFrame arms cb for the next refresh. Requesting again before the
	// refresh replaces the pending callback.
	RequestFrame(cb func() error)

	// Now returns milliseconds from a monotonic source.
	Now() float64

	// Size is the container size. BackingSize and the setters address the
	// drawing surface.
	Size() (width, height int)
	BackingSize() (width, height int)
	SetBackingSize(width, height int) error
	SetDisplaySize(width, height int) error
	SetViewport(x, y, width, height int) error

	// Clear fills the viewport with c.
	Clear(c color.RGBA) error

	// DrawingContext reports whether a hardware drawing context is bound
	// to the surface.
	DrawingContext() bool

	// Notify shows a message to the user.
	Notify(message string)

	// Run serves refreshes until the window closes, nothing is armed any
	// more, or a callback fails.
	Run() error

	Close()
}
