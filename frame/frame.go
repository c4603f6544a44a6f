// Package frame drives an opaque rendering client from a host's
// refresh-driven callback, at most once per throttle interval.
package frame

import (
	"time"

	"github.com/ushitora-anqou/aqdraw/surface"
	"github.com/ushitora-anqou/aqdraw/util"
)

// Client is the rendering client. Update always precedes Render within a
// frame, and the width and height passed to Update are the surface size
// after any resize for that frame.
type Client interface {
	Update(elapsedMs float64, width, height int) error
	Render() error
}

// Host invokes the callback once, on its next display refresh. The callback
// has to request again to keep being called. A non-nil error from the
// callback stops the host.
type Host interface {
	RequestFrame(cb func() error)
}

// Clock returns the current time in milliseconds. Only differences between
// readings are meaningful.
type Clock interface {
	Now() float64
}

type Synchronizer interface {
	Sync() (surface.Dimensions, bool, error)
}

// SystemClock reads Go's monotonic clock.
type SystemClock struct {
	base time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{base: time.Now()}
}

func (c *SystemClock) Now() float64 {
	return util.DurationToMs(time.Since(c.base))
}
