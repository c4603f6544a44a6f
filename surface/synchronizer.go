package surface

import (
	"github.com/ushitora-anqou/aqdraw/util"
)

var logger = util.NewLogger("surface")

type Synchronizer struct {
	container Container
	surface   Surface
	viewport  Viewport
}

func NewSynchronizer(container Container, surface Surface, viewport Viewport) *Synchronizer {
	return &Synchronizer{
		container: container,
		surface:   surface,
		viewport:  viewport,
	}
}

// Sync resizes the surface if the container size has changed since the last
// call. It returns the dimensions the surface has afterwards and whether a
// resize took place. When nothing changed no setter is called.
//
// A container reporting an empty area (e.g. a minimized window) leaves the
// surface as it is.
func (s *Synchronizer) Sync() (Dimensions, bool, error) {
	cw, ch := s.container.Size()
	bw, bh := s.surface.BackingSize()
	current := Dimensions{bw, bh}
	if ch == bh && cw == bw {
		return current, false, nil
	}
	target := Dimensions{cw, ch}
	if target.Empty() {
		util.Trace("container reports %s; keeping surface at %s", target, current)
		return current, false, nil
	}
	if err := s.resize(target); err != nil {
		return current, false, err
	}
	logger.Infof("surface resized from %s to %s", current, target)
	return target, true, nil
}

// Bootstrap sizes the surface to the container unconditionally. It is meant
// to run once before the first frame.
func (s *Synchronizer) Bootstrap() (Dimensions, error) {
	cw, ch := s.container.Size()
	target := Dimensions{cw, ch}
	if target.Empty() {
		return target, ErrEmptyContainer
	}
	if err := s.resize(target); err != nil {
		return target, err
	}
	logger.Debugf("surface initialized to %s", target)
	return target, nil
}

// resize applies d to the backing store, then the displayed size, then the
// viewport.
func (s *Synchronizer) resize(d Dimensions) error {
	if err := s.surface.SetBackingSize(d.Width, d.Height); err != nil {
		return err
	}
	if err := s.surface.SetDisplaySize(d.Width, d.Height); err != nil {
		return err
	}
	return s.viewport.SetViewport(0, 0, d.Width, d.Height)
}
