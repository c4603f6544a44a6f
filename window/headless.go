package window

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/ushitora-anqou/aqdraw/constant"
	"github.com/ushitora-anqou/aqdraw/util"
)

var logger = util.NewLogger("window")

type HeadlessConfig struct {
	Width, Height int
	RefreshRate   float64
	MaxRefreshes  int

	// Time source and sleep used for pacing. Nil means the real ones.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// HeadlessWindow is an off-screen host. Its backing store is an image.RGBA
// and its refreshes are paced by a TimeSynchronizer.
type HeadlessWindow struct {
	containerW, containerH int
	displayW, displayH     int
	backing                *image.RGBA
	viewport               image.Rectangle

	pending      func() error
	refreshRate  float64
	maxRefreshes int
	refreshes    int
	closed       bool

	base  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewHeadlessWindow(conf HeadlessConfig) *HeadlessWindow {
	if !(conf.RefreshRate > 0) {
		conf.RefreshRate = constant.REFRESH_RATE
	}
	if conf.Now == nil {
		conf.Now = time.Now
	}
	if conf.Sleep == nil {
		conf.Sleep = time.Sleep
	}
	return &HeadlessWindow{
		containerW:   conf.Width,
		containerH:   conf.Height,
		backing:      image.NewRGBA(image.Rect(0, 0, 0, 0)),
		refreshRate:  conf.RefreshRate,
		maxRefreshes: conf.MaxRefreshes,
		base:         conf.Now(),
		now:          conf.Now,
		sleep:        conf.Sleep,
	}
}

func (w *HeadlessWindow) getTicks() int64 {
	return w.now().Sub(w.base).Microseconds()
}

func (w *HeadlessWindow) delay(us int64) {
	w.sleep(time.Duration(us) * time.Microsecond)
}

func (w *HeadlessWindow) RequestFrame(cb func() error) {
	w.pending = cb
}

func (w *HeadlessWindow) Now() float64 {
	return util.DurationToMs(w.now().Sub(w.base))
}

func (w *HeadlessWindow) Size() (int, int) {
	return w.containerW, w.containerH
}

// Resize changes the container size, as a user dragging the window edge
// would. The surface follows on the next executed frame.
func (w *HeadlessWindow) Resize(width, height int) {
	w.containerW, w.containerH = width, height
}

func (w *HeadlessWindow) BackingSize() (int, int) {
	b := w.backing.Bounds()
	return b.Dx(), b.Dy()
}

// SetBackingSize reallocates the backing store. Its previous content is
// dropped, the way a canvas loses its pixels when resized.
func (w *HeadlessWindow) SetBackingSize(width, height int) error {
	w.backing = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

func (w *HeadlessWindow) SetDisplaySize(width, height int) error {
	w.displayW, w.displayH = width, height
	return nil
}

func (w *HeadlessWindow) DisplaySize() (int, int) {
	return w.displayW, w.displayH
}

func (w *HeadlessWindow) SetViewport(x, y, width, height int) error {
	w.viewport = image.Rect(x, y, x+width, y+height)
	return nil
}

func (w *HeadlessWindow) Viewport() image.Rectangle {
	return w.viewport
}

func (w *HeadlessWindow) Clear(c color.RGBA) error {
	r := w.viewport.Intersect(w.backing.Bounds())
	draw.Draw(w.backing, r, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// Snapshot returns the backing store.
func (w *HeadlessWindow) Snapshot() *image.RGBA {
	return w.backing
}

func (w *HeadlessWindow) DrawingContext() bool {
	return true
}

func (w *HeadlessWindow) Notify(message string) {
	logger.Warning(message)
}

func (w *HeadlessWindow) Refreshes() int {
	return w.refreshes
}

func (w *HeadlessWindow) Run() error {
	synchronizer := NewTimeSynchronizer(w, w.refreshRate)
	for !w.closed {
		if w.maxRefreshes > 0 && w.refreshes >= w.maxRefreshes {
			logger.Debugf("stopping after %d refreshes", w.refreshes)
			return nil
		}
		cb := w.pending
		if cb == nil {
			logger.Notice("no frame requested; stopping")
			return nil
		}
		w.pending = nil
		w.refreshes++
		if err := cb(); err != nil {
			return err
		}
		synchronizer.MaySleep()
	}
	return nil
}

func (w *HeadlessWindow) Close() {
	w.closed = true
	w.pending = nil
}
