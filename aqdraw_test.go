package main

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ushitora-anqou/aqdraw/client"
	"github.com/ushitora-anqou/aqdraw/config"
	"github.com/ushitora-anqou/aqdraw/surface"
	"github.com/ushitora-anqou/aqdraw/window"
)

// newTestWindow returns a headless window refreshing at 50Hz on a clock that
// only advances while the window sleeps between refreshes.
func newTestWindow(width, height, refreshes int) *window.HeadlessWindow {
	current := time.Unix(0, 0)
	return window.NewHeadlessWindow(window.HeadlessConfig{
		Width:        width,
		Height:       height,
		RefreshRate:  50,
		MaxRefreshes: refreshes,
		Now:          func() time.Time { return current },
		Sleep:        func(d time.Duration) { current = current.Add(d) },
	})
}

func TestRunDrawsThrottledFrames(t *testing.T) {
	wind := newTestWindow(800, 600, 10)
	aqdraw, err := NewAQDraw(wind, config.Default())
	require.NoError(t, err)

	require.NoError(t, aqdraw.Run())

	// Refreshes land every 20ms; with a 33.3ms cap every other one draws.
	stats := aqdraw.Stats()
	assert.Equal(t, uint64(10), stats.Ticks)
	assert.Equal(t, uint64(5), stats.Frames)
	assert.Equal(t, uint64(5), stats.Skipped)
	assert.Equal(t, uint64(0), stats.Resizes)
	assert.Equal(t, 160.0, stats.LastElapsed)

	expected := client.NewPulse(nil)
	require.NoError(t, expected.Update(160, 800, 600))
	snapshot := wind.Snapshot()
	assert.Equal(t, image.Rect(0, 0, 800, 600), snapshot.Bounds())
	assert.Equal(t, expected.Color(), snapshot.RGBAAt(0, 0))
	assert.Equal(t, expected.Color(), snapshot.RGBAAt(799, 599))
}

func TestNewAQDrawSizesSurfaceBeforeLoop(t *testing.T) {
	wind := newTestWindow(640, 480, 1)
	_, err := NewAQDraw(wind, config.Default())
	require.NoError(t, err)

	bw, bh := wind.BackingSize()
	dw, dh := wind.DisplaySize()
	assert.Equal(t, []int{640, 480}, []int{bw, bh})
	assert.Equal(t, []int{640, 480}, []int{dw, dh})
	assert.Equal(t, image.Rect(0, 0, 640, 480), wind.Viewport())
	assert.Equal(t, 0, wind.Refreshes())
}

func TestRunFollowsContainerResize(t *testing.T) {
	wind := newTestWindow(800, 600, 3)
	aqdraw, err := NewAQDraw(wind, config.Default())
	require.NoError(t, err)

	wind.Resize(1024, 768)
	require.NoError(t, aqdraw.Run())

	assert.Equal(t, uint64(1), aqdraw.Stats().Resizes)
	assert.Equal(t, image.Rect(0, 0, 1024, 768), wind.Snapshot().Bounds())
	assert.Equal(t, image.Rect(0, 0, 1024, 768), wind.Viewport())
	dw, dh := wind.DisplaySize()
	assert.Equal(t, []int{1024, 768}, []int{dw, dh})
}

type contextlessWindow struct {
	*window.HeadlessWindow
	notified []string
	requests int
}

func (w *contextlessWindow) DrawingContext() bool {
	return false
}

func (w *contextlessWindow) Notify(message string) {
	w.notified = append(w.notified, message)
}

func (w *contextlessWindow) RequestFrame(cb func() error) {
	w.requests++
	w.HeadlessWindow.RequestFrame(cb)
}

func TestNewAQDrawWithoutDrawingContext(t *testing.T) {
	wind := &contextlessWindow{HeadlessWindow: newTestWindow(800, 600, 10)}

	aqdraw, err := NewAQDraw(wind, config.Default())
	assert.ErrorIs(t, err, ErrNoDrawingContext)
	assert.Nil(t, aqdraw)
	assert.Equal(t, []string{noContextMessage}, wind.notified)
	assert.Equal(t, 0, wind.requests)

	bw, bh := wind.BackingSize()
	assert.Equal(t, 0, bw)
	assert.Equal(t, 0, bh)
}

func TestNewAQDrawRejectsEmptyContainer(t *testing.T) {
	_, err := NewAQDraw(newTestWindow(0, 600, 1), config.Default())
	assert.ErrorIs(t, err, surface.ErrEmptyContainer)
}

func TestNewAQDrawRejectsBadFPS(t *testing.T) {
	conf := config.Default()
	conf.FPS = 0
	_, err := NewAQDraw(newTestWindow(800, 600, 1), conf)
	assert.Error(t, err)
}
