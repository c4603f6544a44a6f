package surface

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	containerW, containerH int
	backingW, backingH     int
	displayW, displayH     int
	viewport               [4]int
	calls                  []string
	viewportErr            error
}

func (f *fakeTarget) Size() (int, int) {
	return f.containerW, f.containerH
}

func (f *fakeTarget) BackingSize() (int, int) {
	return f.backingW, f.backingH
}

func (f *fakeTarget) SetBackingSize(width, height int) error {
	f.calls = append(f.calls, fmt.Sprintf("backing %dx%d", width, height))
	f.backingW, f.backingH = width, height
	return nil
}

func (f *fakeTarget) SetDisplaySize(width, height int) error {
	f.calls = append(f.calls, fmt.Sprintf("display %dx%d", width, height))
	f.displayW, f.displayH = width, height
	return nil
}

func (f *fakeTarget) SetViewport(x, y, width, height int) error {
	f.calls = append(f.calls, fmt.Sprintf("viewport %d,%d,%d,%d", x, y, width, height))
	if f.viewportErr != nil {
		return f.viewportErr
	}
	f.viewport = [4]int{x, y, width, height}
	return nil
}

func newFake(cw, ch, bw, bh int) *fakeTarget {
	return &fakeTarget{containerW: cw, containerH: ch, backingW: bw, backingH: bh}
}

func TestSyncResizesAllThreeInOrder(t *testing.T) {
	f := newFake(1024, 768, 800, 600)
	s := NewSynchronizer(f, f, f)

	dims, resized, err := s.Sync()
	require.NoError(t, err)
	assert.True(t, resized)
	assert.Equal(t, Dimensions{1024, 768}, dims)
	assert.Equal(t, []string{
		"backing 1024x768",
		"display 1024x768",
		"viewport 0,0,1024,768",
	}, f.calls)
	assert.Equal(t, 1024, f.displayW)
	assert.Equal(t, 768, f.displayH)
	assert.Equal(t, [4]int{0, 0, 1024, 768}, f.viewport)
}

func TestSyncIsNoOpWhenUnchanged(t *testing.T) {
	f := newFake(800, 600, 800, 600)
	s := NewSynchronizer(f, f, f)

	dims, resized, err := s.Sync()
	require.NoError(t, err)
	assert.False(t, resized)
	assert.Equal(t, Dimensions{800, 600}, dims)
	assert.Empty(t, f.calls)
}

func TestSyncTwiceResizesOnce(t *testing.T) {
	f := newFake(640, 480, 800, 600)
	s := NewSynchronizer(f, f, f)

	_, first, err := s.Sync()
	require.NoError(t, err)
	_, second, err := s.Sync()
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.Len(t, f.calls, 3)
}

func TestSyncTriggersOnSingleDimension(t *testing.T) {
	table := []struct {
		cw, ch int
	}{
		{800, 601},
		{801, 600},
	}

	for _, entry := range table {
		f := newFake(entry.cw, entry.ch, 800, 600)
		_, resized, err := NewSynchronizer(f, f, f).Sync()
		require.NoError(t, err)
		if !resized {
			t.Fatalf("sync: expected resize for container %dx%d", entry.cw, entry.ch)
		}
		assert.Equal(t, [4]int{0, 0, entry.cw, entry.ch}, f.viewport)
	}
}

func TestSyncKeepsSurfaceForEmptyContainer(t *testing.T) {
	f := newFake(0, 0, 800, 600)
	s := NewSynchronizer(f, f, f)

	dims, resized, err := s.Sync()
	require.NoError(t, err)
	assert.False(t, resized)
	assert.Equal(t, Dimensions{800, 600}, dims)
	assert.Empty(t, f.calls)
}

func TestSyncReturnsViewportError(t *testing.T) {
	f := newFake(320, 200, 800, 600)
	f.viewportErr = errors.New("no context")
	s := NewSynchronizer(f, f, f)

	_, resized, err := s.Sync()
	assert.ErrorIs(t, err, f.viewportErr)
	assert.False(t, resized)
}

func TestBootstrapIsUnconditional(t *testing.T) {
	f := newFake(800, 600, 800, 600)
	s := NewSynchronizer(f, f, f)

	dims, err := s.Bootstrap()
	require.NoError(t, err)
	assert.Equal(t, Dimensions{800, 600}, dims)
	assert.Equal(t, []string{
		"backing 800x600",
		"display 800x600",
		"viewport 0,0,800,600",
	}, f.calls)
}

func TestBootstrapRejectsEmptyContainer(t *testing.T) {
	f := newFake(0, 600, 10, 10)
	_, err := NewSynchronizer(f, f, f).Bootstrap()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	assert.Empty(t, f.calls)
}
