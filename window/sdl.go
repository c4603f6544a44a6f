//go:build sdl2

package window

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER | sdl.INIT_EVENTS)
}

func SDLQuit() {
	sdl.Quit()
}

type SDLConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
	// Used when the display does not report its own refresh rate.
	RefreshRate float64
}

// SDLWindow draws into a target texture that serves as the backing store.
// The renderer's logical size is the displayed size, and the renderer
// viewport is the GPU viewport.
type SDLWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	target   *sdl.Texture

	backingW, backingH int32
	pending            func() error
	closed             bool

	perfBase, perfFreq uint64
	refreshRate        float64
}

func NewSDLWindow(conf SDLConfig) (*SDLWindow, error) {
	flags := uint32(sdl.WINDOW_SHOWN)
	if conf.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	window, err := sdl.CreateWindow(
		conf.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(conf.Width),
		int32(conf.Height),
		flags,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		// Leave the window in place so the caller can still notify the user.
		logger.Errorf("could not create accelerated renderer: %s", err.Error())
		renderer = nil
	}

	refreshRate := conf.RefreshRate
	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil && mode.RefreshRate > 0 {
		refreshRate = float64(mode.RefreshRate)
	}

	return &SDLWindow{
		window:      window,
		renderer:    renderer,
		perfBase:    sdl.GetPerformanceCounter(),
		perfFreq:    sdl.GetPerformanceFrequency(),
		refreshRate: refreshRate,
	}, nil
}

func (wind *SDLWindow) getTicks() int64 {
	elapsed := sdl.GetPerformanceCounter() - wind.perfBase
	return int64(float64(elapsed) * 1000000.0 / float64(wind.perfFreq))
}

func (wind *SDLWindow) delay(us int64) {
	if us > 1000 { // Larger than 1ms
		sdl.Delay(uint32(us / 1000))
	}
}

func (wind *SDLWindow) RequestFrame(cb func() error) {
	wind.pending = cb
}

func (wind *SDLWindow) Now() float64 {
	return float64(wind.getTicks()) / 1000.0
}

func (wind *SDLWindow) Size() (int, int) {
	w, h := wind.window.GetSize()
	return int(w), int(h)
}

func (wind *SDLWindow) BackingSize() (int, int) {
	return int(wind.backingW), int(wind.backingH)
}

func (wind *SDLWindow) SetBackingSize(width, height int) error {
	texture, err := wind.renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_TARGET,
		int32(width),
		int32(height),
	)
	if err != nil {
		return fmt.Errorf("could not create %dx%d backing texture: %w", width, height, err)
	}
	if wind.target != nil {
		wind.target.Destroy()
	}
	wind.target = texture
	wind.backingW, wind.backingH = int32(width), int32(height)
	return nil
}

func (wind *SDLWindow) SetDisplaySize(width, height int) error {
	return wind.renderer.SetLogicalSize(int32(width), int32(height))
}

func (wind *SDLWindow) SetViewport(x, y, width, height int) error {
	return wind.renderer.SetViewport(&sdl.Rect{
		X: int32(x),
		Y: int32(y),
		W: int32(width),
		H: int32(height),
	})
}

// Clear paints the backing texture and presents it.
func (wind *SDLWindow) Clear(c color.RGBA) error {
	if err := wind.renderer.SetRenderTarget(wind.target); err != nil {
		return err
	}
	if err := wind.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	if err := wind.renderer.Clear(); err != nil {
		return err
	}
	if err := wind.renderer.SetRenderTarget(nil); err != nil {
		return err
	}
	if err := wind.renderer.Copy(wind.target, nil, nil); err != nil {
		return err
	}
	wind.renderer.Present()
	return nil
}

func (wind *SDLWindow) DrawingContext() bool {
	if wind.renderer == nil {
		return false
	}
	info, err := wind.renderer.GetInfo()
	if err != nil {
		return false
	}
	return info.Flags&sdl.RENDERER_ACCELERATED != 0
}

func (wind *SDLWindow) Notify(message string) {
	err := sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, wind.window.GetTitle(), message, wind.window)
	if err != nil {
		logger.Warning(message)
	}
}

func (wind *SDLWindow) handleEvents() bool {
	escape := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			escape = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				escape = true
			}
		}
	}
	return escape
}

func (wind *SDLWindow) Run() error {
	synchronizer := NewTimeSynchronizer(wind, wind.refreshRate)
	for !wind.closed {
		if wind.handleEvents() {
			return nil
		}
		cb := wind.pending
		if cb == nil {
			logger.Notice("no frame requested; stopping")
			return nil
		}
		wind.pending = nil
		if err := cb(); err != nil {
			return err
		}
		synchronizer.MaySleep()
	}
	return nil
}

func (wind *SDLWindow) Close() {
	if wind.closed {
		return
	}
	wind.closed = true
	wind.pending = nil
	if wind.target != nil {
		wind.target.Destroy()
	}
	if wind.renderer != nil {
		wind.renderer.Destroy()
	}
	wind.window.Destroy()
}
