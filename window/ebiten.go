//go:build ebiten

package window

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ushitora-anqou/aqdraw/util"
)

type EbitenConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
}

func EbitenInitialize(conf EbitenConfig) error {
	ebiten.SetWindowSize(conf.Width, conf.Height)
	ebiten.SetWindowTitle(conf.Title)
	if conf.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetVsyncEnabled(true)
	return nil
}

// EbitenWindow runs the pending callback from ebiten's Draw, which ebiten
// calls once per display refresh. Layout reports the container size.
type EbitenWindow struct {
	outsideW, outsideH int
	displayW, displayH int
	backing            *ebiten.Image
	viewport           image.Rectangle

	pending func() error
	err     error
	closed  bool
	base    time.Time
}

func NewEbitenWindow(conf EbitenConfig) (*EbitenWindow, error) {
	return &EbitenWindow{
		outsideW: conf.Width,
		outsideH: conf.Height,
		base:     time.Now(),
	}, nil
}

func (wind *EbitenWindow) RequestFrame(cb func() error) {
	wind.pending = cb
}

func (wind *EbitenWindow) Now() float64 {
	return util.DurationToMs(time.Since(wind.base))
}

func (wind *EbitenWindow) Size() (int, int) {
	return wind.outsideW, wind.outsideH
}

func (wind *EbitenWindow) BackingSize() (int, int) {
	if wind.backing == nil {
		return 0, 0
	}
	b := wind.backing.Bounds()
	return b.Dx(), b.Dy()
}

func (wind *EbitenWindow) SetBackingSize(width, height int) error {
	if wind.backing != nil {
		wind.backing.Dispose()
	}
	wind.backing = ebiten.NewImage(width, height)
	return nil
}

func (wind *EbitenWindow) SetDisplaySize(width, height int) error {
	wind.displayW, wind.displayH = width, height
	return nil
}

func (wind *EbitenWindow) SetViewport(x, y, width, height int) error {
	wind.viewport = image.Rect(x, y, x+width, y+height)
	return nil
}

func (wind *EbitenWindow) Clear(c color.RGBA) error {
	r := wind.viewport.Intersect(wind.backing.Bounds())
	wind.backing.SubImage(r).(*ebiten.Image).Fill(c)
	return nil
}

// ebiten always hands out an accelerated context once RunGame is up.
func (wind *EbitenWindow) DrawingContext() bool {
	return true
}

func (wind *EbitenWindow) Notify(message string) {
	logger.Error(message)
}

func (wind *EbitenWindow) Run() error {
	return ebiten.RunGame(&ebitenGame{wind})
}

func (wind *EbitenWindow) Close() {
	wind.closed = true
	wind.pending = nil
}

type ebitenGame struct {
	wind *EbitenWindow
}

func (g *ebitenGame) Update() error {
	wind := g.wind
	if wind.err != nil {
		return wind.err
	}
	if wind.closed || wind.pending == nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	wind := g.wind
	cb := wind.pending
	if cb != nil && wind.err == nil {
		wind.pending = nil
		// Update reports the error on its next call.
		wind.err = cb()
	}
	if wind.backing != nil {
		screen.DrawImage(wind.backing, nil)
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	wind := g.wind
	wind.outsideW, wind.outsideH = outsideWidth, outsideHeight
	if wind.displayW > 0 && wind.displayH > 0 {
		return wind.displayW, wind.displayH
	}
	return outsideWidth, outsideHeight
}
