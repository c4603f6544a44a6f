// Package client holds the rendering client driven by the frame loop.
package client

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ushitora-anqou/aqdraw/constant"
)

// Painter is the drawing context a client renders against.
type Painter interface {
	Clear(c color.RGBA) error
}

// State is what Pulse knows after its last Update. The control rectangle is
// a square centred in the canvas, in canvas pixels with the origin at the
// bottom left.
type State struct {
	Time          float64
	CanvasWidth   float64
	CanvasHeight  float64
	ControlTop    float64
	ControlBottom float64
	ControlLeft   float64
	ControlRight  float64
}

// Pulse clears the whole surface with a colour that cycles with time.
type Pulse struct {
	painter Painter
	state   State
}

func NewPulse(painter Painter) *Pulse {
	return &Pulse{painter: painter}
}

func (p *Pulse) Update(elapsedMs float64, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("client: invalid canvas size %dx%d", width, height)
	}
	canvasW, canvasH := float64(width), float64(height)
	halfDisplay := constant.DISPLAY_RATIO * math.Min(canvasW, canvasH) / 2
	halfW, halfH := canvasW/2, canvasH/2

	p.state = State{
		Time:          elapsedMs,
		CanvasWidth:   canvasW,
		CanvasHeight:  canvasH,
		ControlTop:    halfH + halfDisplay,
		ControlBottom: halfH - halfDisplay,
		ControlLeft:   halfW - halfDisplay,
		ControlRight:  halfW + halfDisplay,
	}
	return nil
}

func (p *Pulse) Render() error {
	return p.painter.Clear(p.Color())
}

func (p *Pulse) State() State {
	return p.state
}

// Color is the clear colour for the current time. Each channel is a sine
// wave over PULSE_PERIOD, a third of a period apart.
func (p *Pulse) Color() color.RGBA {
	phase := 2 * math.Pi * math.Mod(p.state.Time, constant.PULSE_PERIOD) / constant.PULSE_PERIOD
	return color.RGBA{
		R: channel(phase),
		G: channel(phase + 2*math.Pi/3),
		B: channel(phase + 4*math.Pi/3),
		A: 0xff,
	}
}

func channel(phase float64) uint8 {
	return uint8(math.Round(127.5 * (1 + math.Sin(phase))))
}
