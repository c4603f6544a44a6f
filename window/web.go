//go:build js && wasm

package window

import (
	"fmt"
	"image/color"
	"syscall/js"
)

type WebConfig struct {
	CanvasID  string
	Antialias bool
}

// WebWindow hosts the loop in a browser: requestAnimationFrame drives the
// callback, the browser window is the container, and the canvas with its
// WebGL context is the surface.
type WebWindow struct {
	global js.Value
	canvas js.Value
	gl     js.Value

	colorBufferBit int
	depthBufferBit int

	raf     js.Func
	pending func() error
	armed   bool
	done    chan error
}

func NewWebWindow(conf WebConfig) (*WebWindow, error) {
	global := js.Global()
	canvas := global.Get("document").Call("getElementById", conf.CanvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("canvas #%s not found", conf.CanvasID)
	}
	gl := canvas.Call("getContext", "webgl", map[string]interface{}{
		"antialias": conf.Antialias,
	})

	wind := &WebWindow{
		global: global,
		canvas: canvas,
		gl:     gl,
		done:   make(chan error, 1),
	}
	if wind.DrawingContext() {
		wind.colorBufferBit = gl.Get("COLOR_BUFFER_BIT").Int()
		wind.depthBufferBit = gl.Get("DEPTH_BUFFER_BIT").Int()
	}
	wind.raf = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		wind.armed = false
		cb := wind.pending
		if cb == nil {
			return nil
		}
		wind.pending = nil
		if err := cb(); err != nil {
			select {
			case wind.done <- err:
			default:
			}
		}
		return nil
	})
	return wind, nil
}

func (wind *WebWindow) RequestFrame(cb func() error) {
	wind.pending = cb
	if wind.armed {
		return
	}
	wind.armed = true
	wind.global.Call("requestAnimationFrame", wind.raf)
}

func (wind *WebWindow) Now() float64 {
	return wind.global.Get("performance").Call("now").Float()
}

func (wind *WebWindow) Size() (int, int) {
	return wind.global.Get("innerWidth").Int(), wind.global.Get("innerHeight").Int()
}

func (wind *WebWindow) BackingSize() (int, int) {
	return wind.canvas.Get("width").Int(), wind.canvas.Get("height").Int()
}

func (wind *WebWindow) SetBackingSize(width, height int) error {
	wind.canvas.Set("height", height)
	wind.canvas.Set("width", width)
	return nil
}

// SetDisplaySize sets the CSS layout size in pixel units.
func (wind *WebWindow) SetDisplaySize(width, height int) error {
	style := wind.canvas.Get("style")
	style.Set("height", fmt.Sprintf("%dpx", height))
	style.Set("width", fmt.Sprintf("%dpx", width))
	return nil
}

func (wind *WebWindow) SetViewport(x, y, width, height int) error {
	wind.gl.Call("viewport", x, y, width, height)
	return nil
}

func (wind *WebWindow) Clear(c color.RGBA) error {
	wind.gl.Call("clearColor",
		float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	wind.gl.Call("clear", wind.colorBufferBit|wind.depthBufferBit)
	return nil
}

func (wind *WebWindow) DrawingContext() bool {
	return wind.gl.Truthy()
}

func (wind *WebWindow) Notify(message string) {
	wind.global.Call("alert", message)
}

// Run blocks until a callback fails or the window is closed. The page keeps
// calling back for as long as it is open.
func (wind *WebWindow) Run() error {
	return <-wind.done
}

func (wind *WebWindow) Close() {
	wind.pending = nil
	select {
	case wind.done <- nil:
	default:
	}
	// A queued requestAnimationFrame still holds raf.
	if !wind.armed {
		wind.raf.Release()
	}
}
