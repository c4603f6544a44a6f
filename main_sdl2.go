//go:build sdl2 && !ebiten && !js

package main

import (
	"runtime"

	"github.com/ushitora-anqou/aqdraw/config"
	"github.com/ushitora-anqou/aqdraw/frame"
	"github.com/ushitora-anqou/aqdraw/window"
)

func init() {
	// SDL wants its calls on the main thread.
	runtime.LockOSThread()
}

func runBackend(conf *config.Config) (frame.Stats, error) {
	if err := window.SDLInitialize(); err != nil {
		return frame.Stats{}, err
	}
	defer window.SDLQuit()

	wind, err := window.NewSDLWindow(window.SDLConfig{
		Title:       conf.Title,
		Width:       conf.Width,
		Height:      conf.Height,
		Resizable:   conf.Resizable,
		RefreshRate: conf.RefreshRate,
	})
	if err != nil {
		return frame.Stats{}, err
	}
	defer wind.Close()

	aqdraw, err := NewAQDraw(wind, conf)
	if err != nil {
		return frame.Stats{}, err
	}
	err = aqdraw.Run()
	return aqdraw.Stats(), err
}
