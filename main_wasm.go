//go:build js && wasm && !ebiten

package main

import (
	"github.com/ushitora-anqou/aqdraw/config"
	"github.com/ushitora-anqou/aqdraw/frame"
	"github.com/ushitora-anqou/aqdraw/window"
)

func runBackend(conf *config.Config) (frame.Stats, error) {
	wind, err := window.NewWebWindow(window.WebConfig{
		CanvasID:  conf.CanvasID,
		Antialias: true,
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
