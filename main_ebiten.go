//go:build ebiten

package main

import (
	"github.com/ushitora-anqou/aqdraw/config"
	"github.com/ushitora-anqou/aqdraw/frame"
	"github.com/ushitora-anqou/aqdraw/window"
)

func runBackend(conf *config.Config) (frame.Stats, error) {
	ebitenConf := window.EbitenConfig{
		Title:     conf.Title,
		Width:     conf.Width,
		Height:    conf.Height,
		Resizable: conf.Resizable,
	}
	if err := window.EbitenInitialize(ebitenConf); err != nil {
		return frame.Stats{}, err
	}

	wind, err := window.NewEbitenWindow(ebitenConf)
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
