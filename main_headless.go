//go:build !sdl2 && !ebiten && !js

package main

import (
	"image"
	"image/png"
	"os"

	"github.com/ushitora-anqou/aqdraw/config"
	"github.com/ushitora-anqou/aqdraw/frame"
	"github.com/ushitora-anqou/aqdraw/window"
)

func runBackend(conf *config.Config) (frame.Stats, error) {
	wind := window.NewHeadlessWindow(window.HeadlessConfig{
		Width:        conf.Width,
		Height:       conf.Height,
		RefreshRate:  conf.RefreshRate,
		MaxRefreshes: conf.MaxRefreshes,
	})
	defer wind.Close()

	aqdraw, err := NewAQDraw(wind, conf)
	if err != nil {
		return frame.Stats{}, err
	}
	err = aqdraw.Run()
	stats := aqdraw.Stats()
	if err != nil {
		return stats, err
	}

	if conf.Snapshot != "" {
		if err := saveSnapshot(conf.Snapshot, wind.Snapshot()); err != nil {
			return stats, err
		}
		logger.Noticef("wrote last frame to %s", conf.Snapshot)
	}
	return stats, nil
}

func saveSnapshot(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
