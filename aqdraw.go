package main

import (
	"github.com/ushitora-anqou/aqdraw/client"
	"github.com/ushitora-anqou/aqdraw/config"
	"github.com/ushitora-anqou/aqdraw/frame"
	"github.com/ushitora-anqou/aqdraw/surface"
	"github.com/ushitora-anqou/aqdraw/window"
)

const noContextMessage = "Failed to initialize the drawing context"

type AQDraw struct {
	wind         window.Window
	client       *client.Pulse
	synchronizer *surface.Synchronizer
	scheduler    *frame.Scheduler
}

// NewAQDraw sets up everything the loop needs on wind. The surface is sized
// to the container before this returns; the loop itself starts in Run.
func NewAQDraw(wind window.Window, conf *config.Config) (*AQDraw, error) {
	if !wind.DrawingContext() {
		logger.Error(noContextMessage)
		wind.Notify(noContextMessage)
		return nil, ErrNoDrawingContext
	}

	client := client.NewPulse(wind)
	synchronizer := surface.NewSynchronizer(wind, wind, wind)
	if _, err := synchronizer.Bootstrap(); err != nil {
		return nil, err
	}
	scheduler, err := frame.NewScheduler(wind, wind, synchronizer, client, conf.FPS)
	if err != nil {
		return nil, err
	}

	return &AQDraw{wind, client, synchronizer, scheduler}, nil
}

func (a *AQDraw) Run() error {
	if err := a.scheduler.Start(); err != nil {
		return err
	}
	return a.wind.Run()
}

func (a *AQDraw) Stats() frame.Stats {
	return a.scheduler.Stats()
}
