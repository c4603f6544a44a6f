package frame

import (
	"math"

	"github.com/ushitora-anqou/aqdraw/util"
)

var logger = util.NewLogger("frame")

// NeverDrawn is the LastDrawTime of a loop that has not drawn yet. Any
// reading of the clock is due against it.
var NeverDrawn = math.Inf(-1)

type LoopState struct {
	Epoch            float64
	LastDrawTime     float64
	ThrottleInterval float64
}

type Stats struct {
	Ticks       uint64
	Frames      uint64
	Skipped     uint64
	Resizes     uint64
	LastElapsed float64
}

type Scheduler struct {
	host         Host
	clock        Clock
	synchronizer Synchronizer
	client       Client

	state   LoopState
	stats   Stats
	started bool
}

func NewScheduler(host Host, clock Clock, synchronizer Synchronizer, client Client, fps float64) (*Scheduler, error) {
	if !(fps > 0) || math.IsInf(fps, 1) {
		return nil, ErrInvalidFPS
	}
	return &Scheduler{
		host:         host,
		clock:        clock,
		synchronizer: synchronizer,
		client:       client,
		state: LoopState{
			LastDrawTime:     NeverDrawn,
			ThrottleInterval: util.FrameInterval(fps),
		},
	}, nil
}

// Start captures the epoch and registers the first tick with the host.
func (s *Scheduler) Start() error {
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	s.state.Epoch = s.clock.Now()
	logger.Debugf("loop started, throttle interval %.2f ms", s.state.ThrottleInterval)
	s.host.RequestFrame(s.Tick)
	return nil
}

// Tick is the host callback. It re-arms itself before anything else, so a
// skipped or failed frame never ends the loop on its own.
func (s *Scheduler) Tick() error {
	if !s.started {
		return ErrNotStarted
	}
	s.host.RequestFrame(s.Tick)
	s.stats.Ticks++

	now := s.clock.Now()
	if !s.due(now) {
		s.stats.Skipped++
		util.Trace("tick at %.2f skipped, last frame at %.2f", now, s.state.LastDrawTime)
		return nil
	}
	s.state.LastDrawTime = now
	s.stats.Frames++

	dims, resized, err := s.synchronizer.Sync()
	if err != nil {
		return err
	}
	if resized {
		s.stats.Resizes++
	}

	elapsed := s.elapsed(now)
	s.stats.LastElapsed = elapsed
	util.Trace("frame %d at %.2f ms, %s", s.stats.Frames, elapsed, dims)

	if err := s.client.Update(elapsed, dims.Width, dims.Height); err != nil {
		return err
	}
	return s.client.Render()
}

func (s *Scheduler) due(now float64) bool {
	return now >= s.state.LastDrawTime+s.state.ThrottleInterval
}

// elapsed never goes below zero, even for a clock that steps backwards
// between Start and the first frame.
func (s *Scheduler) elapsed(now float64) float64 {
	elapsed := now - s.state.Epoch
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *Scheduler) State() LoopState {
	return s.state
}

func (s *Scheduler) Stats() Stats {
	return s.stats
}
