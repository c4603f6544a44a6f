package window

// ticker is the time source a TimeSynchronizer paces against. Both values
// are in microseconds.
type ticker interface {
	getTicks() int64
	delay(us int64)
}

// TimeSynchronizer paces a refresh loop at a fixed rate for hosts that have
// no vsync to block on.
type TimeSynchronizer struct {
	prevTicks, usPerFrame int64
	wind                  ticker
}

func NewTimeSynchronizer(wind ticker, targetFPS float64) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks:  wind.getTicks(),
		usPerFrame: int64(1000000.0 / targetFPS),
		wind:       wind,
	}
}

// MaySleep waits out the rest of the current refresh period. A loop that has
// fallen more than a whole period behind starts counting again from now
// rather than refreshing back to back to catch up.
func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.wind.getTicks()
	if cur < ts.prevTicks {
		ts.prevTicks = cur
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	if diff < -ts.usPerFrame {
		ts.prevTicks = cur
		return
	}
	if diff > 0 {
		ts.wind.delay(diff)
	}
	ts.prevTicks += ts.usPerFrame
}
