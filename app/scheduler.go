package app

import "time"

// FrameScheduler ticks at a fixed rate while running
// A stopped scheduler exposes a nil channel, so a select never wakes for it
type FrameScheduler struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewFrameScheduler creates a stopped scheduler for fps frames per second
func NewFrameScheduler(fps int) *FrameScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &FrameScheduler{interval: time.Second / time.Duration(fps)}
}

// Interval returns the tick period
func (f *FrameScheduler) Interval() time.Duration { return f.interval }

// Start begins ticking; no-op when running
func (f *FrameScheduler) Start() {
	if f.ticker != nil {
		return
	}
	f.ticker = time.NewTicker(f.interval)
}

// Stop halts ticking; no-op when stopped
func (f *FrameScheduler) Stop() {
	if f.ticker == nil {
		return
	}
	f.ticker.Stop()
	f.ticker = nil
}

// Running reports whether ticks are delivered
func (f *FrameScheduler) Running() bool { return f.ticker != nil }

// C returns the tick channel, nil when stopped
func (f *FrameScheduler) C() <-chan time.Time {
	if f.ticker == nil {
		return nil
	}
	return f.ticker.C
}
