package engine

import (
	"time"

	"github.com/lixenwraith/block-outrun/constants"
)

// FrameClock paces a frame loop to a target rate and measures frame times
// A frame that overruns its budget is followed immediately by the next one;
// lost time is never made up
type FrameClock struct {
	time  TimeProvider
	sleep func(time.Duration)

	last time.Time

	samples [constants.FPSSampleFrames]time.Duration
	count   int
	next    int
}

// NewFrameClock creates a frame clock; nil arguments select the system clock and time.Sleep
func NewFrameClock(tp TimeProvider, sleep func(time.Duration)) *FrameClock {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	return &FrameClock{
		time:  tp,
		sleep: sleep,
	}
}

// Tick blocks until the frame budget for fps has elapsed since the previous
// tick and returns the measured frame duration. The first call only starts
// the clock and returns 0
func (c *FrameClock) Tick(fps int) time.Duration {
	now := c.time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	if fps > 0 {
		budget := time.Second / time.Duration(fps)
		if elapsed := now.Sub(c.last); elapsed < budget {
			c.sleep(budget - elapsed)
			now = c.time.Now()
		}
	}

	frame := now.Sub(c.last)
	c.last = now

	c.samples[c.next] = frame
	c.next = (c.next + 1) % len(c.samples)
	if c.count < len(c.samples) {
		c.count++
	}
	return frame
}

// FPS returns the average frame rate over the recent frames, 0 before any frame completes
func (c *FrameClock) FPS() float64 {
	if c.count == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < c.count; i++ {
		total += c.samples[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(c.count) / total.Seconds()
}
