package core

import "time"

// FrameClock measures wall-clock time between frames and records whether the
// frame loop is armed. Platforms keep scheduling frames only while it runs.
type FrameClock struct {
	running bool
	last    time.Time
	starts  int
	stops   int
}

// Start arms the clock. The first Tick after Start reports the time since now.
// Starting a running clock is a no-op.
func (c *FrameClock) Start(now time.Time) {
	if c.running {
		return
	}
	c.running = true
	c.last = now
	c.starts++
}

// Stop halts the clock. Stopping a halted clock is a no-op.
func (c *FrameClock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.stops++
}

// Running reports whether frames should keep being scheduled.
func (c *FrameClock) Running() bool {
	return c.running
}

// Tick returns the elapsed time since the previous tick (or Start).
// ok is false when the clock is halted. Time going backwards yields zero.
func (c *FrameClock) Tick(now time.Time) (delta time.Duration, ok bool) {
	if !c.running {
		return 0, false
	}
	delta = now.Sub(c.last)
	if delta < 0 {
		delta = 0
	}
	c.last = now
	return delta, true
}

// Starts returns how many times the clock has been armed.
func (c *FrameClock) Starts() int {
	return c.starts
}

// Stops returns how many times the clock has been halted.
func (c *FrameClock) Stops() int {
	return c.stops
}
