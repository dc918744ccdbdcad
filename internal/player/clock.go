package player

import "time"

// Clock tracks virtual elapsed playback time, decoupled from any real
// media transport. While running, the current offset is derived from a
// wall-clock anchor; while stopped it stays frozen. All operations are
// total and never fail.
type Clock struct {
	nowFn func() time.Time

	virtual       time.Duration
	running       bool
	anchorVirtual time.Duration
	anchorWall    time.Time
}

func NewClock() *Clock {
	return &Clock{nowFn: time.Now}
}

// Start begins advancing virtual time. No-op if already running.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.anchorVirtual = c.virtual
	c.anchorWall = c.nowFn()
}

// Pause freezes virtual time at its current value. No-op if stopped.
func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.virtual = c.anchorVirtual + c.nowFn().Sub(c.anchorWall)
	c.running = false
}

// SeekTo repositions virtual time without changing the running state.
// A running clock is re-anchored in the same call, so no later read
// can observe the new position against the old anchor.
func (c *Clock) SeekTo(d time.Duration) {
	c.virtual = d
	if c.running {
		c.anchorVirtual = d
		c.anchorWall = c.nowFn()
	}
}

// Now returns the current virtual time, computed live when running.
func (c *Clock) Now() time.Duration {
	if c.running {
		return c.anchorVirtual + c.nowFn().Sub(c.anchorWall)
	}
	return c.virtual
}

func (c *Clock) Running() bool {
	return c.running
}
