package engine

import "time"

// maxLagTicks bounds how much unprocessed time the clock carries, so a long
// stall does not turn into a burst of catch-up frames.
const maxLagTicks = 5

// Clock throttles a raw timing signal down to a fixed tick rate.
//
// Each call to Step reports the current time. Leftover time accumulates
// between steps; once a full tick interval is available the clock runs
// update with the wall-clock time since the previous update, then render.
type Clock struct {
	interval time.Duration
	update   func(elapsed time.Duration) error
	render   func() error

	running    bool
	primed     bool
	prev       time.Time
	lastUpdate time.Time
	lag        time.Duration
}

// NewClock creates a stopped clock running tickRate updates per second.
func NewClock(tickRate int, update func(time.Duration) error, render func() error) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{
		interval: time.Second / time.Duration(tickRate),
		update:   update,
		render:   render,
	}
}

// Interval returns the target time between updates.
func (c *Clock) Interval() time.Duration { return c.interval }

// Start arms the clock. The first Step only records the starting time.
func (c *Clock) Start() {
	c.running = true
	c.primed = false
	c.lag = 0
}

// Stop disarms the clock; later steps do nothing.
func (c *Clock) Stop() { c.running = false }

// Running reports whether the clock is armed.
func (c *Clock) Running() bool { return c.running }

// Step feeds the current time into the clock and reports whether a frame
// ran. An error from update or render stops the clock.
func (c *Clock) Step(now time.Time) (bool, error) {
	if !c.running {
		return false, nil
	}
	if !c.primed {
		c.primed = true
		c.prev = now
		c.lastUpdate = now
	}

	c.lag += now.Sub(c.prev)
	c.prev = now
	if limit := maxLagTicks * c.interval; c.lag > limit {
		c.lag = limit
	}
	if c.lag < c.interval {
		return false, nil
	}
	c.lag -= c.interval

	elapsed := now.Sub(c.lastUpdate)
	c.lastUpdate = now

	if err := c.update(elapsed); err != nil {
		c.running = false
		return true, err
	}
	if err := c.render(); err != nil {
		c.running = false
		return true, err
	}
	return true, nil
}
