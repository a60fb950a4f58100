package hal

import "time"

// frameClock measures the time between successive frames.
type frameClock struct {
	now  func() time.Time
	last time.Time
}

func newFrameClock(now func() time.Time) *frameClock {
	if now == nil {
		now = time.Now
	}
	return &frameClock{now: now}
}

// step returns the seconds elapsed since the previous step; the first step
// returns 0. A clock that goes backwards yields 0, never a negative delta.
func (c *frameClock) step() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d.Seconds()
}
