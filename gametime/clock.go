package gametime

import "time"

// TimeSource supplies the current time. Tests substitute a manual source
// so that frame deltas are deterministic.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock.
type SystemTime struct{}

// Now implements TimeSource.
func (SystemTime) Now() time.Time { return time.Now() }

// Clock turns successive readings of a TimeSource into GameTime values.
type Clock struct {
	source   TimeSource
	start    time.Time
	previous time.Time
	current  time.Time
}

// NewClock creates a clock started at the source's current time.
// A nil source uses the system clock.
func NewClock(source TimeSource) *Clock {
	if source == nil {
		source = SystemTime{}
	}
	c := &Clock{source: source}
	c.Reset()
	return c
}

// Reset restarts the clock so the next update reports time relative to now.
func (c *Clock) Reset() {
	now := c.source.Now()
	c.start = now
	c.previous = now
	c.current = now
}

// StartTime returns the time recorded by the last Reset.
func (c *Clock) StartTime() time.Time {
	return c.start
}

// CurrentTime returns the time read by the last update.
func (c *Clock) CurrentTime() time.Time {
	return c.current
}

// UpdateGameTime samples the source and writes the total time since Reset
// and the delta since the previous update into gt.
func (c *Clock) UpdateGameTime(gt *GameTime) {
	c.current = c.source.Now()

	gt.SetTotalGameTime(c.current.Sub(c.start).Seconds())
	gt.SetElapsedGameTime(c.current.Sub(c.previous).Seconds())

	c.previous = c.current
}
