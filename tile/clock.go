package tile

import "time"

// Clock drives animation preview for a view. When disabled the elapsed time
// is pinned to zero so every tile shows its first frame. Elapsed time is
// derived from a start instant rather than accumulated per tick, so playback
// is deterministic and seekable.
type Clock struct {
	enabled bool
	start   time.Time
	now     func() time.Time
}

// NewClock returns a disabled preview clock.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Enabled reports whether preview animation is running.
func (c *Clock) Enabled() bool {
	return c.enabled
}

// SetEnabled starts or stops the preview. Enabling restarts playback from
// elapsed zero.
func (c *Clock) SetEnabled(on bool) {
	if on == c.enabled {
		return
	}
	c.enabled = on
	if on {
		c.start = c.now()
	}
}

// Elapsed returns the preview time to feed CurrentFrame. Zero while disabled.
func (c *Clock) Elapsed() time.Duration {
	if !c.enabled {
		return 0
	}
	return c.now().Sub(c.start)
}

// Seek rewinds or fast-forwards playback so Elapsed reports d now.
func (c *Clock) Seek(d time.Duration) {
	c.start = c.now().Add(-d)
}
