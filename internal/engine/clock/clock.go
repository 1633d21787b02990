// Package clock provides the world frame counter and the per-frame debug
// buffer. One Clock is created at startup and lives for the process; it is
// only reset by the overflow guard.
package clock

import "math"

// Clock counts frames and accumulates debug lines for the display sink.
type Clock struct {
	frames int64
	debug  []string
}

// New creates a clock at frame zero.
func New() *Clock {
	return &Clock{}
}

// Tick advances the frame counter. The counter resets before it could
// overflow the signed range, so Frame never goes negative.
func (c *Clock) Tick() {
	if c.frames == math.MaxInt64 {
		c.frames = 0
	}
	c.frames++
}

// Frame returns the current frame number.
func (c *Clock) Frame() int64 {
	return c.frames
}

// Debug appends a line to the debug buffer for this frame.
func (c *Clock) Debug(line string) {
	c.debug = append(c.debug, line)
}

// FlushDebug returns the accumulated debug lines and clears the buffer.
// The display sink calls it once per tick.
func (c *Clock) FlushDebug() []string {
	out := c.debug
	c.debug = nil
	return out
}
