package core

import "time"

// MaxFrameTime caps a single frame's delta so a stall does not teleport the camera.
const MaxFrameTime = 0.25

// FrameClock measures per-frame delta time for the render loop.
type FrameClock struct {
	Frame    uint64
	Elapsed  float64 // seconds since start, sum of capped deltas
	Delta    float64
	lastTime time.Time
	now      func() time.Time
}

// NewFrameClock creates a clock starting now
func NewFrameClock() *FrameClock {
	return newFrameClock(time.Now)
}

func newFrameClock(now func() time.Time) *FrameClock {
	return &FrameClock{now: now, lastTime: now()}
}

// Tick should be called once per frame. It returns the capped delta in seconds.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.lastTime).Seconds()
	c.lastTime = t

	if dt > MaxFrameTime {
		dt = MaxFrameTime
	}
	if dt < 0 {
		dt = 0
	}
	c.Delta = dt
	c.Elapsed += dt
	c.Frame++
	return dt
}
