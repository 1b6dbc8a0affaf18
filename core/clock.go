package core

import "github.com/go-gl/glfw/v3.3/glfw"

// Clock drives per-frame animation. Elapsed follows wall time; Fixed advances
// by Step every tick regardless of the real frame rate.
type Clock struct {
	Elapsed float32
	Delta   float32
	Fixed   float32
	Step    float32
	Frames  uint64

	now       func() float64
	start     float64
	last      float64
	fpsStart  float64
	fpsFrames int
	fps       float64
}

// NewClock uses glfw's timer, which needs an initialised glfw.
func NewClock(step float32) *Clock {
	return NewClockFunc(step, glfw.GetTime)
}

func NewClockFunc(step float32, now func() float64) *Clock {
	t := now()
	return &Clock{
		Step:     step,
		now:      now,
		start:    t,
		last:     t,
		fpsStart: t,
	}
}

// Tick advances the clock by one frame. It reports true once per second, when
// a fresh FPS value is available.
func (c *Clock) Tick() bool {
	t := c.now()
	c.Delta = float32(t - c.last)
	c.Elapsed = float32(t - c.start)
	c.Fixed += c.Step
	c.last = t
	c.Frames++

	c.fpsFrames++
	if t-c.fpsStart >= 1.0 {
		c.fps = float64(c.fpsFrames) / (t - c.fpsStart)
		c.fpsFrames = 0
		c.fpsStart = t
		return true
	}
	return false
}

func (c *Clock) FPS() float64 {
	return c.fps
}
