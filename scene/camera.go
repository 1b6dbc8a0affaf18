package scene

import (
	"github.com/chewxy/math32"

	"gfx-samples/math"
)

// DepthRange is the clip-space depth convention a projection targets.
type DepthRange int

const (
	// DepthNegOneToOne maps near/far to -1/1, as OpenGL expects.
	DepthNegOneToOne DepthRange = iota
	// DepthZeroToOne maps near/far to 0/1, as WebGPU expects.
	DepthZeroToOne
)

// Camera looks from Position at Target through a perspective lens. The
// aspect ratio is passed per frame so the projection follows the viewport.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
	FOV      float32
	Near     float32
	Far      float32
	Depth    DepthRange

	// Cached view matrix
	view  math.Mat4
	dirty bool
}

// NewCamera returns a camera at position looking at the origin with a 45°
// field of view and clip planes at 0.1 and 100.
func NewCamera(position math.Vec3, depth DepthRange) *Camera {
	return &Camera{
		Position: position,
		Target:   math.Vec3Zero,
		Up:       math.Vec3Up,
		FOV:      math32.Pi / 4,
		Near:     0.1,
		Far:      100,
		Depth:    depth,
		dirty:    true,
	}
}

func (c *Camera) SetPosition(pos math.Vec3) {
	c.Position = pos
	c.dirty = true
}

func (c *Camera) LookAt(target math.Vec3) {
	c.Target = target
	c.dirty = true
}

func (c *Camera) ViewMatrix() math.Mat4 {
	if c.dirty {
		c.view = math.Mat4LookAt(c.Position, c.Target, c.Up)
		c.dirty = false
	}
	return c.view
}

func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	if c.Depth == DepthZeroToOne {
		return math.Mat4PerspectiveZO(c.FOV, aspect, c.Near, c.Far)
	}
	return math.Mat4Perspective(c.FOV, aspect, c.Near, c.Far)
}

func (c *Camera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}
