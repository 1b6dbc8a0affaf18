// gl-mvp spins a colour-faced cube through a model-view-projection matrix.
package main

import (
	"gfx-samples/core"
	"gfx-samples/internal/opengl"
	"gfx-samples/math"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

type mvpCube struct {
	program *opengl.Program
	cube    *scene.Mesh
	camera  *scene.Camera
	clear   core.Color
}

func (s *mvpCube) Init(r *opengl.Renderer, cfg core.Config) error {
	p, err := renderer.LoadProgram(r, "mvp_color.vert", "color.frag")
	if err != nil {
		return err
	}
	s.program = p
	s.cube = scene.ColoredCube()
	s.camera = scene.NewCamera(math.Vec3{X: 2, Y: 1.5, Z: 3}, scene.DepthNegOneToOne)
	s.clear = cfg.ClearOr(core.RGB(0.1, 0.1, 0.2))

	r.EnableDepth()
	r.EnableCull()
	return nil
}

func (s *mvpCube) Frame(r *opengl.Renderer, clock *core.Clock, vp core.Viewport) {
	t := clock.Elapsed
	model := math.Mat4RotationY(t).Mul(math.Mat4RotationX(0.4 * t))

	r.Clear(s.clear, true)
	s.program.Use()
	s.program.SetMat4("u_mvp", s.camera.ViewProjection(vp.Aspect()).Mul(model))
	r.DrawMesh(s.cube)
}

func main() {
	renderer.MainGL("gl-mvp", &mvpCube{})
}
