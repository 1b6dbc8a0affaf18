// gl-lighting shades a sphere with Blinn-Phong under an orbiting point light.
package main

import (
	"github.com/chewxy/math32"

	"gfx-samples/core"
	"gfx-samples/internal/opengl"
	"gfx-samples/math"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

var objectColor = math.Vec3{X: 0.9, Y: 0.6, Z: 0.3}

type litSphere struct {
	program *opengl.Program
	sphere  *scene.Mesh
	camera  *scene.Camera
	clear   core.Color
}

func (s *litSphere) Init(r *opengl.Renderer, cfg core.Config) error {
	p, err := renderer.LoadProgram(r, "lit.vert", "blinn_phong.frag")
	if err != nil {
		return err
	}
	s.program = p
	s.sphere = scene.Sphere(1, 32, 32)
	s.camera = scene.NewCamera(math.Vec3{Z: 3}, scene.DepthNegOneToOne)
	s.clear = cfg.ClearOr(core.RGB(0.05, 0.05, 0.1))

	s.program.Use()
	s.program.SetMat4("u_view", s.camera.ViewMatrix())
	s.program.SetVec3("u_cameraPos", s.camera.Position)
	s.program.SetVec3("u_objectColor", objectColor)
	r.EnableDepth()
	r.EnableCull()
	return nil
}

// lightPosition circles the sphere at radius 3, two units up.
func lightPosition(t float32) math.Vec3 {
	return math.Vec3{X: math32.Cos(t) * 3, Y: 2, Z: math32.Sin(t) * 3}
}

func (s *litSphere) Frame(r *opengl.Renderer, clock *core.Clock, vp core.Viewport) {
	t := clock.Elapsed
	model := math.Mat4RotationY(0.3 * t)

	r.Clear(s.clear, true)
	s.program.Use()
	s.program.SetMat4("u_model", model)
	s.program.SetMat4("u_proj", s.camera.ProjectionMatrix(vp.Aspect()))
	s.program.SetMat3("u_normalMatrix", math.NormalMatrix(model))
	s.program.SetVec3("u_lightPos", lightPosition(t))
	r.DrawMesh(s.sphere)
}

func main() {
	renderer.MainGL("gl-lighting", &litSphere{})
}
