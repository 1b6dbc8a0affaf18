// gl-buffer draws an indexed quad that spins in the vertex shader.
package main

import (
	"gfx-samples/core"
	"gfx-samples/internal/opengl"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

type spinningQuad struct {
	program *opengl.Program
	quad    *scene.Mesh
	clear   core.Color
}

func (s *spinningQuad) Init(r *opengl.Renderer, cfg core.Config) error {
	p, err := renderer.LoadProgram(r, "rotate2d.vert", "color.frag")
	if err != nil {
		return err
	}
	s.program = p
	s.quad = scene.Quad()
	s.clear = cfg.ClearOr(core.RGB(0.1, 0.1, 0.2))
	return nil
}

func (s *spinningQuad) Frame(r *opengl.Renderer, clock *core.Clock, vp core.Viewport) {
	r.Clear(s.clear, false)
	s.program.Use()
	s.program.SetFloat("u_angle", clock.Elapsed)
	s.program.SetFloat("u_aspect", vp.Aspect())
	r.DrawMesh(s.quad)
}

func main() {
	renderer.MainGL("gl-buffer", &spinningQuad{})
}
