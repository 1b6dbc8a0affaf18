// gl-hello-triangle draws one vertex-coloured triangle with OpenGL.
package main

import (
	"gfx-samples/core"
	"gfx-samples/internal/opengl"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

type helloTriangle struct {
	program *opengl.Program
	mesh    *scene.Mesh
	clear   core.Color
}

func (s *helloTriangle) Init(r *opengl.Renderer, cfg core.Config) error {
	p, err := renderer.LoadProgram(r, "triangle.vert", "color.frag")
	if err != nil {
		return err
	}
	s.program = p
	s.mesh = scene.Triangle()
	s.clear = cfg.ClearOr(core.RGB(0.1, 0.1, 0.2))
	return nil
}

func (s *helloTriangle) Frame(r *opengl.Renderer, _ *core.Clock, _ core.Viewport) {
	r.Clear(s.clear, false)
	s.program.Use()
	r.DrawMesh(s.mesh)
}

func main() {
	renderer.MainGL("gl-hello-triangle", &helloTriangle{})
}
