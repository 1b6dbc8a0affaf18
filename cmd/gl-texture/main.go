// gl-texture maps a mipmapped checkerboard, or an image given in the config,
// onto a spinning cube.
package main

import (
	"image/color"

	"gfx-samples/core"
	"gfx-samples/internal/opengl"
	"gfx-samples/math"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

var (
	checkLight = color.RGBA{R: 240, G: 220, B: 200, A: 255}
	checkDark  = color.RGBA{R: 30, G: 100, B: 180, A: 255}
)

type texturedCube struct {
	program *opengl.Program
	texture *opengl.Texture
	cube    *scene.Mesh
	camera  *scene.Camera
	clear   core.Color
}

func checker() *scene.Texture {
	return scene.Checkerboard(256, 8, checkLight, checkDark)
}

func (s *texturedCube) Init(r *opengl.Renderer, cfg core.Config) error {
	p, err := renderer.LoadProgram(r, "textured.vert", "textured.frag")
	if err != nil {
		return err
	}
	img, err := scene.TextureOr(cfg.Texture, checker)
	if err != nil {
		return err
	}
	tex, err := r.Texture(img)
	if err != nil {
		return err
	}

	s.program = p
	s.texture = tex
	s.cube = scene.TexturedCube()
	s.camera = scene.NewCamera(math.Vec3{X: 2, Y: 1.5, Z: 3}, scene.DepthNegOneToOne)
	s.clear = cfg.ClearOr(core.RGB(0.1, 0.1, 0.2))

	s.program.Use()
	s.program.SetInt("u_texture", 0)
	r.EnableDepth()
	r.EnableCull()
	return nil
}

func (s *texturedCube) Frame(r *opengl.Renderer, clock *core.Clock, vp core.Viewport) {
	t := clock.Elapsed
	model := math.Mat4RotationY(0.7 * t).Mul(math.Mat4RotationX(0.3 * t))

	r.Clear(s.clear, true)
	s.program.Use()
	s.program.SetMat4("u_mvp", s.camera.ViewProjection(vp.Aspect()).Mul(model))
	s.texture.Bind(0)
	r.DrawMesh(s.cube)
}

func main() {
	renderer.MainGL("gl-texture", &texturedCube{})
}
