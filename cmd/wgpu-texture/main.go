// wgpu-texture samples a checkerboard texture, or an image given in the
// config, on a rotating quad.
package main

import (
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

var (
	checkLight = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	checkDark  = color.RGBA{R: 30, G: 80, B: 30, A: 255}
)

type texturedQuad struct {
	layout   *wgpu.BindGroupLayout
	group    *wgpu.BindGroup
	uniform  *wgpu.Buffer
	texture  *wgpu.Texture
	view     *wgpu.TextureView
	sampler  *wgpu.Sampler
	pipeline *wgpu.RenderPipeline
	quad     *webgpu.Mesh
	clear    core.Color
}

func checker() *scene.Texture {
	return scene.Checkerboard(256, 8, checkLight, checkDark)
}

func (s *texturedQuad) Init(ctx *webgpu.Context, cfg core.Config) error {
	img, err := scene.TextureOr(cfg.Texture, checker)
	if err != nil {
		return err
	}
	mesh := scene.TexturedQuad(0.7)
	meshLayout, err := webgpu.MeshLayout(mesh, wgpu.VertexStepModeVertex)
	if err != nil {
		return err
	}

	if s.texture, s.view, err = ctx.Texture(img); err != nil {
		return err
	}
	if s.sampler, err = ctx.LinearSampler("checker"); err != nil {
		return err
	}
	if s.uniform, err = ctx.UniformBuffer("frame", 4); err != nil {
		return err
	}

	s.layout, err = ctx.BindGroupLayout("textured",
		webgpu.UniformEntry(0, wgpu.ShaderStageVertex),
		webgpu.TextureEntry(1),
		webgpu.SamplerEntry(2),
	)
	if err != nil {
		return err
	}
	s.group, err = ctx.BindGroup("textured", s.layout,
		webgpu.BufferBinding(0, s.uniform),
		webgpu.TextureBinding(1, s.view),
		webgpu.SamplerBinding(2, s.sampler),
	)
	if err != nil {
		return err
	}

	shader, err := renderer.LoadShader(ctx, "texture.wgsl")
	if err != nil {
		return err
	}
	defer shader.Release()

	s.pipeline, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:   "textured quad",
		Shader:  shader,
		Buffers: []wgpu.VertexBufferLayout{meshLayout},
		Layouts: []*wgpu.BindGroupLayout{s.layout},
	})
	if err != nil {
		return err
	}
	if s.quad, err = ctx.UploadMesh(mesh); err != nil {
		return err
	}
	s.clear = cfg.ClearOr(core.RGB(0.1, 0.1, 0.2))
	return nil
}

func (s *texturedQuad) Resize(*webgpu.Context, int, int) error { return nil }

func (s *texturedQuad) Frame(ctx *webgpu.Context, frame *webgpu.Frame, clock *core.Clock) error {
	if err := ctx.WriteFloats(s.uniform, clock.Elapsed); err != nil {
		return err
	}

	pass := frame.SurfacePass(s.clear, nil)
	pass.SetPipeline(s.pipeline)
	pass.SetBindGroup(0, s.group, nil)
	s.quad.Draw(pass, 1)
	return webgpu.EndPass(pass)
}

func (s *texturedQuad) Release() {
	s.quad.Release()
	s.pipeline.Release()
	s.group.Release()
	s.layout.Release()
	s.uniform.Release()
	s.sampler.Release()
	s.view.Release()
	s.texture.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-texture", &texturedQuad{})
}
