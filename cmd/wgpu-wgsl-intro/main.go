// wgpu-wgsl-intro fills the window with animated colour waves computed in a
// fragment shader.
package main

import (
	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/renderer"
)

// frameUniformSize holds time at offset 0 and the resolution at offset 8.
const frameUniformSize = 16

type waves struct {
	layout   *wgpu.BindGroupLayout
	uniform  *webgpu.UniformGroup
	pipeline *wgpu.RenderPipeline
	clear    core.Color
}

func (s *waves) Init(ctx *webgpu.Context, cfg core.Config) error {
	var err error
	s.layout, err = ctx.BindGroupLayout("frame", webgpu.UniformEntry(0, wgpu.ShaderStageFragment))
	if err != nil {
		return err
	}
	s.uniform, err = ctx.NewUniformGroup("frame", s.layout, frameUniformSize)
	if err != nil {
		return err
	}

	shader, err := renderer.LoadShader(ctx, "wgsl_intro.wgsl")
	if err != nil {
		return err
	}
	defer shader.Release()

	s.pipeline, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:   "waves",
		Shader:  shader,
		Layouts: []*wgpu.BindGroupLayout{s.layout},
	})
	if err != nil {
		return err
	}
	s.clear = cfg.ClearOr(core.ColorBlack)
	return nil
}

func (s *waves) Resize(*webgpu.Context, int, int) error { return nil }

func (s *waves) Frame(ctx *webgpu.Context, frame *webgpu.Frame, clock *core.Clock) error {
	w, h := ctx.Size()
	if err := ctx.WriteFloats(s.uniform.Buffer, clock.Elapsed, 0, float32(w), float32(h)); err != nil {
		return err
	}

	pass := frame.SurfacePass(s.clear, nil)
	pass.SetPipeline(s.pipeline)
	pass.SetBindGroup(0, s.uniform.Group, nil)
	pass.Draw(6, 1, 0, 0)
	return webgpu.EndPass(pass)
}

func (s *waves) Release() {
	s.pipeline.Release()
	s.uniform.Release()
	s.layout.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-wgsl-intro", &waves{})
}
