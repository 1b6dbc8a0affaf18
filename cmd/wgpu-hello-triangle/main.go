// wgpu-hello-triangle draws a triangle whose corners come from the vertex
// index, without any vertex buffer.
package main

import (
	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/renderer"
)

type helloTriangle struct {
	pipeline *wgpu.RenderPipeline
	clear    core.Color
}

func (s *helloTriangle) Init(ctx *webgpu.Context, cfg core.Config) error {
	shader, err := renderer.LoadShader(ctx, "hello_triangle.wgsl")
	if err != nil {
		return err
	}
	defer shader.Release()

	s.pipeline, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:  "hello triangle",
		Shader: shader,
	})
	if err != nil {
		return err
	}
	s.clear = cfg.ClearOr(core.RGB(0.1, 0.1, 0.2))
	return nil
}

func (s *helloTriangle) Resize(*webgpu.Context, int, int) error { return nil }

func (s *helloTriangle) Frame(_ *webgpu.Context, frame *webgpu.Frame, _ *core.Clock) error {
	pass := frame.SurfacePass(s.clear, nil)
	pass.SetPipeline(s.pipeline)
	pass.Draw(3, 1, 0, 0)
	return webgpu.EndPass(pass)
}

func (s *helloTriangle) Release() {
	s.pipeline.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-hello-triangle", &helloTriangle{})
}
