// wgpu-vertex-buffer feeds an interleaved position + colour buffer to the
// vertex stage.
package main

import (
	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

type vertexBuffer struct {
	pipeline *wgpu.RenderPipeline
	triangle *webgpu.Mesh
	clear    core.Color
}

func (s *vertexBuffer) Init(ctx *webgpu.Context, cfg core.Config) error {
	mesh := scene.Triangle2D()
	layout, err := webgpu.MeshLayout(mesh, wgpu.VertexStepModeVertex)
	if err != nil {
		return err
	}

	shader, err := renderer.LoadShader(ctx, "vertex_buffer.wgsl")
	if err != nil {
		return err
	}
	defer shader.Release()

	s.pipeline, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:   "vertex buffer",
		Shader:  shader,
		Buffers: []wgpu.VertexBufferLayout{layout},
	})
	if err != nil {
		return err
	}
	s.triangle, err = ctx.UploadMesh(mesh)
	if err != nil {
		s.pipeline.Release()
		return err
	}
	s.clear = cfg.ClearOr(core.RGB(0.1, 0.1, 0.2))
	return nil
}

func (s *vertexBuffer) Resize(*webgpu.Context, int, int) error { return nil }

func (s *vertexBuffer) Frame(_ *webgpu.Context, frame *webgpu.Frame, _ *core.Clock) error {
	pass := frame.SurfacePass(s.clear, nil)
	pass.SetPipeline(s.pipeline)
	s.triangle.Draw(pass, 1)
	return webgpu.EndPass(pass)
}

func (s *vertexBuffer) Release() {
	s.triangle.Release()
	s.pipeline.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-vertex-buffer", &vertexBuffer{})
}
