// wgpu-instancing draws hundreds of spinning triangles with one instanced
// draw call; position, size, phase and colour come from a per-instance
// buffer.
package main

import (
	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

type instanced struct {
	count     uint32
	triangle  *webgpu.Mesh
	instances *wgpu.Buffer
	layout    *wgpu.BindGroupLayout
	uniform   *webgpu.UniformGroup
	pipeline  *wgpu.RenderPipeline
	clear     core.Color
}

func (s *instanced) Init(ctx *webgpu.Context, cfg core.Config) error {
	mesh := scene.InstanceTriangle()
	meshLayout, err := webgpu.MeshLayout(mesh, wgpu.VertexStepModeVertex)
	if err != nil {
		return err
	}

	if s.triangle, err = ctx.UploadMesh(mesh); err != nil {
		return err
	}
	seeded := scene.SeedInstances(cfg.Instances, scene.NewRand(cfg.Seed))
	s.instances, err = ctx.Buffer("instances", wgpu.ToBytes(seeded), wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	s.count = uint32(len(seeded))

	s.layout, err = ctx.BindGroupLayout("frame", webgpu.UniformEntry(0, wgpu.ShaderStageVertex))
	if err != nil {
		return err
	}
	if s.uniform, err = ctx.NewUniformGroup("frame", s.layout, 4); err != nil {
		return err
	}

	shader, err := renderer.LoadShader(ctx, "instancing.wgsl")
	if err != nil {
		return err
	}
	defer shader.Release()

	s.pipeline, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:   "instanced triangles",
		Shader:  shader,
		Buffers: []wgpu.VertexBufferLayout{meshLayout, webgpu.InstanceLayout()},
		Layouts: []*wgpu.BindGroupLayout{s.layout},
		Blend:   webgpu.Blend(scene.BlendAlpha),
	})
	if err != nil {
		return err
	}
	s.clear = cfg.ClearOr(core.RGB(0.05, 0.05, 0.1))
	return nil
}

func (s *instanced) Resize(*webgpu.Context, int, int) error { return nil }

func (s *instanced) Frame(ctx *webgpu.Context, frame *webgpu.Frame, clock *core.Clock) error {
	if err := ctx.WriteFloats(s.uniform.Buffer, clock.Elapsed); err != nil {
		return err
	}

	pass := frame.SurfacePass(s.clear, nil)
	pass.SetPipeline(s.pipeline)
	pass.SetBindGroup(0, s.uniform.Group, nil)
	pass.SetVertexBuffer(1, s.instances, 0, wgpu.WholeSize)
	s.triangle.Draw(pass, s.count)
	return webgpu.EndPass(pass)
}

func (s *instanced) Release() {
	s.pipeline.Release()
	s.uniform.Release()
	s.layout.Release()
	s.instances.Release()
	s.triangle.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-instancing", &instanced{})
}
