// wgpu-compute moves particles in a compute shader and draws them straight
// from the same storage buffer.
package main

import (
	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

// workgroupSize matches @workgroup_size in particles_compute.wgsl.
const workgroupSize = 64

type particles struct {
	count      int
	storage    *wgpu.Buffer
	simLayout  *wgpu.BindGroupLayout
	simGroup   *wgpu.BindGroup
	simulate   *wgpu.ComputePipeline
	drawLayout *wgpu.BindGroupLayout
	drawGroup  *wgpu.BindGroup
	draw       *wgpu.RenderPipeline
	clear      core.Color
}

func (s *particles) Init(ctx *webgpu.Context, cfg core.Config) error {
	s.count = cfg.Particles
	seeded := scene.SeedParticles(s.count, scene.NewRand(cfg.Seed))

	var err error
	s.storage, err = ctx.Buffer("particles", wgpu.ToBytes(seeded),
		wgpu.BufferUsageStorage|wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst)
	if err != nil {
		return err
	}

	s.simLayout, err = ctx.BindGroupLayout("simulate", webgpu.StorageEntry(0, wgpu.ShaderStageCompute, false))
	if err != nil {
		return err
	}
	if s.simGroup, err = ctx.BindGroup("simulate", s.simLayout, webgpu.BufferBinding(0, s.storage)); err != nil {
		return err
	}
	s.drawLayout, err = ctx.BindGroupLayout("draw", webgpu.StorageEntry(0, wgpu.ShaderStageVertex, true))
	if err != nil {
		return err
	}
	if s.drawGroup, err = ctx.BindGroup("draw", s.drawLayout, webgpu.BufferBinding(0, s.storage)); err != nil {
		return err
	}

	compute, err := renderer.LoadShader(ctx, "particles_compute.wgsl")
	if err != nil {
		return err
	}
	defer compute.Release()
	if s.simulate, err = ctx.ComputePipeline("simulate", compute, s.simLayout); err != nil {
		return err
	}

	render, err := renderer.LoadShader(ctx, "particles_render.wgsl")
	if err != nil {
		return err
	}
	defer render.Release()
	s.draw, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:   "particles",
		Shader:  render,
		Layouts: []*wgpu.BindGroupLayout{s.drawLayout},
	})
	if err != nil {
		return err
	}

	s.clear = cfg.ClearOr(core.RGB(0.05, 0.05, 0.1))
	core.Logger().Info("particles seeded", "count", s.count, "workgroups", webgpu.Workgroups(s.count, workgroupSize))
	return nil
}

func (s *particles) Resize(*webgpu.Context, int, int) error { return nil }

// Frame records the simulation step and the draw into the same encoder, so
// the draw sees this frame's positions.
func (s *particles) Frame(_ *webgpu.Context, frame *webgpu.Frame, _ *core.Clock) error {
	cpass := frame.Encoder.BeginComputePass(nil)
	cpass.SetPipeline(s.simulate)
	cpass.SetBindGroup(0, s.simGroup, nil)
	cpass.DispatchWorkgroups(webgpu.Workgroups(s.count, workgroupSize), 1, 1)
	if err := webgpu.EndPass(cpass); err != nil {
		return err
	}

	pass := frame.SurfacePass(s.clear, nil)
	pass.SetPipeline(s.draw)
	pass.SetBindGroup(0, s.drawGroup, nil)
	pass.Draw(6, uint32(s.count), 0, 0)
	return webgpu.EndPass(pass)
}

func (s *particles) Release() {
	s.draw.Release()
	s.drawGroup.Release()
	s.drawLayout.Release()
	s.simulate.Release()
	s.simGroup.Release()
	s.simLayout.Release()
	s.storage.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-compute", &particles{})
}
