// wgpu-uniform-buffer spins a depth-tested cube whose MVP matrix is written to
// a uniform buffer every frame.
package main

import (
	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/math"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

const mvpSize = 64

type uniformCube struct {
	layout   *wgpu.BindGroupLayout
	uniform  *webgpu.UniformGroup
	pipeline *wgpu.RenderPipeline
	cube     *webgpu.Mesh
	depth    *webgpu.DepthTarget
	camera   *scene.Camera
	clear    core.Color
}

func (s *uniformCube) Init(ctx *webgpu.Context, cfg core.Config) error {
	mesh := scene.ColoredCube()
	meshLayout, err := webgpu.MeshLayout(mesh, wgpu.VertexStepModeVertex)
	if err != nil {
		return err
	}

	s.layout, err = ctx.BindGroupLayout("transform", webgpu.UniformEntry(0, wgpu.ShaderStageVertex))
	if err != nil {
		return err
	}
	s.uniform, err = ctx.NewUniformGroup("transform", s.layout, mvpSize)
	if err != nil {
		return err
	}

	shader, err := renderer.LoadShader(ctx, "mvp_color.wgsl")
	if err != nil {
		return err
	}
	defer shader.Release()

	s.pipeline, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:    "uniform cube",
		Shader:   shader,
		Buffers:  []wgpu.VertexBufferLayout{meshLayout},
		Layouts:  []*wgpu.BindGroupLayout{s.layout},
		CullMode: wgpu.CullModeBack,
		Depth:    true,
	})
	if err != nil {
		return err
	}
	if s.cube, err = ctx.UploadMesh(mesh); err != nil {
		return err
	}
	w, h := ctx.Size()
	if s.depth, err = ctx.NewDepthTarget(w, h); err != nil {
		return err
	}

	s.camera = scene.NewCamera(math.Vec3{Y: 1.5, Z: 4}, scene.DepthZeroToOne)
	s.clear = cfg.ClearOr(core.RGB(0.1, 0.1, 0.2))
	return nil
}

func (s *uniformCube) Resize(_ *webgpu.Context, width, height int) error {
	return s.depth.Resize(width, height)
}

func (s *uniformCube) Frame(ctx *webgpu.Context, frame *webgpu.Frame, clock *core.Clock) error {
	t := clock.Fixed
	model := math.Mat4RotationY(t).Mul(math.Mat4RotationX(0.5 * t))
	mvp := s.camera.ViewProjection(ctx.Viewport().Aspect()).Mul(model)
	if err := ctx.WriteFloats(s.uniform.Buffer, mvp.Floats()...); err != nil {
		return err
	}

	pass := frame.SurfacePass(s.clear, s.depth)
	pass.SetPipeline(s.pipeline)
	pass.SetBindGroup(0, s.uniform.Group, nil)
	s.cube.Draw(pass, 1)
	return webgpu.EndPass(pass)
}

func (s *uniformCube) Release() {
	s.depth.Release()
	s.cube.Release()
	s.pipeline.Release()
	s.uniform.Release()
	s.layout.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-uniform-buffer", &uniformCube{})
}
