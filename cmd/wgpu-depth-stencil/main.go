// wgpu-depth-stencil draws two interpenetrating cubes; the depth buffer
// resolves which one is in front per pixel.
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

var (
	blue   = core.RGB(0.3, 0.4, 1.0)
	orange = core.RGB(1.0, 0.5, 0.1)
)

// cube is one mesh with its own transform uniform.
type cube struct {
	mesh    *webgpu.Mesh
	uniform *webgpu.UniformGroup
	model   func(t float32) math.Mat4
}

type depthCubes struct {
	layout   *wgpu.BindGroupLayout
	pipeline *wgpu.RenderPipeline
	depth    *webgpu.DepthTarget
	cubes    []*cube
	camera   *scene.Camera
	clear    core.Color
}

func blueModel(t float32) math.Mat4 {
	return math.Mat4Translation(math.Vec3{Z: -0.5}).
		Mul(math.Mat4RotationY(0.5 * t)).
		Mul(math.Mat4Scale(math.Vec3{X: 1.4, Y: 1.4, Z: 1.4}))
}

func orangeModel(t float32) math.Mat4 {
	return math.Mat4Translation(math.Vec3{Z: 0.5}).Mul(math.Mat4RotationY(-t))
}

func (s *depthCubes) Init(ctx *webgpu.Context, cfg core.Config) error {
	meshLayout, err := webgpu.MeshLayout(scene.SolidCube(blue), wgpu.VertexStepModeVertex)
	if err != nil {
		return err
	}
	s.layout, err = ctx.BindGroupLayout("transform", webgpu.UniformEntry(0, wgpu.ShaderStageVertex))
	if err != nil {
		return err
	}

	shader, err := renderer.LoadShader(ctx, "mvp_color.wgsl")
	if err != nil {
		return err
	}
	defer shader.Release()

	s.pipeline, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:    "depth cubes",
		Shader:   shader,
		Buffers:  []wgpu.VertexBufferLayout{meshLayout},
		Layouts:  []*wgpu.BindGroupLayout{s.layout},
		CullMode: wgpu.CullModeBack,
		Depth:    true,
	})
	if err != nil {
		return err
	}

	for _, c := range []struct {
		color core.Color
		model func(float32) math.Mat4
	}{
		{blue, blueModel},
		{orange, orangeModel},
	} {
		mesh, err := ctx.UploadMesh(scene.SolidCube(c.color))
		if err != nil {
			return err
		}
		u, err := ctx.NewUniformGroup("cube transform", s.layout, mvpSize)
		if err != nil {
			mesh.Release()
			return err
		}
		s.cubes = append(s.cubes, &cube{mesh: mesh, uniform: u, model: c.model})
	}

	w, h := ctx.Size()
	if s.depth, err = ctx.NewDepthTarget(w, h); err != nil {
		return err
	}
	s.camera = scene.NewCamera(math.Vec3{Y: 2, Z: 5}, scene.DepthZeroToOne)
	s.clear = cfg.ClearOr(core.RGB(0.08, 0.08, 0.15))
	return nil
}

func (s *depthCubes) Resize(_ *webgpu.Context, width, height int) error {
	return s.depth.Resize(width, height)
}

func (s *depthCubes) Frame(ctx *webgpu.Context, frame *webgpu.Frame, clock *core.Clock) error {
	t := clock.Fixed
	viewProj := s.camera.ViewProjection(ctx.Viewport().Aspect())
	for _, c := range s.cubes {
		if err := ctx.WriteFloats(c.uniform.Buffer, viewProj.Mul(c.model(t)).Floats()...); err != nil {
			return err
		}
	}

	pass := frame.SurfacePass(s.clear, s.depth)
	pass.SetPipeline(s.pipeline)
	for _, c := range s.cubes {
		pass.SetBindGroup(0, c.uniform.Group, nil)
		c.mesh.Draw(pass, 1)
	}
	return webgpu.EndPass(pass)
}

func (s *depthCubes) Release() {
	s.depth.Release()
	for _, c := range s.cubes {
		c.uniform.Release()
		c.mesh.Release()
	}
	s.pipeline.Release()
	s.layout.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-depth-stencil", &depthCubes{})
}
