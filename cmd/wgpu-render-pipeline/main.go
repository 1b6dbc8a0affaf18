// wgpu-render-pipeline builds two pipelines from one shader that differ only
// in blend state, and draws the same orbiting circles with each: alpha
// blending on the left, additive on the right.
package main

import (
	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/renderer"
	"gfx-samples/scene"
)

const (
	// circleVertices is 32 fan triangles per circle, see circles.wgsl.
	circleVertices = 32 * 3
	circlesPerPass = 3
)

type blendModes struct {
	layout    *wgpu.BindGroupLayout
	uniform   *webgpu.UniformGroup
	pipelines map[scene.BlendMode]*wgpu.RenderPipeline
	clear     core.Color
}

func (s *blendModes) Init(ctx *webgpu.Context, cfg core.Config) error {
	var err error
	s.layout, err = ctx.BindGroupLayout("frame", webgpu.UniformEntry(0, wgpu.ShaderStageVertex))
	if err != nil {
		return err
	}
	if s.uniform, err = ctx.NewUniformGroup("frame", s.layout, 4); err != nil {
		return err
	}

	shader, err := renderer.LoadShader(ctx, "circles.wgsl")
	if err != nil {
		return err
	}
	defer shader.Release()

	s.pipelines = make(map[scene.BlendMode]*wgpu.RenderPipeline, 2)
	for _, mode := range []scene.BlendMode{scene.BlendAlpha, scene.BlendAdditive} {
		p, err := ctx.RenderPipeline(webgpu.PipelineConfig{
			Label:   "circles " + mode.String(),
			Shader:  shader,
			Layouts: []*wgpu.BindGroupLayout{s.layout},
			Blend:   webgpu.Blend(mode),
		})
		if err != nil {
			return err
		}
		s.pipelines[mode] = p
	}
	s.clear = cfg.ClearOr(core.RGB(0.05, 0.05, 0.1))
	return nil
}

func (s *blendModes) Resize(*webgpu.Context, int, int) error { return nil }

// Frame records three passes into one encoder: a clear, then each blend mode
// loading the previous result and adding its three circles.
func (s *blendModes) Frame(ctx *webgpu.Context, frame *webgpu.Frame, clock *core.Clock) error {
	if err := ctx.WriteFloats(s.uniform.Buffer, clock.Elapsed); err != nil {
		return err
	}

	if err := webgpu.EndPass(frame.SurfacePass(s.clear, nil)); err != nil {
		return err
	}
	for i, mode := range []scene.BlendMode{scene.BlendAlpha, scene.BlendAdditive} {
		pass := frame.Pass(frame.View, nil, nil)
		pass.SetPipeline(s.pipelines[mode])
		pass.SetBindGroup(0, s.uniform.Group, nil)
		pass.Draw(circleVertices, circlesPerPass, 0, uint32(i*circlesPerPass))
		if err := webgpu.EndPass(pass); err != nil {
			return err
		}
	}
	return nil
}

func (s *blendModes) Release() {
	for _, p := range s.pipelines {
		p.Release()
	}
	s.uniform.Release()
	s.layout.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-render-pipeline", &blendModes{})
}
