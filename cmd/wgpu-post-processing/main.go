// wgpu-post-processing renders a scene into an offscreen texture, then draws
// it to the window through a chromatic aberration and vignette pass.
package main

import (
	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/renderer"
)

const sceneTriangles = 5

var sceneClear = core.RGB(0.05, 0.03, 0.08)

type postProcess struct {
	frameLayout *wgpu.BindGroupLayout
	frame       *webgpu.UniformGroup
	scene       *wgpu.RenderPipeline
	offscreen   *webgpu.RenderTarget

	postLayout *wgpu.BindGroupLayout
	postGroup  *wgpu.BindGroup
	sampler    *wgpu.Sampler
	post       *wgpu.RenderPipeline
	clear      core.Color
}

func (s *postProcess) Init(ctx *webgpu.Context, cfg core.Config) error {
	var err error
	s.frameLayout, err = ctx.BindGroupLayout("frame", webgpu.UniformEntry(0, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment))
	if err != nil {
		return err
	}
	if s.frame, err = ctx.NewUniformGroup("frame", s.frameLayout, 4); err != nil {
		return err
	}

	w, h := ctx.Size()
	if s.offscreen, err = ctx.NewOffscreenTarget("scene color", w, h); err != nil {
		return err
	}
	if s.sampler, err = ctx.LinearSampler("scene color"); err != nil {
		return err
	}

	sceneShader, err := renderer.LoadShader(ctx, "post_scene.wgsl")
	if err != nil {
		return err
	}
	defer sceneShader.Release()
	s.scene, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:   "scene",
		Shader:  sceneShader,
		Layouts: []*wgpu.BindGroupLayout{s.frameLayout},
		Format:  s.offscreen.Format,
	})
	if err != nil {
		return err
	}

	s.postLayout, err = ctx.BindGroupLayout("post",
		webgpu.UniformEntry(0, wgpu.ShaderStageFragment),
		webgpu.TextureEntry(1),
		webgpu.SamplerEntry(2),
	)
	if err != nil {
		return err
	}
	if err := s.bindOffscreen(ctx); err != nil {
		return err
	}

	postShader, err := renderer.LoadShader(ctx, "post_effect.wgsl")
	if err != nil {
		return err
	}
	defer postShader.Release()
	s.post, err = ctx.RenderPipeline(webgpu.PipelineConfig{
		Label:   "post",
		Shader:  postShader,
		Layouts: []*wgpu.BindGroupLayout{s.postLayout},
	})
	if err != nil {
		return err
	}

	s.clear = cfg.ClearOr(core.ColorBlack)
	return nil
}

// bindOffscreen rebuilds the post bind group; it references the offscreen
// view, which changes whenever the target is recreated. A minimised window
// has no view yet, and the first non-empty Resize binds it.
func (s *postProcess) bindOffscreen(ctx *webgpu.Context) error {
	if s.postGroup != nil {
		s.postGroup.Release()
		s.postGroup = nil
	}
	if s.offscreen.View == nil {
		return nil
	}
	bg, err := ctx.BindGroup("post", s.postLayout,
		webgpu.BufferBinding(0, s.frame.Buffer),
		webgpu.TextureBinding(1, s.offscreen.View),
		webgpu.SamplerBinding(2, s.sampler),
	)
	if err != nil {
		return err
	}
	s.postGroup = bg
	return nil
}

func (s *postProcess) Resize(ctx *webgpu.Context, width, height int) error {
	if err := s.offscreen.Resize(width, height); err != nil {
		return err
	}
	return s.bindOffscreen(ctx)
}

func (s *postProcess) Frame(ctx *webgpu.Context, frame *webgpu.Frame, clock *core.Clock) error {
	if err := ctx.WriteFloats(s.frame.Buffer, clock.Elapsed); err != nil {
		return err
	}

	pass := frame.Pass(s.offscreen.View, &sceneClear, nil)
	pass.SetPipeline(s.scene)
	pass.SetBindGroup(0, s.frame.Group, nil)
	pass.Draw(3, sceneTriangles, 0, 0)
	if err := webgpu.EndPass(pass); err != nil {
		return err
	}

	pass = frame.SurfacePass(s.clear, nil)
	pass.SetPipeline(s.post)
	pass.SetBindGroup(0, s.postGroup, nil)
	pass.Draw(6, 1, 0, 0)
	return webgpu.EndPass(pass)
}

func (s *postProcess) Release() {
	s.post.Release()
	if s.postGroup != nil {
		s.postGroup.Release()
	}
	s.postLayout.Release()
	s.sampler.Release()
	s.scene.Release()
	s.offscreen.Release()
	s.frame.Release()
	s.frameLayout.Release()
}

func main() {
	renderer.MainWebGPU("wgpu-post-processing", &postProcess{})
}
