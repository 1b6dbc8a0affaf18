package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
)

// Frame is one acquired surface texture and the encoder recording into it.
type Frame struct {
	ctx *Context

	Texture *wgpu.Texture
	View    *wgpu.TextureView
	Encoder *wgpu.CommandEncoder
}

// BeginFrame acquires the next surface texture and opens a command encoder.
func (c *Context) BeginFrame() (*Frame, error) {
	tex, err := c.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("acquire surface texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("surface view: %w", err)
	}
	enc, err := c.Device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		tex.Release()
		return nil, fmt.Errorf("command encoder: %w", err)
	}
	return &Frame{ctx: c, Texture: tex, View: view, Encoder: enc}, nil
}

// ColorAttachment clears to clear when it is set and loads the existing
// contents otherwise.
func ColorAttachment(view *wgpu.TextureView, clear *core.Color) wgpu.RenderPassColorAttachment {
	att := wgpu.RenderPassColorAttachment{
		View:    view,
		LoadOp:  wgpu.LoadOpLoad,
		StoreOp: wgpu.StoreOpStore,
	}
	if clear != nil {
		att.LoadOp = wgpu.LoadOpClear
		att.ClearValue = wgpu.Color{R: float64(clear.R), G: float64(clear.G), B: float64(clear.B), A: float64(clear.A)}
	}
	return att
}

// Pass begins a render pass on view. A nil depth target renders without
// depth; when present it is cleared to 1.
func (f *Frame) Pass(view *wgpu.TextureView, clear *core.Color, depth *DepthTarget) *wgpu.RenderPassEncoder {
	desc := &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{ColorAttachment(view, clear)},
	}
	if depth != nil {
		desc.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            depth.View,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1,
		}
	}
	return f.Encoder.BeginRenderPass(desc)
}

// SurfacePass is Pass on the frame's own surface view.
func (f *Frame) SurfacePass(clear core.Color, depth *DepthTarget) *wgpu.RenderPassEncoder {
	return f.Pass(f.View, &clear, depth)
}

type passEncoder interface {
	End() error
	Release()
}

// EndPass ends a render or compute pass and releases its encoder.
func EndPass(p passEncoder) error {
	defer p.Release()
	if err := p.End(); err != nil {
		return fmt.Errorf("end pass: %w", err)
	}
	return nil
}

// Submit finishes the encoder, submits it and presents the surface texture.
// The frame must not be used afterwards.
func (f *Frame) Submit() error {
	defer f.release()

	cmd, err := f.Encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish commands: %w", err)
	}
	defer cmd.Release()

	f.ctx.Queue.Submit(cmd)
	f.ctx.Surface.Present()
	return nil
}

func (f *Frame) release() {
	if f.Encoder != nil {
		f.Encoder.Release()
		f.Encoder = nil
	}
	if f.View != nil {
		f.View.Release()
		f.View = nil
	}
	if f.Texture != nil {
		f.Texture.Release()
		f.Texture = nil
	}
}
