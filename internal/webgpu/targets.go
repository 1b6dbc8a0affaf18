package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// DepthFormat is the depth buffer format every sample uses.
const DepthFormat = wgpu.TextureFormatDepth24Plus

// RenderTarget is a texture the samples render into, sized to the surface and
// recreated on resize.
type RenderTarget struct {
	Label   string
	Format  wgpu.TextureFormat
	Usage   wgpu.TextureUsage
	Width   int
	Height  int
	Texture *wgpu.Texture
	View    *wgpu.TextureView

	device *wgpu.Device
}

// DepthTarget is a depth-only render target.
type DepthTarget = RenderTarget

// NewDepthTarget creates a depth24plus attachment of the given size.
func (c *Context) NewDepthTarget(width, height int) (*DepthTarget, error) {
	return c.newTarget("depth", DepthFormat, wgpu.TextureUsageRenderAttachment, width, height)
}

// NewOffscreenTarget creates a colour target in the surface format that can
// be rendered to and then sampled.
func (c *Context) NewOffscreenTarget(label string, width, height int) (*RenderTarget, error) {
	return c.newTarget(label, c.Format, wgpu.TextureUsageRenderAttachment|wgpu.TextureUsageTextureBinding, width, height)
}

func (c *Context) newTarget(label string, format wgpu.TextureFormat, usage wgpu.TextureUsage, width, height int) (*RenderTarget, error) {
	t := &RenderTarget{Label: label, Format: format, Usage: usage, device: c.Device}
	if err := t.Resize(width, height); err != nil {
		return nil, err
	}
	return t, nil
}

// Resize recreates the texture when the size changed. Zero sizes are
// ignored.
func (t *RenderTarget) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if t.Texture != nil && t.Width == width && t.Height == height {
		return nil
	}
	t.Release()

	tex, err := t.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: t.Label,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        t.Format,
		Usage:         t.Usage,
	})
	if err != nil {
		return fmt.Errorf("create %s texture: %w", t.Label, err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return fmt.Errorf("create %s view: %w", t.Label, err)
	}

	t.Texture = tex
	t.View = view
	t.Width = width
	t.Height = height
	return nil
}

func (t *RenderTarget) Release() {
	if t.View != nil {
		t.View.Release()
		t.View = nil
	}
	if t.Texture != nil {
		t.Texture.Release()
		t.Texture = nil
	}
}
