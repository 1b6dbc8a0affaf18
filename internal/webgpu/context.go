// Package webgpu wraps the device, surface and resource plumbing shared by
// the WebGPU samples.
package webgpu

import (
	"fmt"
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/core"
)

// Options selects the adapter and presentation mode.
type Options struct {
	Label                string
	PowerPreference      wgpu.PowerPreference
	ForceFallbackAdapter bool
	VSync                bool
}

// DefaultOptions asks for the high-performance adapter with vsync on.
func DefaultOptions(label string) Options {
	return Options{
		Label:           label,
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
		VSync:           true,
	}
}

// Context is the device plus the configured surface it presents to.
type Context struct {
	Instance *wgpu.Instance
	Surface  *wgpu.Surface
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue

	// Format is the surface's preferred colour format.
	Format wgpu.TextureFormat

	config *wgpu.SurfaceConfiguration
	lost   atomic.Bool
}

// NewContext requests an adapter compatible with the surface, opens a device
// and configures the surface at width x height.
func NewContext(surfaceDesc *wgpu.SurfaceDescriptor, width, height int, opts Options) (*Context, error) {
	log := core.Logger()

	c := &Context{Instance: wgpu.CreateInstance(nil)}
	c.Surface = c.Instance.CreateSurface(surfaceDesc)

	adapter, err := c.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    c.Surface,
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})
	if err != nil || adapter == nil {
		c.Release()
		return nil, fmt.Errorf("%w: %v", core.ErrNoAdapter, err)
	}
	c.Adapter = adapter

	info := adapter.GetInfo()
	log.Info("adapter selected", "name", info.Name, "backend", info.BackendType, "type", info.AdapterType)

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: opts.Label + " device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
		DeviceLostCallback: func(reason wgpu.DeviceLostReason, message string) {
			c.lost.Store(true)
			core.Logger().Error("device lost", "reason", reason, "message", message)
		},
	})
	if err != nil {
		c.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	c.Device = device
	c.Queue = device.GetQueue()

	caps := c.Surface.GetCapabilities(c.Adapter)
	if len(caps.Formats) == 0 {
		c.Release()
		return nil, fmt.Errorf("surface reports no supported formats")
	}
	c.Format = caps.Formats[0]

	presentMode := wgpu.PresentModeFifo
	if !opts.VSync {
		presentMode = wgpu.PresentModeImmediate
	}
	alphaMode := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alphaMode = caps.AlphaModes[0]
	}
	c.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      c.Format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: presentMode,
		AlphaMode:   alphaMode,
	}
	if width > 0 && height > 0 {
		c.Surface.Configure(c.Adapter, c.Device, c.config)
	}
	log.Info("surface configured", "format", c.Format, "width", width, "height", height)

	return c, nil
}

// Resize reconfigures the surface. Zero sizes, seen while minimised, are
// ignored and the previous configuration kept.
func (c *Context) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if c.config.Width == uint32(width) && c.config.Height == uint32(height) {
		return false
	}
	c.config.Width = uint32(width)
	c.config.Height = uint32(height)
	c.Surface.Configure(c.Adapter, c.Device, c.config)
	core.Logger().Debug("surface resized", "width", width, "height", height)
	return true
}

// Reconfigure applies the current configuration again, recovering an
// outdated or lost surface.
func (c *Context) Reconfigure() {
	if c.config.Width == 0 || c.config.Height == 0 {
		return
	}
	c.Surface.Configure(c.Adapter, c.Device, c.config)
}

func (c *Context) Size() (int, int) {
	return int(c.config.Width), int(c.config.Height)
}

func (c *Context) Viewport() core.Viewport {
	return core.Viewport{Width: int(c.config.Width), Height: int(c.config.Height)}
}

// Lost reports whether the device-lost callback has fired.
func (c *Context) Lost() bool {
	return c.lost.Load()
}

// Release frees the device, adapter, surface and instance in reverse order
// of creation. It is safe on a partially built context.
func (c *Context) Release() {
	if c.Queue != nil {
		c.Queue.Release()
		c.Queue = nil
	}
	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}
	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}
	if c.Surface != nil {
		c.Surface.Release()
		c.Surface = nil
	}
	if c.Instance != nil {
		c.Instance.Release()
		c.Instance = nil
	}
}
