package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// UniformEntry is a uniform buffer binding visible to the given stages.
func UniformEntry(binding uint32, visibility wgpu.ShaderStage) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Buffer: wgpu.BufferBindingLayout{
			Type: wgpu.BufferBindingTypeUniform,
		},
	}
}

// StorageEntry is a storage buffer binding. Vertex stages only accept
// read-only storage.
func StorageEntry(binding uint32, visibility wgpu.ShaderStage, readOnly bool) wgpu.BindGroupLayoutEntry {
	t := wgpu.BufferBindingTypeStorage
	if readOnly {
		t = wgpu.BufferBindingTypeReadOnlyStorage
	}
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Buffer: wgpu.BufferBindingLayout{
			Type: t,
		},
	}
}

// TextureEntry is a filterable float 2D texture visible to fragment shaders.
func TextureEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageFragment,
		Texture: wgpu.TextureBindingLayout{
			SampleType:    wgpu.TextureSampleTypeFloat,
			ViewDimension: wgpu.TextureViewDimension2D,
		},
	}
}

// SamplerEntry is a filtering sampler visible to fragment shaders.
func SamplerEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageFragment,
		Sampler: wgpu.SamplerBindingLayout{
			Type: wgpu.SamplerBindingTypeFiltering,
		},
	}
}

// BindGroupLayout creates a layout from entries.
func (c *Context) BindGroupLayout(label string, entries ...wgpu.BindGroupLayoutEntry) (*wgpu.BindGroupLayout, error) {
	l, err := c.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   label,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("bind group layout %s: %w", label, err)
	}
	return l, nil
}

// BufferBinding binds the whole of buf.
func BufferBinding(binding uint32, buf *wgpu.Buffer) wgpu.BindGroupEntry {
	return wgpu.BindGroupEntry{
		Binding: binding,
		Buffer:  buf,
		Offset:  0,
		Size:    wgpu.WholeSize,
	}
}

func TextureBinding(binding uint32, view *wgpu.TextureView) wgpu.BindGroupEntry {
	return wgpu.BindGroupEntry{Binding: binding, TextureView: view}
}

func SamplerBinding(binding uint32, s *wgpu.Sampler) wgpu.BindGroupEntry {
	return wgpu.BindGroupEntry{Binding: binding, Sampler: s}
}

// BindGroup creates a bind group against layout.
func (c *Context) BindGroup(label string, layout *wgpu.BindGroupLayout, entries ...wgpu.BindGroupEntry) (*wgpu.BindGroup, error) {
	bg, err := c.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   label,
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("bind group %s: %w", label, err)
	}
	return bg, nil
}

// UniformGroup is a uniform buffer exposed alone at binding 0 of a bind
// group.
type UniformGroup struct {
	Buffer *wgpu.Buffer
	Group  *wgpu.BindGroup
}

// NewUniformGroup creates a uniform buffer of size bytes and binds it against
// layout, which must hold a single uniform entry at binding 0.
func (c *Context) NewUniformGroup(label string, layout *wgpu.BindGroupLayout, size uint64) (*UniformGroup, error) {
	buf, err := c.UniformBuffer(label, size)
	if err != nil {
		return nil, err
	}
	bg, err := c.BindGroup(label, layout, BufferBinding(0, buf))
	if err != nil {
		buf.Release()
		return nil, err
	}
	return &UniformGroup{Buffer: buf, Group: bg}, nil
}

func (u *UniformGroup) Release() {
	if u.Group != nil {
		u.Group.Release()
		u.Group = nil
	}
	if u.Buffer != nil {
		u.Buffer.Release()
		u.Buffer = nil
	}
}
