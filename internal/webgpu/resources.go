package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/scene"
)

// UniformAlign is the size uniform buffers are rounded up to.
const UniformAlign = 16

// AlignUp rounds n up to a multiple of align.
func AlignUp(n, align uint64) uint64 {
	if align == 0 {
		return n
	}
	return (n + align - 1) / align * align
}

// Buffer creates a buffer filled with contents. Contents are padded to a
// multiple of four bytes, as mapped-at-creation buffers require.
func (c *Context) Buffer(label string, contents []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	if pad := AlignUp(uint64(len(contents)), 4) - uint64(len(contents)); pad > 0 {
		contents = append(contents[:len(contents):len(contents)], make([]byte, pad)...)
	}
	buf, err := c.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    usage,
	})
	if err != nil {
		return nil, fmt.Errorf("buffer %s: %w", label, err)
	}
	return buf, nil
}

// VertexBuffer uploads float vertex data.
func (c *Context) VertexBuffer(label string, data []float32) (*wgpu.Buffer, error) {
	return c.Buffer(label, wgpu.ToBytes(data), wgpu.BufferUsageVertex|wgpu.BufferUsageCopyDst)
}

// IndexBuffer uploads 16-bit indices.
func (c *Context) IndexBuffer(label string, indices []uint16) (*wgpu.Buffer, error) {
	return c.Buffer(label, wgpu.ToBytes(indices), wgpu.BufferUsageIndex|wgpu.BufferUsageCopyDst)
}

// Mesh is a scene mesh uploaded to vertex and, when indexed, index buffers.
type Mesh struct {
	Vertices    *wgpu.Buffer
	Indices     *wgpu.Buffer
	VertexCount uint32
	IndexCount  uint32
}

// UploadMesh copies mesh's vertices and indices into new buffers.
func (c *Context) UploadMesh(mesh *scene.Mesh) (*Mesh, error) {
	vertices, err := c.VertexBuffer(mesh.Name+" vertices", mesh.Vertices)
	if err != nil {
		return nil, err
	}
	m := &Mesh{
		Vertices:    vertices,
		VertexCount: uint32(mesh.VertexCount()),
		IndexCount:  uint32(mesh.IndexCount()),
	}
	if mesh.Indexed() {
		m.Indices, err = c.IndexBuffer(mesh.Name+" indices", mesh.Indices)
		if err != nil {
			vertices.Release()
			return nil, err
		}
	}
	return m, nil
}

// Draw binds the buffers to slot 0 and issues one indexed or plain draw.
func (m *Mesh) Draw(pass *wgpu.RenderPassEncoder, instances uint32) {
	pass.SetVertexBuffer(0, m.Vertices, 0, wgpu.WholeSize)
	if m.Indices != nil {
		pass.SetIndexBuffer(m.Indices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		pass.DrawIndexed(m.IndexCount, instances, 0, 0, 0)
		return
	}
	pass.Draw(m.VertexCount, instances, 0, 0)
}

func (m *Mesh) Release() {
	if m.Indices != nil {
		m.Indices.Release()
		m.Indices = nil
	}
	if m.Vertices != nil {
		m.Vertices.Release()
		m.Vertices = nil
	}
}

// UniformBuffer creates a zeroed uniform buffer of at least size bytes.
func (c *Context) UniformBuffer(label string, size uint64) (*wgpu.Buffer, error) {
	buf, err := c.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  AlignUp(size, UniformAlign),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("uniform buffer %s: %w", label, err)
	}
	return buf, nil
}

// WriteFloats copies data to the start of buf.
func (c *Context) WriteFloats(buf *wgpu.Buffer, data ...float32) error {
	return c.Queue.WriteBuffer(buf, 0, wgpu.ToBytes(data))
}

// textureCopy describes how tex's tightly packed pixels map onto a texture.
func textureCopy(tex *scene.Texture) (wgpu.TextureDataLayout, wgpu.Extent3D) {
	layout := wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(tex.BytesPerRow()),
		RowsPerImage: uint32(tex.Height),
	}
	size := wgpu.Extent3D{
		Width:              uint32(tex.Width),
		Height:             uint32(tex.Height),
		DepthOrArrayLayers: 1,
	}
	return layout, size
}

// Texture uploads tex as an rgba8unorm texture and returns it with a view.
func (c *Context) Texture(tex *scene.Texture) (*wgpu.Texture, *wgpu.TextureView, error) {
	layout, size := textureCopy(tex)
	t, err := c.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tex.Name,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("texture %s: %w", tex.Name, err)
	}

	dst := &wgpu.ImageCopyTexture{
		Texture:  t,
		MipLevel: 0,
		Origin:   wgpu.Origin3D{},
		Aspect:   wgpu.TextureAspectAll,
	}
	if err := c.Queue.WriteTexture(dst, tex.Pixels, &layout, &size); err != nil {
		t.Release()
		return nil, nil, fmt.Errorf("write texture %s: %w", tex.Name, err)
	}

	view, err := t.CreateView(nil)
	if err != nil {
		t.Release()
		return nil, nil, fmt.Errorf("texture view %s: %w", tex.Name, err)
	}
	return t, view, nil
}

// LinearSampler filters linearly and repeats in every direction.
func (c *Context) LinearSampler(label string) (*wgpu.Sampler, error) {
	s, err := c.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         label,
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("sampler %s: %w", label, err)
	}
	return s, nil
}
