package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/scene"
)

// PipelineConfig describes a render pipeline built from one WGSL module with
// vs_main and fs_main entry points.
type PipelineConfig struct {
	Label   string
	Shader  *wgpu.ShaderModule
	Buffers []wgpu.VertexBufferLayout
	Layouts []*wgpu.BindGroupLayout

	// Format overrides the colour target format; zero means the surface format.
	Format   wgpu.TextureFormat
	Blend    *wgpu.BlendState
	CullMode wgpu.CullMode
	Depth    bool
}

// ShaderModule compiles WGSL source.
func (c *Context) ShaderModule(label, code string) (*wgpu.ShaderModule, error) {
	m, err := c.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: code,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("shader module %s: %w", label, err)
	}
	return m, nil
}

// PipelineLayout creates an explicit layout from bind group layouts in group
// order.
func (c *Context) PipelineLayout(label string, layouts ...*wgpu.BindGroupLayout) (*wgpu.PipelineLayout, error) {
	l, err := c.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            label,
		BindGroupLayouts: layouts,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline layout %s: %w", label, err)
	}
	return l, nil
}

// RenderPipeline builds a triangle-list pipeline from cfg.
func (c *Context) RenderPipeline(cfg PipelineConfig) (*wgpu.RenderPipeline, error) {
	layout, err := c.PipelineLayout(cfg.Label, cfg.Layouts...)
	if err != nil {
		return nil, err
	}
	defer layout.Release()

	format := cfg.Format
	if format == wgpu.TextureFormatUndefined {
		format = c.Format
	}

	desc := &wgpu.RenderPipelineDescriptor{
		Label:  cfg.Label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     cfg.Shader,
			EntryPoint: "vs_main",
			Buffers:    cfg.Buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     cfg.Shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     cfg.Blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  cfg.CullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}
	if cfg.Depth {
		desc.DepthStencil = &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		}
	}

	p, err := c.Device.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("render pipeline %s: %w", cfg.Label, err)
	}
	return p, nil
}

// ComputePipeline builds a pipeline around the cs_main entry point.
func (c *Context) ComputePipeline(label string, shader *wgpu.ShaderModule, layouts ...*wgpu.BindGroupLayout) (*wgpu.ComputePipeline, error) {
	layout, err := c.PipelineLayout(label, layouts...)
	if err != nil {
		return nil, err
	}
	defer layout.Release()

	p, err := c.Device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  label,
		Layout: layout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     shader,
			EntryPoint: "cs_main",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compute pipeline %s: %w", label, err)
	}
	return p, nil
}

// VertexFormat maps a float attribute width to its vertex format.
func VertexFormat(size int) (wgpu.VertexFormat, error) {
	switch size {
	case 1:
		return wgpu.VertexFormatFloat32, nil
	case 2:
		return wgpu.VertexFormatFloat32x2, nil
	case 3:
		return wgpu.VertexFormatFloat32x3, nil
	case 4:
		return wgpu.VertexFormatFloat32x4, nil
	}
	return wgpu.VertexFormatUndefined, fmt.Errorf("unsupported attribute width %d", size)
}

// MeshLayout describes mesh's interleaved vertices as one vertex buffer.
func MeshLayout(mesh *scene.Mesh, step wgpu.VertexStepMode) (wgpu.VertexBufferLayout, error) {
	attrs := make([]wgpu.VertexAttribute, 0, len(mesh.Attributes))
	for _, a := range mesh.Attributes {
		format, err := VertexFormat(a.Size)
		if err != nil {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("mesh %s location %d: %w", mesh.Name, a.Location, err)
		}
		attrs = append(attrs, wgpu.VertexAttribute{
			Format:         format,
			Offset:         uint64(a.Offset * 4),
			ShaderLocation: a.Location,
		})
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(mesh.StrideBytes()),
		StepMode:    step,
		Attributes:  attrs,
	}, nil
}

// InstanceLayout is the per-instance buffer of the instancing sample:
// offset (1), scale (2), angle (3) and colour (4).
func InstanceLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: scene.InstanceFloats * 4,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32, Offset: 8, ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32, Offset: 12, ShaderLocation: 3},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 16, ShaderLocation: 4},
		},
	}
}

// Blend returns the colour blend preset for mode. Alpha is written as-is in
// both presets.
func Blend(mode scene.BlendMode) *wgpu.BlendState {
	color := wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
	}
	if mode == scene.BlendAdditive {
		color.DstFactor = wgpu.BlendFactorOne
	}
	return &wgpu.BlendState{
		Color: color,
		Alpha: wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorZero,
		},
	}
}

// Workgroups is the number of workgroups of size groupSize covering n items.
func Workgroups(n, groupSize int) uint32 {
	if n <= 0 || groupSize <= 0 {
		return 0
	}
	return uint32((n + groupSize - 1) / groupSize)
}
