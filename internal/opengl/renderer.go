package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"gfx-samples/core"
	"gfx-samples/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO         uint32
	VBO         uint32
	EBO         uint32
	VertexCount int32
	IndexCount  int32
	HasIndices  bool
}

// Renderer owns the GL state shared by the samples: uploaded meshes,
// textures and programs. All calls must happen on the thread holding the
// context.
type Renderer struct {
	viewportW int32
	viewportH int32

	gpuMeshes map[*scene.Mesh]*GPUMesh
	programs  []*Program
	textures  []*Texture
}

// NewRenderer loads the GL function pointers for the current context.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	core.Logger().Info("opengl ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	)

	return &Renderer{gpuMeshes: make(map[*scene.Mesh]*GPUMesh)}, nil
}

// Program compiles a program the renderer deletes on Destroy.
func (r *Renderer) Program(vertSrc, fragSrc string) (*Program, error) {
	p, err := NewProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	r.programs = append(r.programs, p)
	return p, nil
}

// Texture uploads tex and keeps it for Destroy.
func (r *Renderer) Texture(tex *scene.Texture) (*Texture, error) {
	t, err := UploadTexture(tex)
	if err != nil {
		return nil, err
	}
	r.textures = append(r.textures, t)
	return t, nil
}

// SetViewport resizes the GL viewport to the framebuffer size.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
}

func (r *Renderer) Viewport() core.Viewport {
	return core.Viewport{Width: int(r.viewportW), Height: int(r.viewportH)}
}

// EnableDepth turns on depth testing with the LESS comparison.
func (r *Renderer) EnableDepth() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

// EnableCull discards back faces of counter-clockwise geometry.
func (r *Renderer) EnableCull() {
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
}

// Clear fills the colour buffer, and the depth buffer when depth is set.
func (r *Renderer) Clear(c core.Color, depth bool) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// DrawMesh uploads mesh on first use and draws it with the bound program.
func (r *Renderer) DrawMesh(mesh *scene.Mesh) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_SHORT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, gpu.VertexCount)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		if gpu.HasIndices {
			gl.DeleteBuffers(1, &gpu.EBO)
		}
		delete(r.gpuMeshes, mesh)
	}
}

// Destroy releases all GPU resources created through the renderer.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	for _, p := range r.programs {
		p.Delete()
	}
	for _, t := range r.textures {
		t.Delete()
	}
	r.programs = nil
	r.textures = nil
}

func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 || mesh.Stride == 0 {
		return nil
	}

	gpu := &GPUMesh{
		VertexCount: int32(mesh.VertexCount()),
		IndexCount:  int32(mesh.IndexCount()),
		HasIndices:  mesh.Indexed(),
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	stride := int32(mesh.StrideBytes())
	for _, a := range mesh.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, int32(a.Size), gl.FLOAT, false, stride, gl.PtrOffset(a.Offset*4))
	}

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*2, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	core.Logger().Debug("mesh uploaded", "name", mesh.Name, "vertices", gpu.VertexCount, "indices", gpu.IndexCount)
	return gpu
}
