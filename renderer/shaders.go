package renderer

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"gfx-samples/internal/opengl"
	"gfx-samples/internal/webgpu"
	"gfx-samples/shaders"
)

// LoadProgram compiles the embedded GLSL pair vert/frag, e.g.
// LoadProgram(r, "lit.vert", "blinn_phong.frag").
func LoadProgram(r *opengl.Renderer, vert, frag string) (*opengl.Program, error) {
	vs, err := shaders.GLSL(vert)
	if err != nil {
		return nil, err
	}
	fs, err := shaders.GLSL(frag)
	if err != nil {
		return nil, err
	}
	p, err := r.Program(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vert, frag, err)
	}
	return p, nil
}

// LoadShader creates a shader module from the embedded WGSL file name.
func LoadShader(ctx *webgpu.Context, name string) (*wgpu.ShaderModule, error) {
	src, err := shaders.WGSL(name)
	if err != nil {
		return nil, err
	}
	return ctx.ShaderModule(name, src)
}
