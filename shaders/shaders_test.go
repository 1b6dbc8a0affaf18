package shaders

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/gogpu/naga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGLSLSources(t *testing.T) {
	names := List("glsl")
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			src, err := GLSL(name)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(src, "#version 410 core\n"), "version line")
			assert.True(t, strings.HasSuffix(src, "\x00"), "NUL terminated")
			assert.Equal(t, 1, strings.Count(src, "\x00"))
			assert.Contains(t, src, "void main()")
		})
	}
}

func TestWGSLCompiles(t *testing.T) {
	names := List("wgsl")
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			src := MustWGSL(name)
			if strings.Contains(src, "@compute") {
				assert.Contains(t, src, "fn cs_main")
			} else {
				assert.Contains(t, src, "fn vs_main")
				assert.Contains(t, src, "fn fs_main")
			}

			spirv, err := naga.Compile(src)
			if err != nil {
				msg := err.Error()
				if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
					t.Skipf("naga limitation: %v", err)
				}
				t.Fatalf("compile %s: %v", name, err)
			}
			require.GreaterOrEqual(t, len(spirv), 4)
			assert.Equal(t, uint32(0x07230203), binary.LittleEndian.Uint32(spirv[:4]), "SPIR-V magic")
		})
	}
}

func TestLookupErrors(t *testing.T) {
	_, err := WGSL("missing.wgsl")
	assert.Error(t, err)

	_, err = GLSL("../shaders.go")
	assert.Error(t, err)

	assert.Panics(t, func() { MustGLSL("nope.frag") })
	assert.Nil(t, List("spirv"))
}
