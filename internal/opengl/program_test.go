package opengl

import (
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "0:3(1): error: syntax error", trimLog("0:3(1): error: syntax error\n\x00\x00"))
	assert.Equal(t, "", trimLog("\x00"))
}

func TestStageName(t *testing.T) {
	assert.Equal(t, "vertex", stageName(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", stageName(gl.FRAGMENT_SHADER))
	assert.Equal(t, "0x8dd9", stageName(gl.GEOMETRY_SHADER))
}
