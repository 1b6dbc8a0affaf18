package scene

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gfx-samples/core"
	"gfx-samples/math"
)

func checkMesh(t *testing.T, m *Mesh) {
	t.Helper()
	require.Greater(t, m.Stride, 0)
	require.Zero(t, len(m.Vertices)%m.Stride, "vertex data is whole vertices")

	width := 0
	for _, a := range m.Attributes {
		assert.LessOrEqual(t, a.Offset+a.Size, m.Stride, "attribute %d inside stride", a.Location)
		width += a.Size
	}
	assert.Equal(t, m.Stride, width, "attributes cover the stride")

	for _, idx := range m.Indices {
		assert.Less(t, int(idx), m.VertexCount())
	}
}

func TestPrimitiveLayouts(t *testing.T) {
	tests := []struct {
		mesh     *Mesh
		vertices int
		indices  int
		stride   int
	}{
		{Triangle(), 3, 0, 6},
		{Triangle2D(), 3, 0, 5},
		{InstanceTriangle(), 3, 0, 2},
		{Quad(), 4, 6, 5},
		{TexturedQuad(0.7), 6, 0, 4},
		{ColoredCube(), 24, 36, 6},
		{SolidCube(core.RGB(1, 0.5, 0.1)), 24, 36, 6},
		{TexturedCube(), 24, 36, 5},
	}
	for _, tt := range tests {
		t.Run(tt.mesh.Name, func(t *testing.T) {
			checkMesh(t, tt.mesh)
			assert.Equal(t, tt.vertices, tt.mesh.VertexCount())
			assert.Equal(t, tt.indices, tt.mesh.IndexCount())
			assert.Equal(t, tt.indices > 0, tt.mesh.Indexed())
			assert.Equal(t, tt.stride*4, tt.mesh.StrideBytes())
		})
	}
}

func TestTriangle2DStride(t *testing.T) {
	assert.Equal(t, 20, Triangle2D().StrideBytes())
}

// assertOutwardWinding checks that every non-degenerate triangle of m, wound
// counter-clockwise, faces away from the origin. Positions are the first
// three floats of each vertex.
func assertOutwardWinding(t *testing.T, m *Mesh) {
	t.Helper()
	for i := 0; i < len(m.Indices); i += 3 {
		p := func(k int) [3]float32 {
			base := int(m.Indices[i+k]) * m.Stride
			return [3]float32{m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]}
		}
		a, b, c := p(0), p(1), p(2)
		e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		if n[0]*n[0]+n[1]*n[1]+n[2]*n[2] < 1e-12 {
			// Pole triangles collapse to a line.
			continue
		}
		centroid := [3]float32{(a[0] + b[0] + c[0]) / 3, (a[1] + b[1] + c[1]) / 3, (a[2] + b[2] + c[2]) / 3}
		dot := n[0]*centroid[0] + n[1]*centroid[1] + n[2]*centroid[2]
		assert.Greater(t, dot, float32(0), "%s triangle %d faces outwards", m.Name, i/3)
	}
}

func TestCubeWinding(t *testing.T) {
	assertOutwardWinding(t, ColoredCube())
}

func TestSphereWinding(t *testing.T) {
	assertOutwardWinding(t, Sphere(1, 32, 32))
	assertOutwardWinding(t, Sphere(2, 2, 3))
}

func TestCubeFaceColors(t *testing.T) {
	m := ColoredCube()
	for face, want := range CubeFaceColors {
		for corner := 0; corner < 4; corner++ {
			base := (face*4 + corner) * m.Stride
			assert.Equal(t, want.Vec3(), [3]float32{m.Vertices[base+3], m.Vertices[base+4], m.Vertices[base+5]})
		}
	}

	solid := SolidCube(core.RGB(0.3, 0.4, 1))
	for v := 0; v < solid.VertexCount(); v++ {
		assert.Equal(t, float32(1), solid.Vertices[v*solid.Stride+5])
	}
}

func TestSphere(t *testing.T) {
	const lat, lon = 16, 24
	m := Sphere(2, lat, lon)
	checkMesh(t, m)

	assert.Equal(t, (lat+1)*(lon+1), m.VertexCount())
	assert.Equal(t, lat*lon*6, m.IndexCount())

	for v := 0; v < m.VertexCount(); v++ {
		base := v * m.Stride
		nx, ny, nz := m.Vertices[base+3], m.Vertices[base+4], m.Vertices[base+5]
		assert.InDelta(t, 1, math32.Sqrt(nx*nx+ny*ny+nz*nz), 1e-5, "unit normal at %d", v)
		assert.InDelta(t, 2*nx, m.Vertices[base], 1e-5)
		assert.InDelta(t, 2*ny, m.Vertices[base+1], 1e-5)
	}

	// North pole first, south pole last.
	assert.InDelta(t, 2, m.Vertices[1], 1e-5)
	assert.InDelta(t, -2, m.Vertices[(m.VertexCount()-1)*m.Stride+1], 1e-5)
}

func TestSphereClampsSegments(t *testing.T) {
	m := Sphere(1, 0, 1)
	checkMesh(t, m)
	assert.Equal(t, 3*4, m.VertexCount())
}

func TestCheckerboard(t *testing.T) {
	light := color.RGBA{240, 220, 200, 255}
	dark := color.RGBA{30, 100, 180, 255}
	tex := Checkerboard(256, 8, light, dark)

	require.Equal(t, 256*256*4, len(tex.Pixels))
	assert.Equal(t, 1024, tex.BytesPerRow())

	at := func(x, y int) color.RGBA {
		i := y*tex.BytesPerRow() + x*4
		return color.RGBA{tex.Pixels[i], tex.Pixels[i+1], tex.Pixels[i+2], tex.Pixels[i+3]}
	}
	assert.Equal(t, light, at(0, 0))
	assert.Equal(t, dark, at(32, 0))
	assert.Equal(t, dark, at(0, 32))
	assert.Equal(t, light, at(32, 32))
	assert.Equal(t, light, at(31, 31))
	assert.Equal(t, dark, at(255, 0))
}

func TestLoadTexture(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 1, color.NRGBA{10, 20, 30, 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "small.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	tex, err := TextureOr(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, tex.Width)
	assert.Equal(t, 2, tex.Height)
	i := 1*tex.BytesPerRow() + 2*4
	assert.Equal(t, []byte{10, 20, 30, 255}, tex.Pixels[i:i+4])

	_, err = LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	fallback, err := TextureOr("", func() *Texture { return Checkerboard(4, 2, color.RGBA{}, color.RGBA{}) })
	require.NoError(t, err)
	assert.Equal(t, 4, fallback.Width)
}

func TestSeedParticles(t *testing.T) {
	particles := SeedParticles(1024, NewRand(7))
	require.Len(t, particles, 1024)
	for _, p := range particles {
		assert.LessOrEqual(t, math32.Abs(p.X), float32(ParticleSpawnExtent/2))
		assert.LessOrEqual(t, math32.Abs(p.Y), float32(ParticleSpawnExtent/2))
		assert.LessOrEqual(t, math32.Abs(p.VX), float32(ParticleMaxSpeed/2))
		assert.LessOrEqual(t, math32.Abs(p.VY), float32(ParticleMaxSpeed/2))
	}

	again := SeedParticles(1024, NewRand(7))
	assert.Equal(t, particles, again, "same seed, same particles")
}

func TestSeedInstances(t *testing.T) {
	instances := SeedInstances(800, NewRand(42))
	require.Len(t, instances, 800)
	for _, in := range instances {
		assert.LessOrEqual(t, math32.Abs(in.OffsetX), float32(0.95))
		assert.GreaterOrEqual(t, in.Scale, float32(0.02))
		assert.LessOrEqual(t, in.Scale, float32(0.08))
		assert.GreaterOrEqual(t, in.Angle, float32(0))
		assert.LessOrEqual(t, in.Angle, float32(2*math32.Pi))
		for _, c := range []float32{in.R, in.G, in.B} {
			assert.GreaterOrEqual(t, c, float32(0.3))
			assert.LessOrEqual(t, c, float32(1))
		}
	}
}

func TestBlendModeString(t *testing.T) {
	assert.Equal(t, "alpha", BlendAlpha.String())
	assert.Equal(t, "additive", BlendAdditive.String())
}

func TestCameraDepthRange(t *testing.T) {
	eye := math.Vec3{X: 2, Y: 1.5, Z: 3}
	forward := math.Vec3Zero.Sub(eye).Normalize()

	tests := []struct {
		depth   DepthRange
		nearNDC float32
		farNDC  float32
	}{
		{DepthNegOneToOne, -1, 1},
		{DepthZeroToOne, 0, 1},
	}
	for _, tt := range tests {
		cam := NewCamera(eye, tt.depth)
		vp := cam.ViewProjection(16.0 / 9.0)

		target := vp.MulVec4(math.Vec3Zero.ToVec4(1))
		assert.InDelta(t, 0, target.X/target.W, 1e-5, "target is centred")
		assert.InDelta(t, 0, target.Y/target.W, 1e-5, "target is centred")

		near := vp.MulVec4(eye.Add(forward.Mul(cam.Near)).ToVec4(1))
		assert.InDelta(t, tt.nearNDC, near.Z/near.W, 1e-4)
		far := vp.MulVec4(eye.Add(forward.Mul(cam.Far)).ToVec4(1))
		assert.InDelta(t, tt.farNDC, far.Z/far.W, 1e-3)
	}
}

func TestCameraViewFollowsPosition(t *testing.T) {
	cam := NewCamera(math.Vec3{Z: 3}, DepthNegOneToOne)
	before := cam.ViewMatrix()

	cam.SetPosition(math.Vec3{X: 3})
	after := cam.ViewMatrix()
	assert.NotEqual(t, before, after)

	p := after.MulPoint(math.Vec3{X: 3})
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)
	assert.InDelta(t, 0, p.Z, 1e-6)
}
