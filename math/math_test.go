package math

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func randomMat4(rng *rand.Rand) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = rng.Float32()*2 - 1
	}
	return m
}

// wellConditionedMat3 keeps the determinant away from zero so the inverse is
// accurate to float32 precision.
func wellConditionedMat3(rng *rand.Rand) Mat3 {
	var m Mat3
	for i := range m {
		m[i] = rng.Float32()*2 - 1
	}
	m[0] += 3
	m[4] += 3
	m[8] += 3
	return m
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	if dot != 32 {
		t.Errorf("Dot: expected 32, got %v", dot)
	}

	// Right x Up = Front in a right-handed system
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	normalized := NewVec3(3, 0, 0).Normalize()
	if normalized != NewVec3(1, 0, 0) {
		t.Errorf("Normalize: expected (1,0,0), got %v", normalized)
	}
	if math.Abs(float64(NewVec3(1, 2, 3).Normalize().Length()-1)) > 0.0001 {
		t.Error("Normalize: expected unit length")
	}
	if Vec3Zero.Normalize() != Vec3Zero {
		t.Errorf("Normalize: zero vector should stay zero, got %v", Vec3Zero.Normalize())
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			expected := float32(0)
			if row == col {
				expected = 1
			}
			if m.At(row, col) != expected {
				t.Errorf("Identity: expected (%d,%d) = %v, got %v", row, col, expected, m.At(row, col))
			}
		}
	}
}

func TestMat4IdentityIsNeutral(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		m := randomMat4(rng)
		assert.InDeltaSlice(t, m[:], Mat4Identity().Mul(m).Floats(), tolerance, "I*M")
		left := m.Mul(Mat4Identity())
		assert.InDeltaSlice(t, m[:], left[:], tolerance, "M*I")
	}
}

func TestMat4MulColumnMajor(t *testing.T) {
	a := Mat4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	b := Mat4{17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32}
	c := a.Mul(b)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var want float32
			for k := 0; k < 4; k++ {
				want += a[k*4+row] * b[col*4+k]
			}
			if c[col*4+row] != want {
				t.Errorf("Mul: (%d,%d) expected %v, got %v", row, col, want, c[col*4+row])
			}
		}
	}

	ref := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))
	assert.Equal(t, [16]float32(ref), [16]float32(c))
}

func TestMat4MulAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 50; i++ {
		a, b, c := randomMat4(rng), randomMat4(rng), randomMat4(rng)
		lhs := a.Mul(b.Mul(c))
		rhs := a.Mul(b).Mul(c)
		assert.InDeltaSlice(t, lhs[:], rhs[:], 1e-4)
	}
}

func TestMat4RotationInverse(t *testing.T) {
	rotations := map[string]func(float32) Mat4{
		"X": Mat4RotationX,
		"Y": Mat4RotationY,
		"Z": Mat4RotationZ,
	}
	angles := []float32{0, 0.3, 1, math.Pi / 2, 2.5, -4}

	for name, rot := range rotations {
		for _, theta := range angles {
			got := rot(theta).Mul(rot(-theta))
			id := Mat4Identity()
			assert.InDeltaSlice(t, id[:], got[:], tolerance, "R%s(%v)R%s(%v)", name, theta, name, -theta)
		}
	}
}

func TestMat4RotationMatchesReference(t *testing.T) {
	for _, theta := range []float32{0.25, 1.2, -2} {
		x := Mat4RotationX(theta)
		y := Mat4RotationY(theta)
		z := Mat4RotationZ(theta)
		refX := mgl32.HomogRotate3DX(theta)
		refY := mgl32.HomogRotate3DY(theta)
		refZ := mgl32.HomogRotate3DZ(theta)
		assert.InDeltaSlice(t, refX[:], x[:], tolerance)
		assert.InDeltaSlice(t, refY[:], y[:], tolerance)
		assert.InDeltaSlice(t, refZ[:], z[:], tolerance)
	}
}

func TestTransposeInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 20; i++ {
		m := randomMat4(rng)
		if m.Transpose().Transpose() != m {
			t.Errorf("Transpose: Mat4 round trip changed %v", m)
		}
		m3 := Mat3FromMat4(m)
		if m3.Transpose().Transpose() != m3 {
			t.Errorf("Transpose: Mat3 round trip changed %v", m3)
		}
	}

	m := Mat4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if m.Transpose().At(0, 1) != m.At(1, 0) {
		t.Errorf("Transpose: expected (0,1) = %v, got %v", m.At(1, 0), m.Transpose().At(0, 1))
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[12], m[13], m[14])
	}

	result := m.MulVec4(NewVec4(0, 0, 0, 1))
	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4CompositionOrder(t *testing.T) {
	// T*S scales first, then translates.
	m := Mat4Translation(NewVec3(1, 0, 0)).Mul(Mat4Scale(NewVec3(2, 2, 2)))
	p := m.MulPoint(NewVec3(1, 1, 1))
	assert.Equal(t, NewVec3(3, 2, 2), p)

	trs := Mat4TRS(NewVec3(0, 0, -0.5), 0, NewVec3(1.4, 1.4, 1.4))
	assert.InDeltaSlice(t, Mat4Translation(NewVec3(0, 0, -0.5)).Mul(Mat4Scale(NewVec3(1.4, 1.4, 1.4))).Floats(), trs[:], tolerance)
}

func TestMat4Inverse(t *testing.T) {
	model := Mat4Translation(NewVec3(1, -2, 3)).
		Mul(Mat4RotationY(0.7)).
		Mul(Mat4RotationX(0.2)).
		Mul(Mat4Scale(NewVec3(2, 0.5, 1.5)))

	got := model.Mul(model.Inverse())
	id := Mat4Identity()
	assert.InDeltaSlice(t, id[:], got[:], tolerance)

	ref := mgl32.Mat4(model).Inv()
	inv := model.Inverse()
	assert.InDeltaSlice(t, ref[:], inv[:], 1e-4)

	var singular Mat4
	assert.Equal(t, Mat4Identity(), singular.Inverse())
}

func TestMat3Inverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 50; i++ {
		m := wellConditionedMat3(rng)
		require.NotZero(t, m.Determinant())
		got := m.Mul(m.Inverse())
		id := Mat3Identity()
		assert.InDeltaSlice(t, id[:], got[:], tolerance)
	}

	singular := Mat3{1, 2, 3, 2, 4, 6, 0, 0, 1}
	assert.Equal(t, Mat3Identity(), singular.Inverse())
}

func TestMat3FromMat4(t *testing.T) {
	m := Mat4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	assert.Equal(t, Mat3{1, 2, 3, 5, 6, 7, 9, 10, 11}, Mat3FromMat4(m))
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	model := Mat4RotationY(0.4).Mul(Mat4Scale(NewVec3(3, 1, 0.5)))
	nm := NormalMatrix(model)

	// A normal stays perpendicular to a surface tangent after transformation.
	normal := NewVec3(1, 1, 0).Normalize()
	tangent := NewVec3(1, -1, 0)
	n := nm.MulVec3(normal)
	tan := model.MulVec4(tangent.ToVec4(0)).ToVec3()
	assert.InDelta(t, 0, n.Dot(tan), tolerance)

	// Under a pure rotation the normal matrix is the rotation itself.
	rot := Mat4RotationX(1.1)
	assert.InDeltaSlice(t, Mat3FromMat4(rot).Floats(), NormalMatrix(rot).Floats(), tolerance)
}

func TestMat3Padded(t *testing.T) {
	p := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}.Padded()
	assert.Equal(t, [12]float32{1, 2, 3, 0, 4, 5, 6, 0, 7, 8, 9, 0}, p)
}

func TestMat4Perspective(t *testing.T) {
	fov := float32(math.Pi / 4)
	aspect := float32(16.0 / 9.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Mat4Perspective(fov, aspect, near, far)

	assert.InDelta(t, -1, m.MulPoint(NewVec3(0, 0, -near)).Z, 1e-4, "near plane")
	assert.InDelta(t, 1, m.MulPoint(NewVec3(0, 0, -far)).Z, 1e-4, "far plane")

	ref := mgl32.Perspective(fov, aspect, near, far)
	assert.InDeltaSlice(t, ref[:], m[:], tolerance)
}

func TestMat4PerspectiveZO(t *testing.T) {
	fov := float32(2 * math.Pi / 5)
	near := float32(0.1)
	far := float32(100.0)

	m := Mat4PerspectiveZO(fov, 1.5, near, far)

	assert.InDelta(t, 0, m.MulPoint(NewVec3(0, 0, -near)).Z, 1e-4, "near plane")
	assert.InDelta(t, 1, m.MulPoint(NewVec3(0, 0, -far)).Z, 1e-4, "far plane")

	// Both conventions share the same X/Y projection.
	gl := Mat4Perspective(fov, 1.5, near, far)
	assert.Equal(t, gl[0], m[0])
	assert.Equal(t, gl[5], m[5])
	assert.Equal(t, float32(-1), m[11])
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(2, 1.5, 3)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	// The eye maps to the origin and the target lies straight down -Z.
	origin := m.MulPoint(eye)
	assert.InDelta(t, 0, origin.X, 1e-4)
	assert.InDelta(t, 0, origin.Y, 1e-4)
	assert.InDelta(t, 0, origin.Z, 1e-4)

	target := m.MulPoint(Vec3Zero)
	assert.InDelta(t, 0, target.X, 1e-4)
	assert.InDelta(t, 0, target.Y, 1e-4)
	assert.InDelta(t, -eye.Length(), target.Z, 1e-4)

	ref := mgl32.LookAtV(mgl32.Vec3{2, 1.5, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	assert.InDeltaSlice(t, ref[:], m[:], tolerance)
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4RotationY(0.5)
	m2 := Mat4RotationX(0.25)

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkNormalMatrix(b *testing.B) {
	model := Mat4RotationY(0.3).Mul(Mat4Scale(NewVec3(1, 2, 3)))
	for i := 0; i < b.N; i++ {
		_ = NormalMatrix(model)
	}
}
