package math

// Mat3 is a 3x3 matrix stored column-major: element (row, col) is m[col*3+row].
type Mat3 [9]float32

func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromMat4 extracts the upper-left 3x3 block.
func Mat3FromMat4(m Mat4) Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func (m Mat3) At(row, col int) float32 {
	return m[col*3+row]
}

func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[k*3+row] * other[col*3+k]
			}
			result[col*3+row] = sum
		}
	}
	return result
}

func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Mat3) Determinant() float32 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, k := m[6], m[7], m[8]
	return a*(e*k-f*h) - b*(d*k-f*g) + c*(d*h-e*g)
}

// Inverse returns the inverse of m, or the identity when m is singular.
func (m Mat3) Inverse() Mat3 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, k := m[6], m[7], m[8]

	det := a*(e*k-f*h) - b*(d*k-f*g) + c*(d*h-e*g)
	if det == 0 {
		return Mat3Identity()
	}
	inv := 1 / det

	return Mat3{
		(e*k - f*h) * inv, (c*h - b*k) * inv, (b*f - c*e) * inv,
		(f*g - d*k) * inv, (a*k - c*g) * inv, (c*d - a*f) * inv,
		(d*h - e*g) * inv, (b*g - a*h) * inv, (a*e - b*d) * inv,
	}
}

// NormalMatrix keeps normals perpendicular to surfaces under non-uniform
// scale: the transpose of the inverse of the model's upper-left 3x3.
func NormalMatrix(model Mat4) Mat3 {
	return Mat3FromMat4(model).Inverse().Transpose()
}

// Padded returns the matrix laid out as three vec4 columns, the std140 /
// WGSL uniform layout of a mat3x3<f32>.
func (m Mat3) Padded() [12]float32 {
	return [12]float32{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
	}
}

func (m Mat3) Floats() []float32 {
	return m[:]
}
