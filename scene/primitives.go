package scene

import (
	"github.com/chewxy/math32"

	"gfx-samples/core"
)

var (
	layoutPosColor3D = []Attribute{{Location: 0, Size: 3, Offset: 0}, {Location: 1, Size: 3, Offset: 3}}
	layoutPosColor2D = []Attribute{{Location: 0, Size: 2, Offset: 0}, {Location: 1, Size: 3, Offset: 2}}
	layoutPosUV3D    = []Attribute{{Location: 0, Size: 3, Offset: 0}, {Location: 1, Size: 2, Offset: 3}}
	layoutPosUV2D    = []Attribute{{Location: 0, Size: 2, Offset: 0}, {Location: 1, Size: 2, Offset: 2}}
	layoutPosNormal  = []Attribute{{Location: 0, Size: 3, Offset: 0}, {Location: 1, Size: 3, Offset: 3}}
	layoutPos2D      = []Attribute{{Location: 0, Size: 2, Offset: 0}}
)

// Triangle is the GL hello-triangle: xyz + rgb, drawn without indices.
func Triangle() *Mesh {
	return &Mesh{
		Name: "Triangle",
		Vertices: []float32{
			0.0, 0.6, 0.0, 1.0, 0.3, 0.3,
			-0.6, -0.5, 0.0, 0.3, 1.0, 0.3,
			0.6, -0.5, 0.0, 0.3, 0.3, 1.0,
		},
		Stride:     6,
		Attributes: layoutPosColor3D,
	}
}

// Triangle2D is a coloured triangle laid out as xy + rgb (stride 20 bytes).
func Triangle2D() *Mesh {
	return &Mesh{
		Name: "Triangle2D",
		Vertices: []float32{
			0.0, 0.5, 1.0, 0.3, 0.3,
			-0.5, -0.5, 0.3, 1.0, 0.3,
			0.5, -0.5, 0.3, 0.3, 1.0,
		},
		Stride:     5,
		Attributes: layoutPosColor2D,
	}
}

// InstanceTriangle is the per-vertex mesh shared by every instance: xy only.
func InstanceTriangle() *Mesh {
	return &Mesh{
		Name: "InstanceTriangle",
		Vertices: []float32{
			0.0, 0.8,
			-0.7, -0.6,
			0.7, -0.6,
		},
		Stride:     2,
		Attributes: layoutPos2D,
	}
}

// Quad is four xy + rgb corners joined into two triangles by six indices.
func Quad() *Mesh {
	return &Mesh{
		Name: "Quad",
		Vertices: []float32{
			-0.5, 0.5, 1.0, 0.2, 0.2, // top left
			0.5, 0.5, 0.2, 1.0, 0.2, // top right
			0.5, -0.5, 0.2, 0.2, 1.0, // bottom right
			-0.5, -0.5, 1.0, 1.0, 0.2, // bottom left
		},
		Indices:    []uint16{0, 3, 2, 0, 2, 1},
		Stride:     5,
		Attributes: layoutPosColor2D,
	}
}

// TexturedQuad is an xy + uv square of the given half extent, as two
// unindexed triangles. V grows downwards to match texture rows.
func TexturedQuad(half float32) *Mesh {
	h := half
	return &Mesh{
		Name: "TexturedQuad",
		Vertices: []float32{
			-h, -h, 0, 1,
			h, -h, 1, 1,
			h, h, 1, 0,
			-h, -h, 0, 1,
			h, h, 1, 0,
			-h, h, 0, 0,
		},
		Stride:     4,
		Attributes: layoutPosUV2D,
	}
}

const cubeHalf = 0.5

// cubeFaces lists the four corners of each face, counter-clockwise seen from
// outside, in the order front, back, right, left, top, bottom.
var cubeFaces = [6][4][3]float32{
	{{-cubeHalf, -cubeHalf, cubeHalf}, {cubeHalf, -cubeHalf, cubeHalf}, {cubeHalf, cubeHalf, cubeHalf}, {-cubeHalf, cubeHalf, cubeHalf}},
	{{cubeHalf, -cubeHalf, -cubeHalf}, {-cubeHalf, -cubeHalf, -cubeHalf}, {-cubeHalf, cubeHalf, -cubeHalf}, {cubeHalf, cubeHalf, -cubeHalf}},
	{{cubeHalf, -cubeHalf, cubeHalf}, {cubeHalf, -cubeHalf, -cubeHalf}, {cubeHalf, cubeHalf, -cubeHalf}, {cubeHalf, cubeHalf, cubeHalf}},
	{{-cubeHalf, -cubeHalf, -cubeHalf}, {-cubeHalf, -cubeHalf, cubeHalf}, {-cubeHalf, cubeHalf, cubeHalf}, {-cubeHalf, cubeHalf, -cubeHalf}},
	{{-cubeHalf, cubeHalf, cubeHalf}, {cubeHalf, cubeHalf, cubeHalf}, {cubeHalf, cubeHalf, -cubeHalf}, {-cubeHalf, cubeHalf, -cubeHalf}},
	{{-cubeHalf, -cubeHalf, -cubeHalf}, {cubeHalf, -cubeHalf, -cubeHalf}, {cubeHalf, -cubeHalf, cubeHalf}, {-cubeHalf, -cubeHalf, cubeHalf}},
}

// CubeFaceColors gives each face of ColoredCube its own colour.
var CubeFaceColors = [6]core.Color{
	core.RGB(1.0, 0.3, 0.3), // front
	core.RGB(0.3, 1.0, 1.0), // back
	core.RGB(0.3, 1.0, 0.3), // right
	core.RGB(1.0, 0.3, 1.0), // left
	core.RGB(0.3, 0.3, 1.0), // top
	core.RGB(1.0, 1.0, 0.3), // bottom
}

var cubeUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func cubeIndices() []uint16 {
	indices := make([]uint16, 0, 36)
	for face := 0; face < 6; face++ {
		b := uint16(face * 4)
		indices = append(indices, b, b+1, b+2, b, b+2, b+3)
	}
	return indices
}

// ColoredCube is a unit cube of 24 xyz + rgb vertices with one colour per face.
func ColoredCube() *Mesh {
	return coloredCube("ColoredCube", CubeFaceColors)
}

// SolidCube is ColoredCube with every face the same colour.
func SolidCube(c core.Color) *Mesh {
	return coloredCube("SolidCube", [6]core.Color{c, c, c, c, c, c})
}

func coloredCube(name string, colors [6]core.Color) *Mesh {
	vertices := make([]float32, 0, 24*6)
	for f, face := range cubeFaces {
		c := colors[f]
		for _, p := range face {
			vertices = append(vertices, p[0], p[1], p[2], c.R, c.G, c.B)
		}
	}
	return &Mesh{
		Name:       name,
		Vertices:   vertices,
		Indices:    cubeIndices(),
		Stride:     6,
		Attributes: layoutPosColor3D,
	}
}

// TexturedCube is a unit cube of 24 xyz + uv vertices; every face maps the
// full texture.
func TexturedCube() *Mesh {
	vertices := make([]float32, 0, 24*5)
	for _, face := range cubeFaces {
		for i, p := range face {
			vertices = append(vertices, p[0], p[1], p[2], cubeUVs[i][0], cubeUVs[i][1])
		}
	}
	return &Mesh{
		Name:       "TexturedCube",
		Vertices:   vertices,
		Indices:    cubeIndices(),
		Stride:     5,
		Attributes: layoutPosUV3D,
	}
}

// Sphere generates a UV sphere of xyz + normal vertices. Latitude runs from
// the north pole (+Y) to the south pole; each band of quads is split into two
// triangles wound counter-clockwise seen from outside.
func Sphere(radius float32, latBands, lonBands int) *Mesh {
	if latBands < 2 {
		latBands = 2
	}
	if lonBands < 3 {
		lonBands = 3
	}

	vertices := make([]float32, 0, (latBands+1)*(lonBands+1)*6)
	for lat := 0; lat <= latBands; lat++ {
		theta := float32(lat) / float32(latBands) * math32.Pi
		sinT, cosT := math32.Sincos(theta)

		for lon := 0; lon <= lonBands; lon++ {
			phi := float32(lon) / float32(lonBands) * 2 * math32.Pi
			sinP, cosP := math32.Sincos(phi)

			x := cosP * sinT
			y := cosT
			z := sinP * sinT
			vertices = append(vertices, x*radius, y*radius, z*radius, x, y, z)
		}
	}

	indices := make([]uint16, 0, latBands*lonBands*6)
	for lat := 0; lat < latBands; lat++ {
		for lon := 0; lon < lonBands; lon++ {
			a := uint16(lat*(lonBands+1) + lon)
			b := a + uint16(lonBands+1)
			indices = append(indices, a, a+1, b)
			indices = append(indices, b, a+1, b+1)
		}
	}

	return &Mesh{
		Name:       "Sphere",
		Vertices:   vertices,
		Indices:    indices,
		Stride:     6,
		Attributes: layoutPosNormal,
	}
}
