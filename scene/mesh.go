package scene

// Attribute describes one interleaved vertex attribute. Size and Offset are
// counted in floats.
type Attribute struct {
	Location uint32
	Size     int
	Offset   int
}

// Mesh holds interleaved CPU-side vertex data and optional 16-bit indices.
// It is uploaded once and never modified afterwards.
type Mesh struct {
	Name       string
	Vertices   []float32
	Indices    []uint16
	Stride     int // floats per vertex
	Attributes []Attribute
}

func (m *Mesh) VertexCount() int {
	if m.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / m.Stride
}

func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

func (m *Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// StrideBytes is the vertex stride as uploaded to the GPU.
func (m *Mesh) StrideBytes() int {
	return m.Stride * 4
}
