package core

type Color struct {
	R float32 `toml:"r"`
	G float32 `toml:"g"`
	B float32 `toml:"b"`
	A float32 `toml:"a"`
}

var ColorBlack = Color{0, 0, 0, 1}

// RGB returns an opaque colour.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB8 returns an opaque colour from 0-255 channels.
func RGB8(r, g, b uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

func (c Color) Vec3() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

func (c Color) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

type Viewport struct {
	Width, Height int
}

func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Empty reports a zero-area viewport, as seen while a window is minimised.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}
