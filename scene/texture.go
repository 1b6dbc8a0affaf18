package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Texture holds RGBA8 pixels, row-major from the top row down.
type Texture struct {
	Name   string
	Width  int
	Height int
	Pixels []byte
}

// BytesPerRow is the stride of one row of Pixels.
func (t *Texture) BytesPerRow() int {
	return t.Width * 4
}

// Checkerboard fills a size x size texture with squares x squares alternating
// cells. The top-left cell uses a.
func Checkerboard(size, squares int, a, b color.RGBA) *Texture {
	if squares < 1 {
		squares = 1
	}
	cell := size / squares
	if cell < 1 {
		cell = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return &Texture{
		Name:   fmt.Sprintf("checker_%d_%d", size, squares),
		Width:  size,
		Height: size,
		Pixels: img.Pix,
	}
}

// LoadTexture reads a PNG or JPEG file and converts it to RGBA8.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return FromImage(path, img), nil
}

func FromImage(name string, img image.Image) *Texture {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return &Texture{
		Name:   name,
		Width:  rgba.Rect.Dx(),
		Height: rgba.Rect.Dy(),
		Pixels: rgba.Pix,
	}
}

// TextureOr loads path when it is set, falling back to the procedural texture.
func TextureOr(path string, fallback func() *Texture) (*Texture, error) {
	if path == "" {
		return fallback(), nil
	}
	return LoadTexture(path)
}
