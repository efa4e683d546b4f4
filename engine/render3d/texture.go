package render3d

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// WrapMode selects how texture coordinates outside [0,1] are resolved.
type WrapMode int

const (
	WrapClampToEdge WrapMode = iota
	WrapClampToBorder
	WrapRepeat
	WrapMirroredRepeat
)

var wrapModeNames = [...]string{"Clamp To Edge", "Clamp To Border", "Repeat", "Mirrored Repeat"}

// WrapModeNames lists the modes in selector order.
func WrapModeNames() []string { return wrapModeNames[:] }

func (w WrapMode) String() string {
	if w < 0 || int(w) >= len(wrapModeNames) {
		return fmt.Sprintf("WrapMode(%d)", int(w))
	}
	return wrapModeNames[w]
}

// WrapCoord resolves one texture coordinate. ok is false when the sample
// falls on the border color (ClampToBorder outside [0,1]).
func WrapCoord(t float64, mode WrapMode) (float64, bool) {
	switch mode {
	case WrapClampToBorder:
		if t < 0 || t > 1 {
			return 0, false
		}
		return t, true
	case WrapRepeat:
		return t - math.Floor(t), true
	case WrapMirroredRepeat:
		f := t - 2*math.Floor(t/2) // [0,2)
		if f > 1 {
			f = 2 - f
		}
		return f, true
	default:
		return clamp01(t), true
	}
}

const placeholderCells = 8

// PlaceholderTexture returns a magenta/black checkerboard used when a
// texture cannot be loaded.
func PlaceholderTexture(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / placeholderCells
	if cell < 1 {
		cell = 1
	}
	on := color.RGBA{255, 0, 255, 255}
	off := color.RGBA{0, 0, 0, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, on)
			} else {
				img.SetRGBA(x, y, off)
			}
		}
	}
	return img
}

// DecodeTexture decodes a PNG or JPEG and rescales it to size×size.
func DecodeTexture(r io.Reader, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("texture size %d must be positive", size)
	}
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// LoadTexture reads a texture from disk. Any failure is logged and the
// checkerboard placeholder is returned instead.
func LoadTexture(path string, size int) *image.RGBA {
	img, err := loadTextureFile(path, size)
	if err != nil {
		log.Printf("Warning: could not load texture %s: %v (using placeholder)", path, err)
		return PlaceholderTexture(size)
	}
	return img
}

func loadTextureFile(path string, size int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeTexture(f, size)
}

// MirrorTile lays out img and its mirror images in a 2×2 atlas so that
// plain repeat addressing over the atlas behaves like mirrored repeat.
func MirrorTile(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, 2*w, 2*h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			out.SetRGBA(x, y, c)
			out.SetRGBA(2*w-1-x, y, c)
			out.SetRGBA(x, 2*h-1-y, c)
			out.SetRGBA(2*w-1-x, 2*h-1-y, c)
		}
	}
	return out
}
