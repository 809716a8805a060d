package domain

import "fmt"

// PixelFormat is the memory layout of a decoded pixel buffer.
type PixelFormat uint8

const (
	// FormatRGBA32 is 8-bit RGBA, straight alpha, linear sampling.
	FormatRGBA32 PixelFormat = iota
	// FormatSRGBA32 is 8-bit RGBA whose color channels carry the sRGB transfer curve.
	FormatSRGBA32
)

func (f PixelFormat) String() string {
	switch f {
	case FormatRGBA32:
		return "RGBA32"
	case FormatSRGBA32:
		return "SRGBA32"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
}

// BytesPerPixel is the stride of every supported format.
const BytesPerPixel = 4

// Image is a decoded pixel buffer.
type Image struct {
	Width  int
	Height int
	Format PixelFormat
	Pixels []byte
}

// Size returns the length of the pixel buffer in bytes.
func (i *Image) Size() int {
	return len(i.Pixels)
}
