package decoder

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/xfmoulet/qoi"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/image/webp"
)

const (
	pngName  = "png"
	jpegName = "jpeg"
	qoiName  = "qoi"
	webpName = "webp"
)

var (
	pngMagic  = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	qoiMagic  = []byte("qoif")
)

func isPNG(data []byte) bool  { return bytes.HasPrefix(data, pngMagic) }
func isJPEG(data []byte) bool { return bytes.HasPrefix(data, jpegMagic) }
func isQOI(data []byte) bool  { return bytes.HasPrefix(data, qoiMagic) }

func isWebP(data []byte) bool {
	return len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
}

// PNG decodes PNG images, including indexed and 16-bit variants.
type PNG struct{}

// Name implements ports.Decoder.
func (PNG) Name() string { return pngName }

// Decode implements ports.Decoder.
func (PNG) Decode(data []byte, cs domain.Colorspace) (*domain.Image, error) {
	if !isPNG(data) {
		return nil, domain.ErrUnsupportedFormat
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode png")
	}
	return toImage(img, cs), nil
}

// JPEG decodes baseline and progressive JPEG images.
type JPEG struct{}

// Name implements ports.Decoder.
func (JPEG) Name() string { return jpegName }

// Decode implements ports.Decoder.
func (JPEG) Decode(data []byte, cs domain.Colorspace) (*domain.Image, error) {
	if !isJPEG(data) {
		return nil, domain.ErrUnsupportedFormat
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode jpeg")
	}
	return toImage(img, cs), nil
}

// QOI decodes Quite OK Image format files.
type QOI struct{}

// Name implements ports.Decoder.
func (QOI) Name() string { return qoiName }

// Decode implements ports.Decoder.
func (QOI) Decode(data []byte, cs domain.Colorspace) (*domain.Image, error) {
	if !isQOI(data) {
		return nil, domain.ErrUnsupportedFormat
	}
	img, err := qoi.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode qoi")
	}
	return toImage(img, cs), nil
}

// WebP decodes lossy and lossless WebP images.
type WebP struct{}

// Name implements ports.Decoder.
func (WebP) Name() string { return webpName }

// Decode implements ports.Decoder.
func (WebP) Decode(data []byte, cs domain.Colorspace) (*domain.Image, error) {
	if !isWebP(data) {
		return nil, domain.ErrUnsupportedFormat
	}
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode webp")
	}
	return toImage(img, cs), nil
}

// toImage converts any decoded image into a tightly packed RGBA buffer.
func toImage(src image.Image, cs domain.Colorspace) *domain.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, w*h*domain.BytesPerPixel)

	if n, ok := src.(*image.NRGBA); ok && n.Stride == w*domain.BytesPerPixel && n.Rect.Min == (image.Point{}) {
		copy(pixels, n.Pix)
	} else {
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, a := src.At(x, y).RGBA()
				pixels[i+0], pixels[i+1], pixels[i+2], pixels[i+3] = unpremultiply(r, g, bl, a)
				i += domain.BytesPerPixel
			}
		}
	}

	format := domain.FormatSRGBA32
	if cs == domain.Linear {
		format = domain.FormatRGBA32
	}
	return &domain.Image{Width: w, Height: h, Format: format, Pixels: pixels}
}

// unpremultiply turns 16-bit alpha-premultiplied channels into 8-bit straight alpha.
func unpremultiply(r, g, b, a uint32) (byte, byte, byte, byte) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	if a == 0xffff {
		return byte(r >> 8), byte(g >> 8), byte(b >> 8), 0xff
	}
	r = (r * 0xffff) / a
	g = (g * 0xffff) / a
	b = (b * 0xffff) / a
	return byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)
}
