package decoder

import (
	"encoding/binary"
	"fmt"
	"strings"

	"go.trai.ch/texcache/internal/core/domain"
)

// Describe summarizes the format of encoded image bytes for failure diagnostics.
// mime is used when the bytes carry no recognizable signature.
func Describe(data []byte, mime string) string {
	switch {
	case isPNG(data):
		return describePNG(data)
	case isJPEG(data):
		return "JPEG"
	case isQOI(data):
		return "QOI"
	case isWebP(data):
		return "WebP"
	}

	switch strings.ToLower(mime) {
	case "image/png":
		return "PNG (bad signature)"
	case "image/jpeg", "image/jpg":
		return "JPEG (bad signature)"
	}
	return "unknown format"
}

// describePNG reads the IHDR chunk, which always directly follows the signature.
func describePNG(data []byte) string {
	const ihdrEnd = 8 + 8 + 13
	if len(data) < ihdrEnd || string(data[12:16]) != "IHDR" {
		return "PNG (truncated header)"
	}

	width := binary.BigEndian.Uint32(data[16:20])
	height := binary.BigEndian.Uint32(data[20:24])
	bitDepth := data[24]

	var colorType string
	switch data[25] {
	case 0:
		colorType = "Grayscale"
	case 2:
		colorType = "RGB"
	case 3:
		colorType = "Indexed"
	case 4:
		colorType = "Grayscale+Alpha"
	case 6:
		colorType = "RGBA"
	default:
		colorType = "Unknown"
	}
	return fmt.Sprintf("PNG %dx%d | %d-bit | %s", width, height, bitDepth, colorType)
}

// Fallback returns the 1x1 magenta image substituted for textures that failed to load.
func Fallback(cs domain.Colorspace) *domain.Image {
	format := domain.FormatSRGBA32
	if cs == domain.Linear {
		format = domain.FormatRGBA32
	}
	return &domain.Image{
		Width:  1,
		Height: 1,
		Format: format,
		Pixels: []byte{0xff, 0x00, 0xff, 0xff},
	}
}
