package ports

import "go.trai.ch/texcache/internal/core/domain"

// Decoder turns encoded image bytes into a decoded image.
//
//go:generate mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks
type Decoder interface {
	// Name identifies the decoding strategy in logs and errors.
	Name() string
	// Decode decodes data for sampling in the given colorspace.
	// It returns domain.ErrUnsupportedFormat when the bytes are not in its format.
	Decode(data []byte, cs domain.Colorspace) (*domain.Image, error)
}
