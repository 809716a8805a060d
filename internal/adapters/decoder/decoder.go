// Package decoder implements image decoding strategies and the ordered chain that tries them.
package decoder

import (
	"errors"
	"strings"

	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Decoder = (*Chain)(nil)

// Chain tries each strategy in order and returns the first decoded image.
// Strategies that do not recognize the bytes are skipped.
type Chain struct {
	strategies []ports.Decoder
}

// NewChain creates a chain over the given strategies, tried in order.
func NewChain(strategies ...ports.Decoder) *Chain {
	return &Chain{strategies: strategies}
}

// NewChainByName builds a chain from strategy names such as "png" or "qoi".
func NewChainByName(names []string) (*Chain, error) {
	if len(names) == 0 {
		return nil, zerr.Wrap(domain.ErrInvalidConfig, "no decoders configured")
	}

	strategies := make([]ports.Decoder, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if seen[name] {
			continue
		}
		seen[name] = true

		strategy, ok := lookup(name)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown decoder"), "decoder", name)
		}
		strategies = append(strategies, strategy)
	}
	return NewChain(strategies...), nil
}

func lookup(name string) (ports.Decoder, bool) {
	switch name {
	case pngName:
		return PNG{}, true
	case jpegName, "jpg":
		return JPEG{}, true
	case qoiName:
		return QOI{}, true
	case webpName:
		return WebP{}, true
	default:
		return nil, false
	}
}

// Name lists the strategies in the order they are tried.
func (c *Chain) Name() string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Decode runs the strategies in order.
func (c *Chain) Decode(data []byte, cs domain.Colorspace) (*domain.Image, error) {
	var errs error
	for _, s := range c.strategies {
		img, err := s.Decode(data, cs)
		if err == nil {
			return img, nil
		}
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			continue
		}
		errs = errors.Join(errs, zerr.With(err, "decoder", s.Name()))
	}

	if errs != nil {
		return nil, errs
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "no decoder recognized the image"), "format", Describe(data, ""))
}
