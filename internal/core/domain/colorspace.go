package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Colorspace describes how the texel values of an image are interpreted.
type Colorspace uint8

const (
	// SRGB marks color data stored with the non-linear sRGB transfer curve.
	SRGB Colorspace = iota
	// Linear marks data that must be sampled without gamma conversion (normal maps, masks).
	Linear
)

// String returns the canonical lower-case name used inside content keys.
func (c Colorspace) String() string {
	if c == Linear {
		return "linear"
	}
	return "srgb"
}

// ParseColorspace parses a colorspace name. The empty string defaults to SRGB.
func ParseColorspace(s string) (Colorspace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "srgb", "standardrgb", "standard_rgb":
		return SRGB, nil
	case "linear":
		return Linear, nil
	default:
		return SRGB, zerr.With(zerr.Wrap(ErrInvalidColorspace, "failed to parse colorspace"), "colorspace", s)
	}
}
