package loader

import (
	"time"

	"go.trai.ch/texcache/internal/core/domain"
)

// TextureResult is the outcome of loading one embedded image.
type TextureResult struct {
	Path string
	// Texture is zero when the image failed to load.
	Texture domain.Texture
	Key     domain.ContentKey
	// Instance is the per-avatar handle aliased to Key.
	Instance domain.HandleID
	// NewLink reports whether this avatar linked the key for the first time.
	NewLink bool
	// Fallback holds the substitute image when decoding failed and fallback is enabled.
	Fallback *domain.Image
	// Format describes the source bytes of a failed image.
	Format string
	Err    error
}

// Failed reports whether the image could not be decoded.
func (r TextureResult) Failed() bool {
	return r.Texture.IsZero()
}

// Report summarizes one avatar load.
type Report struct {
	Avatar      string
	Fingerprint domain.Fingerprint
	Textures    []TextureResult
	Duration    time.Duration
}

// Loaded returns the number of images resolved to a cached texture.
func (r *Report) Loaded() int {
	n := 0
	for _, t := range r.Textures {
		if !t.Failed() {
			n++
		}
	}
	return n
}

// NewLinks returns the number of distinct keys the avatar links.
func (r *Report) NewLinks() int {
	n := 0
	for _, t := range r.Textures {
		if t.NewLink {
			n++
		}
	}
	return n
}

// Fallbacks returns the number of images replaced by the fallback texture.
func (r *Report) Fallbacks() int {
	n := 0
	for _, t := range r.Textures {
		if t.Fallback != nil {
			n++
		}
	}
	return n
}
