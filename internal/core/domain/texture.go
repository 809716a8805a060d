package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// HandleID is the opaque identifier of a live texture inside the cache.
type HandleID = uuid.UUID

// NewHandleID allocates a fresh random handle identifier.
func NewHandleID() HandleID {
	return uuid.New()
}

// TextureInfo is descriptive metadata kept next to every cached texture.
type TextureInfo struct {
	Width      int
	Height     int
	Format     PixelFormat
	Colorspace Colorspace
	// SourceSize is the length of the encoded bytes the texture was decoded from.
	SourceSize int
	// Checksum is an xxhash of the decoded pixels.
	Checksum uint64
}

func (i TextureInfo) String() string {
	return fmt.Sprintf("(%dx%d, %s, %s, %d bytes)", i.Width, i.Height, i.Format, i.Colorspace, i.SourceSize)
}

// Texture is the borrowed view of a cached resource. It never owns the pixel data:
// pixels are reached through the cache, which is the only place a texture is destroyed.
type Texture struct {
	ID   HandleID
	Key  ContentKey
	Info TextureInfo
}

// IsZero reports whether t refers to no texture.
func (t Texture) IsZero() bool {
	return t.ID == uuid.Nil
}
