// Package contenthash derives content identities for image bytes and owner sources.
package contenthash

import (
	_ "crypto/sha256" // registers sha256 for go-digest

	"github.com/cespare/xxhash/v2"
	"github.com/opencontainers/go-digest"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher implements ports.Hasher with sha256 content digests and xxhash pixel checksums.
type Hasher struct {
	algorithm digest.Algorithm
}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{algorithm: digest.SHA256}
}

// Digest returns the lower-case hex sha256 of data.
func (h *Hasher) Digest(data []byte) string {
	return h.algorithm.FromBytes(data).Encoded()
}

// Fingerprint returns the raw sha256 of an owner's source bytes.
func (h *Hasher) Fingerprint(data []byte) domain.Fingerprint {
	hh := h.algorithm.Hash()
	_, _ = hh.Write(data)
	return domain.Fingerprint(hh.Sum(nil))
}

// Checksum returns the xxhash64 of a decoded pixel buffer.
func (h *Hasher) Checksum(pixels []byte) uint64 {
	return xxhash.Sum64(pixels)
}
