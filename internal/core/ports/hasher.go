package ports

import "go.trai.ch/texcache/internal/core/domain"

// Hasher derives stable identities from raw bytes.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Digest returns the lower-case hex sha256 of data. Callers never pass empty input.
	Digest(data []byte) string
	// Fingerprint returns the identity hash of an owner's source bytes.
	Fingerprint(data []byte) domain.Fingerprint
	// Checksum returns a fast non-cryptographic checksum of a pixel buffer.
	Checksum(pixels []byte) uint64
}
