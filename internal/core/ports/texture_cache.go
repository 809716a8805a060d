package ports

import (
	"context"

	"go.trai.ch/texcache/internal/core/domain"
)

// TextureCache is the single synchronized entry point to the content-addressed texture cache.
//
//go:generate mockgen -source=texture_cache.go -destination=mocks/mock_texture_cache.go -package=mocks
type TextureCache interface {
	// GetOrCreate returns the cached texture for data in colorspace cs, decoding it on a miss.
	GetOrCreate(ctx context.Context, data []byte, cs domain.Colorspace) (domain.Texture, domain.ContentKey, error)

	// RecordInstanceMapping aliases a texture handle to the key it was cached under.
	RecordInstanceMapping(id domain.HandleID, key domain.ContentKey) error

	// LookupKey returns the key previously recorded for a handle.
	LookupKey(id domain.HandleID) (domain.ContentKey, bool)

	// Resolve returns the pixels of a live texture. It reports false once the texture was swept.
	Resolve(id domain.HandleID) (domain.Image, bool)

	// RegisterOwner starts tracking an owner.
	RegisterOwner(ownerID string, fingerprint domain.Fingerprint) error

	// LinkResourceToOwner records that the owner references key.
	// It returns the texture live under key at link time and true when the link is new.
	LinkResourceToOwner(ownerID string, fingerprint domain.Fingerprint, key domain.ContentKey) (domain.Texture, bool, error)

	// UnregisterOwner drops the owner and its references. Textures are kept until the next sweep.
	UnregisterOwner(ownerID string, fingerprint domain.Fingerprint) error

	// SweepUnused destroys every texture no owner references and returns how many were destroyed.
	SweepUnused(ctx context.Context) int

	// Stats returns a snapshot of the cache.
	Stats() domain.CacheStats

	// Owners lists the registered owners ordered by id.
	Owners() []domain.OwnerSummary
}
