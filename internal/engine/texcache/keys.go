package texcache

import (
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// DeriveKey computes the content key of data decoded in colorspace cs.
func DeriveKey(hasher ports.Hasher, data []byte, cs domain.Colorspace) (domain.ContentKey, error) {
	if len(data) == 0 {
		return domain.ContentKey{}, zerr.Wrap(domain.ErrEmptyImageData, "cannot derive a content key")
	}
	return domain.NewContentKey(cs, len(data), hasher.Digest(data)), nil
}
