package contenthash_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/texcache/internal/adapters/contenthash"
)

func TestHasher_Digest(t *testing.T) {
	h := contenthash.NewHasher()
	data := []byte("texture bytes")

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])

	assert.Equal(t, want, h.Digest(data))
	assert.Equal(t, h.Digest(data), h.Digest(append([]byte(nil), data...)), "digest must be deterministic")
	assert.NotEqual(t, h.Digest(data), h.Digest([]byte("texture bytez")))
	assert.Len(t, h.Digest(data), 64)
}

func TestHasher_Fingerprint(t *testing.T) {
	h := contenthash.NewHasher()
	data := []byte("avatar source")

	sum := sha256.Sum256(data)
	fp := h.Fingerprint(data)

	assert.Equal(t, sum[:], []byte(fp))
	assert.True(t, fp.Equal(h.Fingerprint(data)))
	assert.False(t, fp.Equal(h.Fingerprint([]byte("other avatar"))))
	assert.Equal(t, hex.EncodeToString(sum[:]), fp.String())
}

func TestHasher_Checksum(t *testing.T) {
	h := contenthash.NewHasher()
	pixels := []byte{255, 0, 255, 255}

	assert.Equal(t, xxhash.Sum64(pixels), h.Checksum(pixels))
	assert.NotEqual(t, h.Checksum(pixels), h.Checksum([]byte{0, 0, 0, 255}))
}
