package texcache

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texcache/internal/adapters/contenthash"
	"go.trai.ch/texcache/internal/adapters/logger"
	"go.trai.ch/texcache/internal/adapters/telemetry"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestDecodeCoalesced_LostRaceCountsAsHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	dec := mocks.NewMockDecoder(ctrl)
	dec.EXPECT().Name().Return("mock").AnyTimes()

	data := []byte("body-texture-bytes")
	hasher := contenthash.NewHasher()
	key, err := DeriveKey(hasher, data, domain.SRGB)
	require.NoError(t, err)

	img := domain.Image{Width: 1, Height: 1, Format: domain.FormatSRGBA32, Pixels: []byte{1, 2, 3, 4}}
	rival := &entry{id: domain.NewHandleID(), key: key, image: img}

	var discarded []domain.HandleID
	log := logger.NewFromConfig(domain.LogConfig{Level: "debug"})
	log.SetOutput(io.Discard)
	c := New(dec, hasher, log, telemetry.NewNoOpTracer(), WithEvictHook(func(tex domain.Texture, _ domain.Image) {
		discarded = append(discarded, tex.ID)
	}))

	// Another writer stores the key while the decode runs outside the lock.
	dec.EXPECT().Decode(data, domain.SRGB).DoAndReturn(func([]byte, domain.Colorspace) (*domain.Image, error) {
		c.mu.Lock()
		c.res.put(rival)
		c.mu.Unlock()
		out := img
		return &out, nil
	})

	tex, _, err := c.GetOrCreate(context.Background(), data, domain.SRGB)
	require.NoError(t, err)
	assert.Equal(t, rival.id, tex.ID)

	require.Len(t, discarded, 1)
	assert.NotEqual(t, rival.id, discarded[0])

	stats := c.Stats()
	assert.Equal(t, 1, stats.Textures)
	assert.Equal(t, uint64(0), stats.Misses)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, int64(4), stats.PixelBytes)
}
