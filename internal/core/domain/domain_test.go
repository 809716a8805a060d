package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texcache/internal/core/domain"
)

func TestContentKey(t *testing.T) {
	srgb := domain.NewContentKey(domain.SRGB, 42, "deadbeef")
	linear := domain.NewContentKey(domain.Linear, 42, "deadbeef")

	assert.Equal(t, "srgb|42|deadbeef", srgb.String())
	assert.Equal(t, "linear|42|deadbeef", linear.String())
	assert.NotEqual(t, srgb, linear)
	assert.Equal(t, srgb, domain.NewContentKey(domain.SRGB, 42, "deadbeef"))

	assert.False(t, srgb.IsZero())
	assert.True(t, domain.ContentKey{}.IsZero())

	seen := map[domain.ContentKey]int{srgb: 1}
	seen[domain.NewContentKey(domain.SRGB, 42, "deadbeef")]++
	assert.Equal(t, 2, seen[srgb])
}

func TestParseColorspace(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Colorspace
		wantErr bool
	}{
		{in: "", want: domain.SRGB},
		{in: "srgb", want: domain.SRGB},
		{in: "StandardRGB", want: domain.SRGB},
		{in: " linear ", want: domain.Linear},
		{in: "LINEAR", want: domain.Linear},
		{in: "cmyk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseColorspace(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidColorspace)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := domain.Fingerprint{0x01, 0x02}

	assert.True(t, a.Equal(domain.Fingerprint{0x01, 0x02}))
	assert.False(t, a.Equal(domain.Fingerprint{0x01, 0x03}))
	assert.False(t, a.Equal(domain.Fingerprint{0x01}))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, "0102", a.String())
}

func TestTexture(t *testing.T) {
	assert.True(t, domain.Texture{}.IsZero())
	assert.False(t, domain.Texture{ID: domain.NewHandleID()}.IsZero())

	info := domain.TextureInfo{Width: 2, Height: 3, Format: domain.FormatRGBA32, Colorspace: domain.Linear, SourceSize: 10}
	assert.Equal(t, "(2x3, RGBA32, linear, 10 bytes)", info.String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, domain.DecodeUnlocked, cfg.Cache.DecodePolicy)
	assert.Zero(t, cfg.Cache.UnlinkedTTL)
	assert.Positive(t, cfg.Loader.Parallelism)
	assert.True(t, cfg.Loader.Fallback)
	assert.Equal(t, []string{"png", "jpeg", "qoi"}, cfg.Decoders)
}
