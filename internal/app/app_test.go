package app_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texcache/internal/adapters/contenthash"
	"go.trai.ch/texcache/internal/adapters/decoder"
	"go.trai.ch/texcache/internal/adapters/logger"
	"go.trai.ch/texcache/internal/adapters/telemetry"
	"go.trai.ch/texcache/internal/app"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports/mocks"
	"go.trai.ch/texcache/internal/engine/janitor"
	"go.trai.ch/texcache/internal/engine/loader"
	"go.trai.ch/texcache/internal/engine/texcache"
	"go.uber.org/mock/gomock"
)

func encodePNG(t *testing.T, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type fixture struct {
	app     *app.App
	cache   *texcache.Cache
	configs *mocks.MockConfigLoader
}

func newFixture(t *testing.T, cfg domain.LoaderConfig) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := logger.NewFromConfig(domain.LogConfig{Level: "debug"})
	log.SetOutput(io.Discard)
	tracer := telemetry.NewNoOpTracer()
	clock := clockwork.NewFakeClock()

	dec, err := decoder.NewChainByName([]string{"png", "jpeg", "qoi"})
	require.NoError(t, err)

	cache := texcache.New(dec, contenthash.NewHasher(), log, tracer, texcache.WithClock(clock))
	configs := mocks.NewMockConfigLoader(ctrl)
	a := app.New(
		configs,
		loader.New(cache, log, tracer, clock, cfg),
		cache,
		janitor.New(cache, log, clock, 0),
		log,
	)
	return &fixture{app: a, cache: cache, configs: configs}
}

func TestApp_LoadAll_SharesTexturesAcrossAvatars(t *testing.T) {
	f := newFixture(t, domain.LoaderConfig{Parallelism: 2, Fallback: true})

	shared := encodePNG(t, color.NRGBA{R: 200, A: 255})
	unique := encodePNG(t, color.NRGBA{G: 200, A: 255})

	f.configs.EXPECT().LoadManifest("alice.yaml").Return(&domain.AvatarManifest{
		Name:        "alice",
		Fingerprint: domain.Fingerprint("alice"),
		Textures: []domain.TextureSource{
			{Path: "skin.png", Colorspace: domain.SRGB, Data: shared},
			{Path: "normal.png", Colorspace: domain.Linear, Data: shared},
		},
	}, nil)
	f.configs.EXPECT().LoadManifest("bob.yaml").Return(&domain.AvatarManifest{
		Name:        "bob",
		Fingerprint: domain.Fingerprint("bob"),
		Textures: []domain.TextureSource{
			{Path: "skin.png", Colorspace: domain.SRGB, Data: shared},
			{Path: "eyes.png", Colorspace: domain.SRGB, Data: unique},
			{Path: "broken.png", Colorspace: domain.SRGB, Data: []byte("not an image")},
		},
	}, nil)

	result, err := f.app.LoadAll(context.Background(), []string{"alice.yaml", "bob.yaml"}, app.LoadOptions{})
	require.NoError(t, err)

	require.Len(t, result.Avatars, 2)
	alice, bob := result.Avatars[0], result.Avatars[1]
	assert.Equal(t, alice.Textures[0].Texture.ID, bob.Textures[0].Texture.ID)
	assert.NotEqual(t, alice.Textures[0].Key, alice.Textures[1].Key)
	assert.Equal(t, 1, bob.Fallbacks())

	assert.Equal(t, 3, result.Loaded.Textures)
	assert.Equal(t, 2, result.Loaded.Owners)
	assert.Equal(t, uint64(1), result.Loaded.Hits)
	assert.Equal(t, uint64(1), result.Loaded.DecodeFailures)
	require.Len(t, result.Owners, 2)
	assert.Equal(t, 2, result.Owners[1].Keys)

	assert.Equal(t, 3, result.Evicted)
	assert.Equal(t, 0, result.Final.Textures)
	assert.Equal(t, 0, result.Final.Owners)
}

func TestApp_LoadAll_Keep(t *testing.T) {
	f := newFixture(t, domain.LoaderConfig{Parallelism: 1})

	f.configs.EXPECT().LoadManifest("alice.yaml").Return(&domain.AvatarManifest{
		Name:        "alice",
		Fingerprint: domain.Fingerprint("alice"),
		Textures: []domain.TextureSource{
			{Path: "skin.png", Data: encodePNG(t, color.NRGBA{B: 10, A: 255})},
		},
	}, nil)

	result, err := f.app.LoadAll(context.Background(), []string{"alice.yaml"}, app.LoadOptions{Keep: true})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Evicted)
	assert.Equal(t, 1, result.Final.Textures)
	assert.Equal(t, 1, f.cache.Stats().Owners)
}

func TestApp_LoadAll_ManifestErrorLoadsNothing(t *testing.T) {
	f := newFixture(t, domain.LoaderConfig{Parallelism: 1})

	f.configs.EXPECT().LoadManifest("alice.yaml").Return(&domain.AvatarManifest{
		Name:        "alice",
		Fingerprint: domain.Fingerprint("alice"),
		Textures: []domain.TextureSource{
			{Path: "skin.png", Data: encodePNG(t, color.NRGBA{R: 1, A: 255})},
		},
	}, nil)
	f.configs.EXPECT().LoadManifest("broken.yaml").Return(nil, domain.ErrInvalidManifest)

	_, err := f.app.LoadAll(context.Background(), []string{"alice.yaml", "broken.yaml"}, app.LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidManifest)

	stats := f.cache.Stats()
	assert.Equal(t, 0, stats.Owners)
	assert.Equal(t, 0, stats.Textures)
}

func TestApp_LoadAll_LoadErrorUnloadsPreviousAvatars(t *testing.T) {
	f := newFixture(t, domain.LoaderConfig{Parallelism: 1})

	alice := &domain.AvatarManifest{
		Name:        "alice",
		Fingerprint: domain.Fingerprint("alice"),
		Textures: []domain.TextureSource{
			{Path: "skin.png", Data: encodePNG(t, color.NRGBA{R: 2, A: 255})},
		},
	}
	f.configs.EXPECT().LoadManifest("alice.yaml").Return(alice, nil)
	f.configs.EXPECT().LoadManifest("alice-again.yaml").Return(alice, nil)

	_, err := f.app.LoadAll(context.Background(), []string{"alice.yaml", "alice-again.yaml"}, app.LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOwnerAlreadyRegistered)

	stats := f.cache.Stats()
	assert.Equal(t, 0, stats.Owners)
	assert.Equal(t, 0, stats.Textures)
}

func TestApp_LoadAll_NoManifests(t *testing.T) {
	f := newFixture(t, domain.LoaderConfig{Parallelism: 1})

	_, err := f.app.LoadAll(context.Background(), nil, app.LoadOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidManifest)
}

func TestApp_LoadAll_LoadsAvatarsConcurrently(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)

		log := logger.NewFromConfig(domain.LogConfig{Level: "debug"})
		log.SetOutput(io.Discard)
		tracer := telemetry.NewNoOpTracer()
		clock := clockwork.NewFakeClock()

		// Each decode waits for the other avatar's decode, so a sequential run never finishes.
		var both sync.WaitGroup
		both.Add(2)
		dec := mocks.NewMockDecoder(ctrl)
		dec.EXPECT().Name().Return("mock").AnyTimes()
		dec.EXPECT().Decode(gomock.Any(), gomock.Any()).DoAndReturn(func([]byte, domain.Colorspace) (*domain.Image, error) {
			both.Done()
			both.Wait()
			return &domain.Image{Width: 1, Height: 1, Format: domain.FormatSRGBA32, Pixels: []byte{1, 2, 3, 4}}, nil
		}).Times(2)

		cache := texcache.New(dec, contenthash.NewHasher(), log, tracer, texcache.WithClock(clock))
		configs := mocks.NewMockConfigLoader(ctrl)
		for _, name := range []string{"alice", "bob"} {
			configs.EXPECT().LoadManifest(name+".yaml").Return(&domain.AvatarManifest{
				Name:        name,
				Fingerprint: domain.Fingerprint(name),
				Textures:    []domain.TextureSource{{Path: "skin.png", Data: []byte(name + "-skin")}},
			}, nil)
		}

		a := app.New(
			configs,
			loader.New(cache, log, tracer, clock, domain.LoaderConfig{Parallelism: 2}),
			cache,
			janitor.New(cache, log, clock, 0),
			log,
		)

		result, err := a.LoadAll(context.Background(), []string{"alice.yaml", "bob.yaml"}, app.LoadOptions{})
		require.NoError(t, err)

		require.Len(t, result.Avatars, 2)
		assert.Equal(t, "alice", result.Avatars[0].Avatar)
		assert.Equal(t, "bob", result.Avatars[1].Avatar)
		assert.Equal(t, 2, result.Loaded.Textures)
		assert.Equal(t, 2, result.Evicted)
	})
}
