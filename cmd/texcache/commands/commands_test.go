package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texcache/cmd/texcache/commands"
	"go.trai.ch/texcache/internal/adapters/config"
	"go.trai.ch/texcache/internal/app"
	"go.trai.ch/texcache/internal/build"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/engine/loader"
)

type mockApp struct {
	loadFunc func(ctx context.Context, paths []string, opts app.LoadOptions) (*app.LoadResult, error)
}

func (m *mockApp) LoadAll(ctx context.Context, paths []string, opts app.LoadOptions) (*app.LoadResult, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, paths, opts)
	}
	return &app.LoadResult{}, nil
}

func provide(a commands.Application) commands.Provider {
	return func(context.Context) (commands.Application, error) {
		return a, nil
	}
}

func sampleResult() *app.LoadResult {
	key := domain.NewContentKey(domain.SRGB, 68, "0123456789abcdef0123456789abcdef")
	return &app.LoadResult{
		Avatars: []*loader.Report{{
			Avatar:   "alice",
			Duration: 12 * time.Millisecond,
			Textures: []loader.TextureResult{
				{
					Path:    "skin.png",
					Key:     key,
					NewLink: true,
					Texture: domain.Texture{
						ID:   domain.NewHandleID(),
						Key:  key,
						Info: domain.TextureInfo{Width: 2, Height: 2, Colorspace: domain.SRGB, SourceSize: 68},
					},
				},
				{
					Path:     "hair.png",
					Format:   "PNG 2x2 | 16-bit | RGBA",
					Fallback: &domain.Image{Width: 1, Height: 1},
				},
			},
		}},
		Loaded:  domain.CacheStats{Textures: 1, Owners: 1, Aliases: 1, PixelBytes: 2048, Hits: 1, Misses: 1},
		Evicted: 1,
	}
}

func TestCommands_Load(t *testing.T) {
	t.Run("passes manifests and config path", func(t *testing.T) {
		var capturedPaths []string
		var capturedConfig string
		var capturedOpts app.LoadOptions

		mock := &mockApp{
			loadFunc: func(_ context.Context, paths []string, opts app.LoadOptions) (*app.LoadResult, error) {
				capturedPaths = paths
				capturedOpts = opts
				return sampleResult(), nil
			},
		}
		provider := func(ctx context.Context) (commands.Application, error) {
			capturedConfig = config.PathFromContext(ctx)
			return mock, nil
		}

		cli := commands.New(provider)
		out := new(bytes.Buffer)
		cli.SetOutput(out, out)
		cli.SetArgs([]string{"load", "-c", "custom.yaml", "--keep", "alice.yaml", "bob.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"alice.yaml", "bob.yaml"}, capturedPaths)
		assert.Equal(t, "custom.yaml", capturedConfig)
		assert.True(t, capturedOpts.Keep)
	})

	t.Run("renders the report", func(t *testing.T) {
		mock := &mockApp{
			loadFunc: func(context.Context, []string, app.LoadOptions) (*app.LoadResult, error) {
				return sampleResult(), nil
			},
		}

		cli := commands.New(provide(mock))
		out := new(bytes.Buffer)
		cli.SetOutput(out, out)
		cli.SetArgs([]string{"load", "alice.yaml"})

		require.NoError(t, cli.Execute(context.Background()))

		report := out.String()
		assert.Contains(t, report, "alice")
		assert.Contains(t, report, "1/2 textures")
		assert.Contains(t, report, "srgb|68|0123456789ab")
		assert.NotContains(t, report, "0123456789abcdef0123")
		assert.Contains(t, report, "fallback texture (PNG 2x2 | 16-bit | RGBA)")
		assert.Contains(t, report, "2.0 KiB")
		assert.Contains(t, report, "reuse 50%")
		assert.Contains(t, report, "unloaded 1 avatars, swept 1 textures, 0 remain")
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		mock := &mockApp{
			loadFunc: func(context.Context, []string, app.LoadOptions) (*app.LoadResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(provide(mock))
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"load", "alice.yaml"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("returns provider error", func(t *testing.T) {
		cli := commands.New(func(context.Context) (commands.Application, error) {
			return nil, domain.ErrInvalidConfig
		})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"load", "alice.yaml"})

		assert.ErrorIs(t, cli.Execute(context.Background()), domain.ErrInvalidConfig)
	})

	t.Run("shows usage when no manifests provided", func(t *testing.T) {
		cli := commands.New(func(context.Context) (commands.Application, error) {
			panic("should not be called")
		})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"load"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(provide(&mockApp{}))
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "texcache version "+build.Version)
}
