// Package loader drives the cache for whole avatars: it registers the avatar as an owner,
// resolves every embedded image through the cache and links the results to the avatar.
package loader

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/texcache/internal/adapters/decoder" //nolint:depguard // Format diagnostics and fallback image
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxAttempts bounds how often a texture is re-resolved after a concurrent sweep
// evicted it between get-or-create and link.
const maxAttempts = 3

// Loader loads and unloads avatars.
type Loader struct {
	cache  ports.TextureCache
	logger ports.Logger
	tracer ports.Tracer
	clock  clockwork.Clock
	cfg    domain.LoaderConfig
}

// New creates a Loader.
func New(
	cache ports.TextureCache,
	logger ports.Logger,
	tracer ports.Tracer,
	clock clockwork.Clock,
	cfg domain.LoaderConfig,
) *Loader {
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	return &Loader{
		cache:  cache,
		logger: logger,
		tracer: tracer,
		clock:  clock,
		cfg:    cfg,
	}
}

// Parallelism is the number of textures, and of avatars, loaded at once.
func (l *Loader) Parallelism() int {
	return l.cfg.Parallelism
}

// Load registers the avatar and resolves its images. Images that fail to decode are reported
// in the result, replaced by the fallback texture when enabled; they never fail the load.
// Any other failure unregisters the avatar again.
func (l *Loader) Load(ctx context.Context, m *domain.AvatarManifest) (*Report, error) {
	ctx, span := l.tracer.Start(ctx, "loader.load",
		ports.WithAttribute("avatar", m.Name),
		ports.WithAttribute("textures", len(m.Textures)),
	)
	defer span.End()

	start := l.clock.Now()
	if err := l.cache.RegisterOwner(m.Name, m.Fingerprint); err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, "failed to register avatar"), "avatar", m.Name)
	}

	results := make([]TextureResult, len(m.Textures))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.Parallelism)

	for i, src := range m.Textures {
		g.Go(func() error {
			res, err := l.loadTexture(gctx, m, src)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		if uerr := l.cache.UnregisterOwner(m.Name, m.Fingerprint); uerr != nil {
			l.logger.Error(uerr)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to load avatar"), "avatar", m.Name)
	}

	report := &Report{
		Avatar:      m.Name,
		Fingerprint: m.Fingerprint,
		Textures:    results,
		Duration:    l.clock.Since(start),
	}
	l.logger.Info("loaded avatar",
		"avatar", m.Name,
		"textures", report.Loaded(),
		"of", len(results),
		"new_links", report.NewLinks(),
		"fallbacks", report.Fallbacks(),
		"duration", report.Duration.String(),
	)
	return report, nil
}

func (l *Loader) loadTexture(ctx context.Context, m *domain.AvatarManifest, src domain.TextureSource) (TextureResult, error) {
	res := TextureResult{Path: src.Path}

	for attempt := 1; ; attempt++ {
		_, key, err := l.cache.GetOrCreate(ctx, src.Data, src.Colorspace)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			return l.failed(m, src, err), nil
		}

		// A sweep may evict the texture before the link. The key is then unknown, or it was
		// decoded again under a new handle; the link reports whichever texture is live.
		tex, added, err := l.cache.LinkResourceToOwner(m.Name, m.Fingerprint, key)
		if errors.Is(err, domain.ErrUnknownKey) && attempt < maxAttempts {
			l.logger.Debug("texture evicted before link, retrying", "avatar", m.Name, "path", src.Path)
			continue
		}
		if err != nil {
			return res, zerr.With(zerr.Wrap(err, "failed to link texture"), "path", src.Path)
		}

		res.Texture = tex
		res.Key = key
		res.NewLink = added
		res.Instance = domain.NewHandleID()
		if err := l.cache.RecordInstanceMapping(res.Instance, key); err != nil {
			return res, zerr.With(zerr.Wrap(err, "failed to alias texture"), "path", src.Path)
		}
		return res, nil
	}
}

func (l *Loader) failed(m *domain.AvatarManifest, src domain.TextureSource, err error) TextureResult {
	res := TextureResult{
		Path:   src.Path,
		Format: decoder.Describe(src.Data, src.MimeType),
		Err:    err,
	}
	l.logger.Warn("failed to load texture",
		"avatar", m.Name,
		"path", src.Path,
		"format", res.Format,
		"error", err,
	)
	if l.cfg.Fallback {
		res.Fallback = decoder.Fallback(src.Colorspace)
	}
	return res
}

// Unload unregisters the avatar. With sweep-on-unload enabled it then sweeps and returns the
// number of evicted textures.
func (l *Loader) Unload(ctx context.Context, name string, fp domain.Fingerprint) (int, error) {
	if err := l.cache.UnregisterOwner(name, fp); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to unload avatar"), "avatar", name)
	}
	if !l.cfg.SweepOnUnload {
		return 0, nil
	}
	return l.cache.SweepUnused(ctx), nil
}
