// Package app implements the application layer for texcache.
package app

import (
	"context"
	"slices"

	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/texcache/internal/engine/janitor"
	"go.trai.ch/texcache/internal/engine/loader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// LoadOptions controls a LoadAll run.
type LoadOptions struct {
	// Keep leaves the avatars registered instead of unloading and sweeping them at the end.
	Keep bool
}

// LoadResult summarizes a LoadAll run.
type LoadResult struct {
	Avatars []*loader.Report
	// Loaded is the cache state once every avatar was loaded.
	Loaded domain.CacheStats
	Owners []domain.OwnerSummary
	// Evicted is the number of textures swept after the avatars were unloaded.
	Evicted int
	// Final is the cache state at the end of the run.
	Final domain.CacheStats
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	loader       *loader.Loader
	cache        ports.TextureCache
	janitor      *janitor.Janitor
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	avatarLoader *loader.Loader,
	cache ports.TextureCache,
	jan *janitor.Janitor,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		loader:       avatarLoader,
		cache:        cache,
		janitor:      jan,
		logger:       logger,
	}
}

// LoadAll loads every avatar manifest as one owner of the shared cache while the janitor
// sweeps in the background, then unloads them again unless opts.Keep is set.
func (a *App) LoadAll(ctx context.Context, paths []string, opts LoadOptions) (*LoadResult, error) {
	if len(paths) == 0 {
		return nil, zerr.Wrap(domain.ErrInvalidManifest, "no avatar manifests given")
	}

	runCtx, stop := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return a.janitor.Run(gctx)
	})

	result, err := a.loadAll(gctx, paths, opts)
	stop()
	if werr := g.Wait(); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// loadAll parses every manifest first, so a broken one fails the run before any avatar
// touches the cache. The avatars are then loaded concurrently.
func (a *App) loadAll(ctx context.Context, paths []string, opts LoadOptions) (*LoadResult, error) {
	manifests := make([]*domain.AvatarManifest, len(paths))
	for i, path := range paths {
		manifest, err := a.configLoader.LoadManifest(path)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load avatar manifest")
		}
		manifests[i] = manifest
	}

	reports := make([]*loader.Report, len(manifests))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.loader.Parallelism())
	for i, manifest := range manifests {
		g.Go(func() error {
			report, err := a.loader.Load(gctx, manifest)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.unloadAll(ctx, slices.DeleteFunc(reports, func(r *loader.Report) bool { return r == nil }))
		return nil, err
	}

	result := &LoadResult{Avatars: reports}
	result.Loaded = a.cache.Stats()
	result.Owners = a.cache.Owners()

	if !opts.Keep {
		result.Evicted = a.unloadAll(ctx, result.Avatars)
	}
	result.Final = a.cache.Stats()
	return result, nil
}

// unloadAll unregisters the given avatars and sweeps. It returns the number of evicted textures.
func (a *App) unloadAll(ctx context.Context, reports []*loader.Report) int {
	evicted := 0
	for _, r := range reports {
		n, err := a.loader.Unload(ctx, r.Avatar, r.Fingerprint)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		evicted += n
	}
	return evicted + a.cache.SweepUnused(ctx)
}
