// Package texcache implements the content-addressed texture cache with ownership-scoped
// reference counting.
package texcache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.TextureCache = (*Cache)(nil)

// Cache is the single entry point to the resource cache and the ownership tracker.
// Every operation runs under one mutex, so the two never disagree.
type Cache struct {
	decoder ports.Decoder
	hasher  ports.Hasher
	logger  ports.Logger
	tracer  ports.Tracer

	clock       clockwork.Clock
	policy      domain.DecodePolicy
	unlinkedTTL time.Duration
	onEvict     EvictFunc

	flights singleflight.Group

	mu        sync.Mutex
	res       *resources
	own       *ownership
	hits      uint64
	misses    uint64
	failures  uint64
	evictions uint64
}

// New creates an empty Cache.
func New(
	decoder ports.Decoder,
	hasher ports.Hasher,
	logger ports.Logger,
	tracer ports.Tracer,
	opts ...Option,
) *Cache {
	c := &Cache{
		decoder: decoder,
		hasher:  hasher,
		logger:  logger,
		tracer:  tracer,
		clock:   clockwork.NewRealClock(),
		policy:  domain.DecodeUnlocked,
		res:     newResources(),
		own:     newOwnership(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCreate returns the texture cached for data in colorspace cs, decoding and storing it
// on a miss. A failed decode stores nothing, so a later call retries.
func (c *Cache) GetOrCreate(
	ctx context.Context,
	data []byte,
	cs domain.Colorspace,
) (domain.Texture, domain.ContentKey, error) {
	key, err := DeriveKey(c.hasher, data, cs)
	if err != nil {
		c.logger.Warn("rejected texture request", "reason", "empty image data")
		return domain.Texture{}, domain.ContentKey{}, err
	}

	c.mu.Lock()
	if e, ok := c.hit(key); ok {
		c.hits++
		tex := e.view()
		c.mu.Unlock()
		c.logger.Debug("texture cache hit", "content_key", key.String(), "info", tex.Info.String())
		return tex, key, nil
	}

	if c.policy == domain.DecodeLocked {
		defer c.mu.Unlock()
		tex, err := c.decodeAndStoreLocked(ctx, key, data, cs)
		return tex, key, err
	}
	c.mu.Unlock()

	tex, err := c.decodeCoalesced(ctx, key, data, cs)
	return tex, key, err
}

// hit looks key up and restarts the unlinked TTL of a never-linked entry.
func (c *Cache) hit(key domain.ContentKey) (*entry, bool) {
	e, ok := c.res.get(key)
	if ok && !e.linked {
		e.createdAt = c.clock.Now()
	}
	return e, ok
}

func (c *Cache) decodeAndStoreLocked(
	ctx context.Context,
	key domain.ContentKey,
	data []byte,
	cs domain.Colorspace,
) (domain.Texture, error) {
	e, err := c.decode(ctx, key, data, cs)
	if err != nil {
		c.failures++
		return domain.Texture{}, err
	}

	c.misses++
	stored, _ := c.res.put(e)
	c.logger.Debug("texture cache miss", "content_key", key.String(), "info", e.info.String())
	return stored.view(), nil
}

// decodeCoalesced decodes without holding the lock. Concurrent misses for one key share a
// single decode; a result that loses to an entry stored meanwhile is handed to the evict hook.
func (c *Cache) decodeCoalesced(
	ctx context.Context,
	key domain.ContentKey,
	data []byte,
	cs domain.Colorspace,
) (domain.Texture, error) {
	leader := false
	ch := c.flights.DoChan(key.String(), func() (any, error) {
		c.mu.Lock()
		if e, ok := c.hit(key); ok {
			tex := e.view()
			c.mu.Unlock()
			return tex, nil
		}
		c.mu.Unlock()

		leader = true
		e, err := c.decode(ctx, key, data, cs)

		c.mu.Lock()
		if err != nil {
			c.failures++
			c.mu.Unlock()
			return nil, err
		}
		stored, ok := c.res.put(e)
		if ok {
			c.misses++
		} else {
			c.hits++
		}
		c.mu.Unlock()

		if !ok {
			c.logger.Debug("discarding duplicate decode", "content_key", key.String())
			c.evict(e)
		} else {
			c.logger.Debug("texture cache miss", "content_key", key.String(), "info", e.info.String())
		}
		return stored.view(), nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return domain.Texture{}, r.Err
		}
		if !leader {
			c.mu.Lock()
			c.hits++
			c.mu.Unlock()
		}
		return r.Val.(domain.Texture), nil
	case <-ctx.Done():
		return domain.Texture{}, zerr.With(zerr.Wrap(ctx.Err(), "waiting for texture decode"), "content_key", key.String())
	}
}

func (c *Cache) decode(ctx context.Context, key domain.ContentKey, data []byte, cs domain.Colorspace) (*entry, error) {
	_, span := c.tracer.Start(ctx, "texcache.decode",
		ports.WithAttribute("content_key", key.String()),
		ports.WithAttribute("decoder", c.decoder.Name()),
	)
	defer span.End()

	img, err := c.decoder.Decode(data, cs)
	if err == nil && (img == nil || img.Size() == 0) {
		err = zerr.New("decoder returned no pixels")
	}
	if err != nil {
		err = zerr.With(zerr.With(zerr.Wrap(errors.Join(domain.ErrDecodeFailed, err), "texture decode failed"),
			"content_key", key.String()), "decoder", c.decoder.Name())
		span.RecordError(err)
		c.logger.Warn("texture decode failed", "content_key", key.String(), "error", err)
		return nil, err
	}

	info := domain.TextureInfo{
		Width:      img.Width,
		Height:     img.Height,
		Format:     img.Format,
		Colorspace: cs,
		SourceSize: len(data),
		Checksum:   c.hasher.Checksum(img.Pixels),
	}
	span.SetAttribute("width", img.Width)
	span.SetAttribute("height", img.Height)

	return &entry{
		id:        domain.NewHandleID(),
		key:       key,
		image:     *img,
		info:      info,
		createdAt: c.clock.Now(),
	}, nil
}

// RecordInstanceMapping aliases id to key. Recording the same handle again overwrites
// the previous mapping.
func (c *Cache) RecordInstanceMapping(id domain.HandleID, key domain.ContentKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.res.get(key); !ok {
		err := zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownKey, "cannot alias a handle to an unknown key"),
			"handle_id", id.String()), "content_key", key.String())
		c.logger.Warn("rejected instance mapping", "handle_id", id.String(), "content_key", key.String())
		return err
	}
	c.res.alias(id, key)
	return nil
}

// LookupKey returns the key recorded for id by RecordInstanceMapping.
func (c *Cache) LookupKey(id domain.HandleID) (domain.ContentKey, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.res.lookup(id)
}

// Resolve returns the pixels behind a texture handle or a recorded alias.
// The returned image shares its buffer with the cache and must not be modified.
func (c *Cache) Resolve(id domain.HandleID) (domain.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.res.resolve(id)
	if !ok {
		return domain.Image{}, false
	}
	return e.image, true
}

// RegisterOwner starts tracking ownerID. A live duplicate is rejected and left untouched.
func (c *Cache) RegisterOwner(ownerID string, fingerprint domain.Fingerprint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.own.register(ownerID, fingerprint); err != nil {
		c.logger.Warn("rejected owner registration", "owner_id", ownerID, "error", err)
		return err
	}
	c.logger.Debug("registered owner", "owner_id", ownerID, "fingerprint", fingerprint.String())
	return nil
}

// LinkResourceToOwner records that ownerID references key and reports whether the link is new.
// The returned texture is the one live under key once linked; it differs from an earlier
// GetOrCreate result when a sweep replaced the entry in between.
func (c *Cache) LinkResourceToOwner(
	ownerID string,
	fingerprint domain.Fingerprint,
	key domain.ContentKey,
) (domain.Texture, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := c.own.owner(ownerID, fingerprint)
	if err != nil {
		c.logger.Warn("rejected resource link", "owner_id", ownerID, "content_key", key.String(), "error", err)
		return domain.Texture{}, false, err
	}

	e, ok := c.res.get(key)
	if !ok {
		err := zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownKey, "cannot link an unknown key"),
			"owner_id", ownerID), "content_key", key.String())
		c.logger.Warn("rejected resource link", "owner_id", ownerID, "content_key", key.String(), "error", err)
		return domain.Texture{}, false, err
	}

	e.linked = true
	added := c.own.link(state, ownerID, key)
	if added {
		c.logger.Debug("linked texture to owner", "owner_id", ownerID, "content_key", key.String())
	}
	return e.view(), added, nil
}

// UnregisterOwner drops ownerID and its references. Textures stay cached until the next sweep.
func (c *Cache) UnregisterOwner(ownerID string, fingerprint domain.Fingerprint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	released, err := c.own.unregister(ownerID, fingerprint)
	if err != nil {
		c.logger.Warn("rejected owner unregistration", "owner_id", ownerID, "error", err)
		return err
	}
	c.logger.Info("unregistered owner", "owner_id", ownerID, "released", released)
	return nil
}

// SweepUnused destroys every texture whose owners have all been unregistered, and when an
// unlinked TTL is configured every never-linked texture older than it. It returns the number
// of textures destroyed.
func (c *Cache) SweepUnused(ctx context.Context) int {
	_, span := c.tracer.Start(ctx, "texcache.sweep")
	defer span.End()

	c.mu.Lock()
	keys := c.own.unused()
	if c.unlinkedTTL > 0 {
		keys = append(keys, c.res.unlinkedBefore(c.clock.Now().Add(-c.unlinkedTTL))...)
	}

	evicted := make([]*entry, 0, len(keys))
	for _, key := range keys {
		if c.own.referenced(key) {
			continue
		}
		e, ok := c.res.remove(key)
		c.own.forget(key)
		if ok {
			evicted = append(evicted, e)
		}
	}
	c.evictions += uint64(len(evicted))
	remaining := len(c.res.textures)
	c.mu.Unlock()

	for _, e := range evicted {
		c.evict(e)
	}

	span.SetAttribute("evicted", len(evicted))
	if len(evicted) > 0 {
		c.logger.Info("swept unused textures", "evicted", len(evicted), "remaining", remaining)
	}
	return len(evicted)
}

func (c *Cache) evict(e *entry) {
	if c.onEvict != nil {
		c.onEvict(e.view(), e.image)
	}
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return domain.CacheStats{
		Textures:       len(c.res.textures),
		Owners:         len(c.own.owners),
		Aliases:        len(c.res.aliases),
		PixelBytes:     c.res.pixelBytes,
		Hits:           c.hits,
		Misses:         c.misses,
		DecodeFailures: c.failures,
		Evictions:      c.evictions,
	}
}

// Owners lists the registered owners ordered by id.
func (c *Cache) Owners() []domain.OwnerSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.own.summaries()
}
