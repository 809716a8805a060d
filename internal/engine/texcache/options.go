package texcache

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
)

// EvictFunc is called once for every texture the cache destroys, after the cache lock
// has been released. It also receives decode results that lost a race for their key.
type EvictFunc func(tex domain.Texture, img domain.Image)

// LogEvictions returns an EvictFunc that reports every released pixel buffer at debug level.
func LogEvictions(logger ports.Logger) EvictFunc {
	return func(tex domain.Texture, img domain.Image) {
		logger.Debug("released texture",
			"handle_id", tex.ID.String(),
			"content_key", tex.Key.String(),
			"info", tex.Info.String(),
			"pixel_bytes", img.Size(),
		)
	}
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock sets the clock used to age never-linked textures.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Cache) {
		c.clock = clock
	}
}

// WithEvictHook registers a callback for destroyed textures.
func WithEvictHook(fn EvictFunc) Option {
	return func(c *Cache) {
		c.onEvict = fn
	}
}

// WithDecodePolicy selects whether decoding runs under the cache lock.
func WithDecodePolicy(policy domain.DecodePolicy) Option {
	return func(c *Cache) {
		c.policy = policy
	}
}

// WithUnlinkedTTL lets SweepUnused reclaim textures that were never linked to an owner
// and are older than ttl. Zero disables it.
func WithUnlinkedTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.unlinkedTTL = ttl
	}
}
