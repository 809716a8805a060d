// Package janitor periodically sweeps textures no owner references anymore.
package janitor

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/texcache/internal/core/ports"
)

// Janitor calls SweepUnused on a fixed interval.
type Janitor struct {
	cache    ports.TextureCache
	logger   ports.Logger
	clock    clockwork.Clock
	interval time.Duration
}

// New creates a Janitor. A non-positive interval disables periodic sweeping.
func New(cache ports.TextureCache, logger ports.Logger, clock clockwork.Clock, interval time.Duration) *Janitor {
	return &Janitor{
		cache:    cache,
		logger:   logger,
		clock:    clock,
		interval: interval,
	}
}

// Interval returns the sweep interval.
func (j *Janitor) Interval() time.Duration {
	return j.interval
}

// Run sweeps on every tick until ctx is done. It returns immediately when sweeping is disabled.
func (j *Janitor) Run(ctx context.Context) error {
	if j.interval <= 0 {
		j.logger.Debug("periodic sweep disabled")
		return nil
	}

	ticker := j.clock.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Debug("periodic sweep started", "interval", j.interval.String())
	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("periodic sweep stopped")
			return nil
		case <-ticker.Chan():
			if n := j.cache.SweepUnused(ctx); n > 0 {
				j.logger.Debug("periodic sweep evicted textures", "evicted", n)
			}
		}
	}
}
