package domain

import "time"

// DecodePolicy selects whether decoding on a cache miss happens under the cache lock.
type DecodePolicy string

const (
	// DecodeUnlocked releases the lock around decode and coalesces concurrent misses per key.
	DecodeUnlocked DecodePolicy = "unlocked"
	// DecodeLocked decodes while holding the cache lock.
	DecodeLocked DecodePolicy = "locked"
)

// Config is the validated runtime configuration.
type Config struct {
	Log      LogConfig
	Cache    CacheConfig
	Sweep    SweepConfig
	Loader   LoaderConfig
	Decoders []string
}

// LogConfig controls the logger adapter.
type LogConfig struct {
	Level string
	JSON  bool
}

// CacheConfig controls the texture cache.
type CacheConfig struct {
	DecodePolicy DecodePolicy
	// UnlinkedTTL lets a sweep reclaim textures never linked to any owner. Zero disables it.
	UnlinkedTTL time.Duration
}

// SweepConfig controls the periodic sweep. A zero interval disables it.
type SweepConfig struct {
	Interval time.Duration
}

// LoaderConfig controls the avatar loading pipeline.
type LoaderConfig struct {
	Parallelism   int
	Fallback      bool
	SweepOnUnload bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Log:   LogConfig{Level: "info"},
		Cache: CacheConfig{DecodePolicy: DecodeUnlocked},
		Sweep: SweepConfig{Interval: 30 * time.Second},
		Loader: LoaderConfig{
			Parallelism: 4,
			Fallback:    true,
		},
		Decoders: []string{"png", "jpeg", "qoi"},
	}
}
