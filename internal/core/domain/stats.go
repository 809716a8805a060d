package domain

// CacheStats is a point-in-time snapshot of the texture cache.
type CacheStats struct {
	Textures       int
	Owners         int
	Aliases        int
	PixelBytes     int64
	Hits           uint64
	Misses         uint64
	DecodeFailures uint64
	Evictions      uint64
}

// OwnerSummary describes one registered owner.
type OwnerSummary struct {
	ID          string
	Fingerprint Fingerprint
	Keys        int
}
