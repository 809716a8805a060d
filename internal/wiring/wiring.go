// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/texcache/internal/adapters/config"
	_ "go.trai.ch/texcache/internal/adapters/contenthash"
	_ "go.trai.ch/texcache/internal/adapters/decoder"
	_ "go.trai.ch/texcache/internal/adapters/logger"
	_ "go.trai.ch/texcache/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/texcache/internal/app"
	_ "go.trai.ch/texcache/internal/engine/janitor"
	_ "go.trai.ch/texcache/internal/engine/loader"
	_ "go.trai.ch/texcache/internal/engine/texcache"
)
