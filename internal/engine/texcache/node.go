package texcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texcache/internal/adapters/config"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texcache/internal/adapters/contenthash" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texcache/internal/adapters/decoder"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texcache/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texcache/internal/adapters/telemetry"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
)

// NodeID is the unique identifier for the texture cache Graft node.
const NodeID graft.ID = "engine.texcache"

func init() {
	graft.Register(graft.Node[ports.TextureCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			contenthash.NodeID,
			decoder.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.TextureCache, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			dec, err := graft.Dep[ports.Decoder](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(dec, hasher, log, tracer,
				WithDecodePolicy(cfg.Cache.DecodePolicy),
				WithUnlinkedTTL(cfg.Cache.UnlinkedTTL),
				WithEvictHook(LogEvictions(log)),
			), nil
		},
	})
}
