package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/texcache/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texcache/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texcache/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/texcache/internal/engine/texcache"
)

// NodeID is the unique identifier for the avatar loader Graft node.
const NodeID graft.ID = "engine.loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			texcache.NodeID,
		},
		Run: func(ctx context.Context) (*Loader, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
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

			cache, err := graft.Dep[ports.TextureCache](ctx)
			if err != nil {
				return nil, err
			}

			return New(cache, log, tracer, clockwork.NewRealClock(), cfg.Loader), nil
		},
	})
}
