package decoder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texcache/internal/adapters/config"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
)

// NodeID is the unique identifier for the decoder chain Graft node.
const NodeID graft.ID = "adapter.decoder"

func init() {
	graft.Register(graft.Node[ports.Decoder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.Decoder, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewChainByName(cfg.Decoders)
		},
	})
}
