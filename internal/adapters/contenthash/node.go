package contenthash

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texcache/internal/core/ports"
)

// NodeID is the unique identifier for the content hasher Graft node.
const NodeID graft.ID = "adapter.contenthash"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
