package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxload/internal/core/ports"
)

// NodeID is the unique identifier for the transform cache Graft node.
const NodeID graft.ID = "adapter.transform_cache"

func init() {
	graft.Register(graft.Node[ports.TransformCacheFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TransformCacheFactory, error) {
			return Open, nil
		},
	})
}
