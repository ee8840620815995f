package bundle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxload/internal/core/ports"
)

// NodeID is the unique identifier for the bundle writer Graft node.
const NodeID graft.ID = "adapter.bundle"

func init() {
	graft.Register(graft.Node[ports.ModuleWriterFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleWriterFactory, error) {
			return NewFactory(), nil
		},
	})
}
