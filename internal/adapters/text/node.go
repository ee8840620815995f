package text

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxload/internal/core/ports"
)

// NodeID is the unique identifier for the text loader Graft node.
const NodeID graft.ID = "adapter.text"

func init() {
	graft.Register(graft.Node[ports.TextLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TextLoader, error) {
			return New(nil), nil
		},
	})
}
