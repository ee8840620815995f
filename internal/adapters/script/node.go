package script

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxload/internal/adapters/logger"
	"go.trai.ch/jsxload/internal/adapters/text"
	"go.trai.ch/jsxload/internal/core/ports"
)

const (
	// HostNodeID is the unique identifier for the script host Graft node.
	HostNodeID graft.ID = "adapter.script.host"
	// ProviderNodeID is the unique identifier for the transpiler provider Graft node.
	ProviderNodeID graft.ID = "adapter.script.provider"
	// InstrumenterNodeID is the unique identifier for the coverage instrumenter Graft node.
	InstrumenterNodeID graft.ID = "adapter.script.instrumenter"
)

func init() {
	graft.Register(graft.Node[*Host]{
		ID:        HostNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{text.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Host, error) {
			loader, err := graft.Dep[ports.TextLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHost(loader, log), nil
		},
	})

	graft.Register(graft.Node[ports.TranspilerProvider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HostNodeID},
		Run: func(ctx context.Context) (ports.TranspilerProvider, error) {
			host, err := graft.Dep[*Host](ctx)
			if err != nil {
				return nil, err
			}
			return host, nil
		},
	})

	graft.Register(graft.Node[ports.Instrumenter]{
		ID:        InstrumenterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HostNodeID},
		Run: func(ctx context.Context) (ports.Instrumenter, error) {
			host, err := graft.Dep[*Host](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstrumenter(host), nil
		},
	})
}
