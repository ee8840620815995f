package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxload/internal/core/ports"
)

const (
	ReaderNodeID    graft.ID = "adapter.fs.reader"
	ResolverNodeID  graft.ID = "adapter.fs.resolver"
	DiscoveryNodeID graft.ID = "adapter.fs.discovery"
)

func init() {
	graft.Register(graft.Node[ports.SourceReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.ResolverFactory]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResolverFactory, error) {
			return NewResolverFactory(), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleDiscoverer]{
		ID:        DiscoveryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleDiscoverer, error) {
			return NewWalker(), nil
		},
	})
}
