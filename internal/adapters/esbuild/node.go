package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxload/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the native transpiler Graft node.
	NodeID graft.ID = "adapter.esbuild.transpiler"
	// BundlerNodeID is the unique identifier for the bundler Graft node.
	BundlerNodeID graft.ID = "adapter.esbuild.bundler"
)

func init() {
	graft.Register(graft.Node[ports.Transpiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Transpiler, error) {
			return NewTranspiler(), nil
		},
	})

	graft.Register(graft.Node[ports.Bundler]{
		ID:        BundlerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Bundler, error) {
			return NewBundler(), nil
		},
	})
}
