package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxload/internal/adapters/cas"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsxload/internal/adapters/esbuild" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsxload/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsxload/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsxload/internal/adapters/script"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsxload/internal/adapters/text"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsxload/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher engine Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			fs.ReaderNodeID,
			esbuild.NodeID,
			text.NodeID,
			script.ProviderNodeID,
			script.InstrumenterNodeID,
			cas.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}

			native, err := graft.Dep[ports.Transpiler](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.TextLoader](ctx)
			if err != nil {
				return nil, err
			}

			provider, err := graft.Dep[ports.TranspilerProvider](ctx)
			if err != nil {
				return nil, err
			}

			instrumenter, err := graft.Dep[ports.Instrumenter](ctx)
			if err != nil {
				return nil, err
			}

			openCache, err := graft.Dep[ports.TransformCacheFactory](ctx)
			if err != nil {
				return nil, err
			}

			return NewEngine(
				log,
				reader,
				native,
				loader,
				provider,
				instrumenter,
				openCache,
			), nil
		},
	})
}
