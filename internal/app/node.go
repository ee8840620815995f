package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxload/internal/adapters/bundle"             //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxload/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxload/internal/adapters/esbuild"            //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxload/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxload/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxload/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxload/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/jsxload/internal/engine/dispatcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			dispatcher.NodeID,
			fs.ResolverNodeID,
			fs.DiscoveryNodeID,
			bundle.NodeID,
			esbuild.BundlerNodeID,
			progrock.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       app,
				Logger:    log,
				Telemetry: telemetry,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*dispatcher.Engine](ctx)
	if err != nil {
		return nil, err
	}

	resolvers, err := graft.Dep[ports.ResolverFactory](ctx)
	if err != nil {
		return nil, err
	}

	discoverer, err := graft.Dep[ports.ModuleDiscoverer](ctx)
	if err != nil {
		return nil, err
	}

	writers, err := graft.Dep[ports.ModuleWriterFactory](ctx)
	if err != nil {
		return nil, err
	}

	bundler, err := graft.Dep[ports.Bundler](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, engine, resolvers, discoverer, writers, bundler, telemetry, watchers, log), nil
}
