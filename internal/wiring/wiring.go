// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jsxload/internal/adapters/bundle"
	_ "go.trai.ch/jsxload/internal/adapters/cas"
	_ "go.trai.ch/jsxload/internal/adapters/config"
	_ "go.trai.ch/jsxload/internal/adapters/esbuild"
	_ "go.trai.ch/jsxload/internal/adapters/fs"
	_ "go.trai.ch/jsxload/internal/adapters/logger"
	_ "go.trai.ch/jsxload/internal/adapters/script"
	_ "go.trai.ch/jsxload/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/jsxload/internal/adapters/text"
	_ "go.trai.ch/jsxload/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/jsxload/internal/app"
	_ "go.trai.ch/jsxload/internal/engine/dispatcher"
)
