// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/weld/internal/adapters/config"
	_ "go.trai.ch/weld/internal/adapters/logger"
	_ "go.trai.ch/weld/internal/adapters/rebuild"
	_ "go.trai.ch/weld/internal/adapters/registry"
	_ "go.trai.ch/weld/internal/adapters/resolver"
	_ "go.trai.ch/weld/internal/adapters/telemetry"
	_ "go.trai.ch/weld/internal/adapters/watcher"
	// Register the app node.
	_ "go.trai.ch/weld/internal/app"
)
