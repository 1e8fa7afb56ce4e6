package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/adapters/config"
	"go.trai.ch/weld/internal/adapters/logger"
	"go.trai.ch/weld/internal/adapters/rebuild"
	"go.trai.ch/weld/internal/adapters/registry"
	"go.trai.ch/weld/internal/adapters/resolver"
	"go.trai.ch/weld/internal/adapters/telemetry"
	"go.trai.ch/weld/internal/adapters/watcher"
	"go.trai.ch/weld/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry *telemetry.Provider
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			resolver.NodeID,
			registry.NodeID,
			rebuild.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			snapshots, err := graft.Dep[ports.SnapshotLoader](ctx)
			if err != nil {
				return nil, err
			}
			registries, err := graft.Dep[ports.RegistryOpener](ctx)
			if err != nil {
				return nil, err
			}
			rebuilders, err := graft.Dep[ports.RebuilderFactory](ctx)
			if err != nil {
				return nil, err
			}
			watch, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       New(loader, snapshots, registries, rebuilders, watch, log),
				Logger:    log,
				Telemetry: tel,
			}, nil
		},
	})
}
