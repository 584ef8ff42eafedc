package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/contribulate/dagster/internal/adapters/clock"
	"github.com/contribulate/dagster/internal/adapters/config"
	"github.com/contribulate/dagster/internal/adapters/eventlog"
	"github.com/contribulate/dagster/internal/adapters/launcher"
	"github.com/contribulate/dagster/internal/adapters/logger"
	"github.com/contribulate/dagster/internal/adapters/telemetry"
	"github.com/contribulate/dagster/internal/adapters/watcher"
	"github.com/contribulate/dagster/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
	Store  ports.EventStore
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			eventlog.NodeID,
			clock.NodeID,
			launcher.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.DefinitionsLoader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.EventStore](ctx)
			if err != nil {
				return nil, err
			}
			clk, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}
			run, err := graft.Dep[ports.RunLauncher](ctx)
			if err != nil {
				return nil, err
			}
			watch, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, store, clk, run, watch, tracer, log),
				Logger: log,
				Store:  store,
			}, nil
		},
	})
}
