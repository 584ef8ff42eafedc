package launcher

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/contribulate/dagster/internal/adapters/clock"
	"github.com/contribulate/dagster/internal/adapters/eventlog"
	"github.com/contribulate/dagster/internal/adapters/logger"
	"github.com/contribulate/dagster/internal/core/ports"
)

// NodeID is the unique identifier for the run launcher Graft node.
const NodeID graft.ID = "adapter.launcher"

func init() {
	graft.Register(graft.Node[ports.RunLauncher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{eventlog.NodeID, clock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RunLauncher, error) {
			store, err := graft.Dep[ports.EventStore](ctx)
			if err != nil {
				return nil, err
			}
			clk, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, clk, log), nil
		},
	})
}
