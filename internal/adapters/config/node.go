package config

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/contribulate/dagster/internal/adapters/logger"
	"github.com/contribulate/dagster/internal/core/ports"
)

// NodeID is the unique identifier for the definitions loader Graft node.
const NodeID graft.ID = "adapter.definitions"

func init() {
	graft.Register(graft.Node[ports.DefinitionsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DefinitionsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
