package eventlog

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports"
)

// NodeID is the unique identifier for the event store Graft node.
const NodeID graft.ID = "adapter.eventstore"

func init() {
	graft.Register(graft.Node[ports.EventStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.EventStore, error) {
			path := domain.DefaultEventLogPath()
			if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
				return nil, zerr.Wrap(err, domain.ErrStoreOpenFailed.Error())
			}
			return OpenSQLiteStore(ctx, path)
		},
	})
}
