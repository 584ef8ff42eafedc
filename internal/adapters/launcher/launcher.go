// Package launcher implements the run-launching adapter. Launching a run in
// this build means recording a queued run in the event log; an external
// executor picks queued runs up from there.
package launcher

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports"
)

// Launcher hands out handles that record queued runs in the event store.
type Launcher struct {
	store  ports.EventStore
	clock  ports.Clock
	logger ports.Logger
}

// New creates a Launcher writing to store.
func New(store ports.EventStore, clock ports.Clock, logger ports.Logger) *Launcher {
	return &Launcher{store: store, clock: clock, logger: logger}
}

// Acquire returns a handle scoped to one tick. The handle is cheap; the
// event store connection is shared.
func (l *Launcher) Acquire(_ context.Context) (ports.LauncherHandle, error) {
	return &handle{launcher: l}, nil
}

type handle struct {
	launcher *Launcher
	mu       sync.Mutex
	released bool
}

// Launch records one queued run per request. Run IDs are derived from the
// request contents and creation time, so retrying a failed tick cannot queue
// duplicate runs.
func (h *handle) Launch(ctx context.Context, reqs []domain.RunRequest) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return domain.ErrLauncherReleased
	}

	now := h.launcher.clock.Now()
	for _, req := range reqs {
		for _, asset := range req.Assets {
			run := domain.RunSummary{
				ID:         runID(asset, req.PartitionKeys, now.UnixNano()),
				Asset:      asset,
				Partitions: req.PartitionKeys,
				Status:     domain.RunQueued,
				CreatedAt:  now,
			}
			if err := h.launcher.store.RecordRun(ctx, run); err != nil {
				return err
			}
			h.launcher.logger.Info(fmt.Sprintf("queued run %s for %s", run.ID, asset.String()))
		}
	}
	return nil
}

// Release marks the handle unusable. Safe to call more than once.
func (h *handle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.released = true
	return nil
}

func runID(asset domain.AssetKey, partitions []string, unixNano int64) string {
	d := xxhash.New()
	_, _ = d.WriteString(asset.String())
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(strings.Join(partitions, "\x1f"))
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(fmt.Sprintf("%d", unixNano))
	return fmt.Sprintf("run-%016x", d.Sum64())
}
