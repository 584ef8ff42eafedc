// Package ports defines the interfaces between the evaluation engine and its
// external collaborators.
package ports

import (
	"context"
	"time"

	"github.com/contribulate/dagster/internal/core/domain"
)

// HistoryView is the read-only query surface over past runs and
// materializations. Reads are stable for the duration of a tick.
//
//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks
type HistoryView interface {
	// MaterializationsFor returns the materializations of key with timestamps
	// in [since, until], ordered by timestamp ascending. A zero until means
	// unbounded.
	MaterializationsFor(ctx context.Context, key domain.AssetKey, since, until time.Time) ([]domain.Materialization, error)

	// LatestMaterialization returns the most recent materialization of the
	// given partition of key, or nil if the partition has never been
	// materialized.
	LatestMaterialization(ctx context.Context, key domain.AssetKey, partition domain.InternedString) (*domain.Materialization, error)

	// RunsFor returns the runs targeting key, ordered by creation time
	// ascending.
	RunsFor(ctx context.Context, key domain.AssetKey) ([]domain.RunSummary, error)
}

// EventStore extends HistoryView with the write side used by the run
// launcher and the scenario harness.
type EventStore interface {
	HistoryView

	// RecordMaterialization appends a materialization event.
	RecordMaterialization(ctx context.Context, m domain.Materialization) error

	// RecordRun appends or updates a run record.
	RecordRun(ctx context.Context, r domain.RunSummary) error

	// Close releases the underlying storage.
	Close() error
}
