// Package eventlog provides the event log adapters backing the history view:
// an in-memory store for the evaluation harness and a sqlite-backed store for
// the daemon.
package eventlog

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports"
)

var _ ports.EventStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory event store. It is safe for concurrent use;
// reads during a tick observe a consistent snapshot because the engine never
// writes mid-tick.
type MemoryStore struct {
	mu   sync.RWMutex
	mats map[domain.AssetKey][]domain.Materialization
	runs map[domain.AssetKey][]domain.RunSummary
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mats: make(map[domain.AssetKey][]domain.Materialization),
		runs: make(map[domain.AssetKey][]domain.RunSummary),
	}
}

// Clone returns a deep copy of the store. The scenario harness advances by
// cloning so that earlier states stay evaluable.
func (s *MemoryStore) Clone() *MemoryStore {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := NewMemoryStore()
	for k, v := range s.mats {
		out.mats[k] = slices.Clone(v)
	}
	for k, v := range s.runs {
		out.runs[k] = slices.Clone(v)
	}
	return out
}

// RecordMaterialization appends a materialization event.
func (s *MemoryStore) RecordMaterialization(_ context.Context, m domain.Materialization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mats[m.Asset] = append(s.mats[m.Asset], m)
	return nil
}

// RecordRun appends or, when the ID matches an existing record, updates a run.
func (s *MemoryStore) RecordRun(_ context.Context, r domain.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	runs := s.runs[r.Asset]
	for i := range runs {
		if runs[i].ID == r.ID {
			runs[i] = r
			return nil
		}
	}
	s.runs[r.Asset] = append(runs, r)
	return nil
}

// MaterializationsFor returns the materializations of key in [since, until],
// ordered by timestamp ascending. A zero until means unbounded.
func (s *MemoryStore) MaterializationsFor(_ context.Context, key domain.AssetKey, since, until time.Time) ([]domain.Materialization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Materialization
	for _, m := range s.mats[key] {
		if m.Timestamp.Before(since) || (!until.IsZero() && m.Timestamp.After(until)) {
			continue
		}
		out = append(out, m)
	}
	slices.SortStableFunc(out, func(a, b domain.Materialization) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out, nil
}

// LatestMaterialization returns the newest materialization of the partition,
// or nil if it has never been materialized.
func (s *MemoryStore) LatestMaterialization(_ context.Context, key domain.AssetKey, partition domain.InternedString) (*domain.Materialization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.Materialization
	for _, m := range s.mats[key] {
		if m.Partition != partition {
			continue
		}
		if latest == nil || m.Timestamp.After(latest.Timestamp) {
			cp := m
			latest = &cp
		}
	}
	return latest, nil
}

// RunsFor returns the runs targeting key ordered by creation time ascending.
func (s *MemoryStore) RunsFor(_ context.Context, key domain.AssetKey) ([]domain.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.runs[key])
	slices.SortStableFunc(out, func(a, b domain.RunSummary) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
