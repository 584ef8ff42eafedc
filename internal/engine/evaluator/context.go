package evaluator

import (
	"context"
	"time"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports"
)

// Context bundles everything one asset's condition may read during a tick:
// the asset's spec, its partitions definition (via the spec), the history
// view restricted to the asset and its parents, the already-committed parent
// results for the current tick, and the evaluation time. The history view is
// read-only for the duration of the tick.
type Context struct {
	Spec          domain.AssetSpec
	ParentSpecs   map[domain.AssetKey]domain.AssetSpec
	History       ports.HistoryView
	ParentResults map[domain.AssetKey]*domain.EvaluationResult
	Now           time.Time
}

// evalState caches per-tick derived inputs shared by the condition variants
// so they are computed once per asset, not once per node.
type evalState struct {
	ec    Context
	space domain.PartitionSubset

	matState   string
	matStateOK bool

	runs     []domain.RunSummary
	runsOK   bool
	latest   map[latestKey]*domain.Materialization
	anyByKey map[domain.AssetKey]*domain.Materialization
}

type latestKey struct {
	asset     domain.AssetKey
	partition domain.InternedString
}

func newEvalState(ec Context) *evalState {
	return &evalState{
		ec:       ec,
		space:    domain.PartitionSpace(ec.Spec.Partitions, ec.Now),
		latest:   make(map[latestKey]*domain.Materialization),
		anyByKey: make(map[domain.AssetKey]*domain.Materialization),
	}
}

// latestMaterialization memoizes per-partition history lookups.
func (s *evalState) latestMaterialization(ctx context.Context, asset domain.AssetKey, partition domain.InternedString) (*domain.Materialization, error) {
	k := latestKey{asset: asset, partition: partition}
	if m, ok := s.latest[k]; ok {
		return m, nil
	}
	m, err := s.ec.History.LatestMaterialization(ctx, asset, partition)
	if err != nil {
		return nil, err
	}
	s.latest[k] = m
	return m, nil
}

// latestAny returns the most recent materialization of asset across all its
// partitions, or nil if the asset has never been materialized.
func (s *evalState) latestAny(ctx context.Context, asset domain.AssetKey) (*domain.Materialization, error) {
	if m, ok := s.anyByKey[asset]; ok {
		return m, nil
	}
	mats, err := s.ec.History.MaterializationsFor(ctx, asset, time.Time{}, s.ec.Now)
	if err != nil {
		return nil, err
	}
	var m *domain.Materialization
	if len(mats) > 0 {
		last := mats[len(mats)-1]
		m = &last
	}
	s.anyByKey[asset] = m
	return m, nil
}

// inFlightRuns returns the runs targeting the asset that may still produce
// materializations.
func (s *evalState) inFlightRuns(ctx context.Context) ([]domain.RunSummary, error) {
	if !s.runsOK {
		runs, err := s.ec.History.RunsFor(ctx, s.ec.Spec.Key)
		if err != nil {
			return nil, err
		}
		s.runs = s.runs[:0]
		for _, r := range runs {
			if r.Status.InFlight() {
				s.runs = append(s.runs, r)
			}
		}
		s.runsOK = true
	}
	return s.runs, nil
}

// materializationState derives the history sub-state folded into the value
// hashes of the history-sensitive variants: the latest materialization
// timestamp (or "never") for the asset and each of its parents, in sorted
// parent order. Any materialization event among them changes this string.
func (s *evalState) materializationState(ctx context.Context) (string, error) {
	if s.matStateOK {
		return s.matState, nil
	}

	keys := make([]domain.AssetKey, 0, len(s.ec.Spec.Deps)+1)
	keys = append(keys, s.ec.Spec.Key)
	parents := append([]domain.AssetKey(nil), s.ec.Spec.Deps...)
	domain.SortAssetKeys(parents)
	keys = append(keys, parents...)

	state := ""
	for _, key := range keys {
		m, err := s.latestAny(ctx, key)
		if err != nil {
			return "", err
		}
		state += key.String() + "@"
		if m == nil {
			state += "never"
		} else {
			state += m.Timestamp.UTC().Format(time.RFC3339Nano)
		}
		state += ";"
	}
	s.matState = state
	s.matStateOK = true
	return state, nil
}

// sortedParents returns the asset's parent keys in canonical order.
func (s *evalState) sortedParents() []string {
	parents := append([]domain.AssetKey(nil), s.ec.Spec.Deps...)
	domain.SortAssetKeys(parents)
	out := make([]string, len(parents))
	for i, p := range parents {
		out[i] = p.String()
	}
	return out
}

// parentResultHashes returns the value hashes of the parents' committed
// results for this tick, in sorted parent order. Parents without automation
// conditions contribute nothing.
func (s *evalState) parentResultHashes() []string {
	parents := append([]domain.AssetKey(nil), s.ec.Spec.Deps...)
	domain.SortAssetKeys(parents)
	var hashes []string
	for _, p := range parents {
		if r, ok := s.ec.ParentResults[p]; ok && r != nil {
			hashes = append(hashes, p.String()+"="+r.ValueHash())
		}
	}
	return hashes
}
