// Package scenario provides the evaluation harness: a point-in-time bundle
// of asset graph, simulated clock, and simulated run history that advances by
// applying run requests or time jumps. It backs both tests and the evaluate
// command's dry-run mode.
package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/contribulate/dagster/internal/adapters/eventlog"
	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/engine/evaluator"
	"go.trai.ch/zerr"
)

// State is an immutable-style snapshot of a simulated world. The With*
// methods return a new State sharing nothing mutable with the receiver, so
// earlier states stay evaluable; this keeps repeated evaluation of the same
// state byte-for-byte deterministic.
type State struct {
	graph  *domain.AssetGraph
	store  *eventlog.MemoryStore
	now    time.Time
	runSeq int
}

// New builds a State over the given specs. The graph is validated eagerly:
// structural errors surface here, before any evaluation.
func New(specs ...domain.AssetSpec) (*State, error) {
	graph := domain.NewAssetGraph()
	for _, spec := range specs {
		if err := graph.AddSpec(spec); err != nil {
			return nil, err
		}
	}
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	return &State{
		graph: graph,
		store: eventlog.NewMemoryStore(),
	}, nil
}

// WithAutomation returns a state whose every asset carries cond. The graph is
// rebuilt; conditions attached via specs are replaced.
func (s *State) WithAutomation(cond *domain.AutomationCondition) (*State, error) {
	graph := domain.NewAssetGraph()
	for spec := range s.graph.Walk() {
		if err := graph.AddSpec(spec.WithAutomation(cond)); err != nil {
			return nil, err
		}
	}
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	out := s.clone()
	out.graph = graph
	return out, nil
}

// WithCurrentTime returns a state evaluating at t.
func (s *State) WithCurrentTime(t time.Time) *State {
	out := s.clone()
	out.now = t.UTC()
	return out
}

// AdvanceTime returns a state evaluating d later.
func (s *State) AdvanceTime(d time.Duration) *State {
	return s.WithCurrentTime(s.now.Add(d))
}

// Now returns the state's simulated evaluation time.
func (s *State) Now() time.Time {
	return s.now
}

// Graph returns the state's asset graph.
func (s *State) Graph() *domain.AssetGraph {
	return s.graph
}

// History returns the state's history view.
func (s *State) History() *eventlog.MemoryStore {
	return s.store
}

// WithRuns returns a state in which the given run requests have completed
// successfully at the current simulated time, recording a run summary and one
// materialization per requested partition.
func (s *State) WithRuns(reqs ...domain.RunRequest) (*State, error) {
	out := s.clone()
	ctx := context.Background()

	for _, req := range reqs {
		for _, asset := range req.Assets {
			out.runSeq++
			keys := req.PartitionKeys
			if len(keys) == 0 {
				keys = []string{domain.DefaultPartitionKey.String()}
			}
			run := domain.RunSummary{
				ID:         fmt.Sprintf("run-%d", out.runSeq),
				Asset:      asset,
				Partitions: req.PartitionKeys,
				Status:     domain.RunSuccess,
				CreatedAt:  out.now,
			}
			if err := out.store.RecordRun(ctx, run); err != nil {
				return nil, err
			}
			for _, key := range keys {
				m := domain.Materialization{
					Asset:     asset,
					Partition: domain.NewInternedString(key),
					Timestamp: out.now,
				}
				if err := out.store.RecordMaterialization(ctx, m); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

// Evaluate evaluates the named asset's condition against the state, threading
// committed results of its parents (evaluated first, in dependency order)
// into the context. It returns the same state for chaining plus the asset's
// result.
func (s *State) Evaluate(asset string) (*State, *domain.EvaluationResult, error) {
	key := domain.ParseAssetKey(asset)
	if _, err := s.graph.Spec(key); err != nil {
		return nil, nil, err
	}

	ctx := context.Background()
	results := make(map[domain.AssetKey]*domain.EvaluationResult)

	for spec := range s.graph.Walk() {
		relevant := spec.Key == key || s.graph.IsAncestor(spec.Key, key)
		if !relevant || spec.Automation == nil {
			continue
		}

		parentResults := make(map[domain.AssetKey]*domain.EvaluationResult)
		parentSpecs := make(map[domain.AssetKey]domain.AssetSpec)
		for _, parent := range s.graph.Parents(spec.Key) {
			if r, ok := results[parent]; ok {
				parentResults[parent] = r
			}
			if pspec, err := s.graph.Spec(parent); err == nil {
				parentSpecs[parent] = pspec
			}
		}

		result, err := evaluator.Evaluate(ctx, evaluator.Context{
			Spec:          spec,
			ParentSpecs:   parentSpecs,
			History:       s.store,
			ParentResults: parentResults,
			Now:           s.now,
		})
		if err != nil {
			return nil, nil, zerr.With(err, "scenario_asset", spec.Key.String())
		}
		results[spec.Key] = result
	}

	result, ok := results[key]
	if !ok {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrInvalidCondition, "asset has no automation condition"), "asset_key", key.String())
	}
	return s, result, nil
}

func (s *State) clone() *State {
	return &State{
		graph:  s.graph,
		store:  s.store.Clone(),
		now:    s.now,
		runSeq: s.runSeq,
	}
}
