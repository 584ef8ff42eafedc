// Package orchestrator walks the asset graph in dependency order, threads
// per-asset evaluation results to downstream consumers, and aggregates run
// requests into a tick report.
package orchestrator

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports"
	"github.com/contribulate/dagster/internal/engine/evaluator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Orchestrator runs evaluation ticks over a validated asset graph.
type Orchestrator struct {
	history     ports.HistoryView
	clock       ports.Clock
	logger      ports.Logger
	tracer      ports.Tracer
	parallelism int
	timeout     time.Duration
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithParallelism caps the number of assets evaluated concurrently.
// Parallelism only ever spans independent subgraphs; dependency order is
// always preserved.
func WithParallelism(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithTimeout bounds the whole tick. There are no per-condition timeouts: a
// tick either completes for all reachable assets or is abandoned wholesale.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.timeout = d
	}
}

// New creates an Orchestrator reading history through view and time through
// clock.
func New(view ports.HistoryView, clock ports.Clock, logger ports.Logger, tracer ports.Tracer, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		history:     view,
		clock:       clock,
		logger:      logger,
		tracer:      tracer,
		parallelism: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// latch is the one-shot completion signal for one asset within a tick. The
// owning goroutine writes result and err exactly once before closing done;
// consumers only read after <-done.
type latch struct {
	done   chan struct{}
	result *domain.EvaluationResult
	err    error
}

func newLatch() *latch {
	return &latch{done: make(chan struct{})}
}

// Tick evaluates every asset of graph once against an immutable snapshot of
// history at the current clock time. A single asset's evaluation failure is
// isolated: it blocks only that asset's descendants, and unrelated subgraphs
// still evaluate. Tick returns an error only when the tick as a whole is
// abandoned (context cancelled or timed out).
func (o *Orchestrator) Tick(ctx context.Context, graph *domain.AssetGraph) (*domain.TickReport, error) {
	now := o.clock.Now()

	ctx, span := o.tracer.Start(ctx, "tick")
	defer span.End()

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	order := graph.TopoOrder()
	latches := make(map[domain.AssetKey]*latch, len(order))
	for _, key := range order {
		latches[key] = newLatch()
	}

	var eg errgroup.Group
	eg.SetLimit(o.parallelism)

	// Scheduling in topological order guarantees every ancestor's goroutine
	// holds or has released a worker slot before any descendant starts, so
	// waiting on parent latches cannot deadlock under the SetLimit cap.
	for _, key := range order {
		eg.Go(func() error {
			o.evaluateAsset(ctx, graph, key, latches, now)
			return nil
		})
	}
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		// Abandoned wholesale; the next tick re-evaluates from scratch.
		return nil, zerr.Wrap(err, "tick abandoned")
	}

	report := o.buildReport(graph, order, latches, now)
	return report, nil
}

// evaluateAsset waits for the asset's parents, evaluates its condition, and
// commits the outcome into the asset's latch. Each latch is written exactly
// once per tick.
func (o *Orchestrator) evaluateAsset(
	ctx context.Context,
	graph *domain.AssetGraph,
	key domain.AssetKey,
	latches map[domain.AssetKey]*latch,
	now time.Time,
) {
	l := latches[key]
	defer close(l.done)

	spec, err := graph.Spec(key)
	if err != nil {
		l.err = err
		return
	}

	parentResults := make(map[domain.AssetKey]*domain.EvaluationResult, len(spec.Deps))
	parentSpecs := make(map[domain.AssetKey]domain.AssetSpec, len(spec.Deps))
	for _, parent := range graph.Parents(key) {
		pl := latches[parent]
		select {
		case <-pl.done:
		case <-ctx.Done():
			l.err = ctx.Err()
			return
		}
		if pl.err != nil {
			err := zerr.Wrap(domain.ErrUpstreamFailed, "parent evaluation did not complete")
			err = zerr.With(err, "asset_key", key.String())
			l.err = zerr.With(err, "upstream", parent.String())
			return
		}
		if pl.result != nil {
			parentResults[parent] = pl.result
		}
		pspec, perr := graph.Spec(parent)
		if perr == nil {
			parentSpecs[parent] = pspec
		}
	}

	if spec.Automation == nil {
		// Nothing to evaluate; the closed latch with a nil result unblocks
		// descendants.
		return
	}

	ctx, span := o.tracer.Start(ctx, "evaluate", ports.WithAttribute("asset_key", key.String()))
	defer span.End()

	result, err := evaluator.Evaluate(ctx, evaluator.Context{
		Spec:          spec,
		ParentSpecs:   parentSpecs,
		History:       o.history,
		ParentResults: parentResults,
		Now:           now,
	})
	if err != nil {
		span.RecordError(err)
		o.logger.Error(err)
		l.err = err
		return
	}
	l.result = result
}

// buildReport assembles outcomes in topological order and batches run
// requests.
func (o *Orchestrator) buildReport(
	graph *domain.AssetGraph,
	order []domain.AssetKey,
	latches map[domain.AssetKey]*latch,
	now time.Time,
) *domain.TickReport {
	report := &domain.TickReport{EvaluatedAt: now}

	var candidates []domain.AssetOutcome
	for _, key := range order {
		l := latches[key]
		switch {
		case l.err != nil && errors.Is(l.err, domain.ErrUpstreamFailed):
			report.Outcomes = append(report.Outcomes, domain.AssetOutcome{
				Asset:  key,
				Status: domain.StatusBlocked,
				Reason: "upstream evaluation failed",
			})
		case l.err != nil:
			report.Outcomes = append(report.Outcomes, domain.AssetOutcome{
				Asset:  key,
				Status: domain.StatusFail,
				Reason: l.err.Error(),
			})
			report.Failures = append(report.Failures, domain.AssetFailure{Asset: key, Err: l.err})
		case l.result == nil:
			report.Outcomes = append(report.Outcomes, domain.AssetOutcome{
				Asset:  key,
				Status: domain.StatusSkip,
				Reason: "no automation condition",
			})
		case l.result.TrueSubset().IsEmpty():
			report.Outcomes = append(report.Outcomes, domain.AssetOutcome{
				Asset:  key,
				Status: domain.StatusSkip,
				Reason: "condition evaluated to empty subset",
				Result: l.result,
			})
		default:
			outcome := domain.AssetOutcome{
				Asset:  key,
				Status: domain.StatusMaterialize,
				Reason: "condition selected " + l.result.TrueSubset().String(),
				Result: l.result,
			}
			report.Outcomes = append(report.Outcomes, outcome)
			candidates = append(candidates, outcome)
		}
	}

	report.RunRequests = o.batchRunRequests(graph, candidates)
	return report
}

// batchRunRequests merges run-request candidates into batches. Two assets
// share a batch iff they select identical partition keys and neither is an
// ancestor of the other; batching is an optimization, never required for
// correctness.
func (o *Orchestrator) batchRunRequests(graph *domain.AssetGraph, candidates []domain.AssetOutcome) []domain.RunRequest {
	type batch struct {
		serialized string
		req        domain.RunRequest
	}
	var batches []*batch

	for _, c := range candidates {
		spec, err := graph.Spec(c.Asset)
		if err != nil {
			continue
		}
		subset := c.Result.TrueSubset()
		keys := subset.Keys()
		if spec.Partitions == nil {
			// The implicit single partition never reaches the launcher.
			keys = nil
		}
		serialized := subset.Serialize()

		placed := false
		for _, b := range batches {
			if b.serialized != serialized {
				continue
			}
			related := false
			for _, member := range b.req.Assets {
				if graph.IsAncestor(member, c.Asset) || graph.IsAncestor(c.Asset, member) {
					related = true
					break
				}
			}
			if related {
				continue
			}
			b.req.Assets = append(b.req.Assets, c.Asset)
			placed = true
			break
		}
		if !placed {
			batches = append(batches, &batch{
				serialized: serialized,
				req:        domain.RunRequest{Assets: []domain.AssetKey{c.Asset}, PartitionKeys: keys},
			})
		}
	}

	reqs := make([]domain.RunRequest, 0, len(batches))
	for _, b := range batches {
		reqs = append(reqs, b.req)
	}
	return reqs
}
