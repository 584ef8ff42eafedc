// Package app implements the application layer for dagster.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/contribulate/dagster/internal/adapters/telemetry"
	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports"
	"github.com/contribulate/dagster/internal/engine/orchestrator"
	"github.com/contribulate/dagster/internal/ui/report"
)

// DefaultTickInterval is the daemon's evaluation cadence when no interval
// flag is given.
const DefaultTickInterval = 30 * time.Second

// App represents the main application logic.
type App struct {
	loader   ports.DefinitionsLoader
	store    ports.EventStore
	clock    ports.Clock
	launcher ports.RunLauncher
	watcher  ports.Watcher
	tracer   ports.Tracer
	logger   ports.Logger

	out       io.Writer
	traceOnce sync.Once
}

// New creates a new App instance.
func New(
	loader ports.DefinitionsLoader,
	store ports.EventStore,
	clock ports.Clock,
	launcher ports.RunLauncher,
	watcher ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		store:    store,
		clock:    clock,
		launcher: launcher,
		watcher:  watcher,
		tracer:   tracer,
		logger:   log,
		out:      os.Stdout,
	}
}

// WithOutput redirects tick report rendering. Primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// EvaluateOptions configuration for the Evaluate method.
type EvaluateOptions struct {
	Path        string
	DryRun      bool
	Trace       bool
	Timeout     time.Duration
	Parallelism int
}

// Evaluate runs a single evaluation tick: load definitions, evaluate every
// automation condition against the event log, render the tick report, and
// submit the resulting run requests unless DryRun is set.
func (a *App) Evaluate(ctx context.Context, opts EvaluateOptions) error {
	graph, err := a.loader.Load(opts.Path)
	if err != nil {
		return zerr.Wrap(err, "failed to load definitions")
	}

	if opts.Trace {
		a.setupTracing()
	}

	tick, err := a.orchestrator(opts.Parallelism, opts.Timeout).Tick(ctx, graph)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, report.Render(tick))

	if err := a.submit(ctx, tick.RunRequests, opts.DryRun); err != nil {
		return err
	}

	if len(tick.Failures) > 0 {
		return zerr.With(zerr.Wrap(domain.ErrTickHadFailures, "some assets failed to evaluate"), "failed_assets", len(tick.Failures))
	}
	return nil
}

// DaemonOptions configuration for the Daemon method.
type DaemonOptions struct {
	Path        string
	Interval    time.Duration
	DryRun      bool
	Trace       bool
	Timeout     time.Duration
	Parallelism int
}

// Daemon evaluates the graph on a fixed interval until the context is
// cancelled, hot-reloading definitions whenever the file changes. The graph
// is always replaced wholesale; a broken edit keeps the previous graph
// running.
func (a *App) Daemon(ctx context.Context, opts DaemonOptions) error {
	path := opts.Path
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return zerr.Wrap(err, "failed to determine working directory")
		}
		path, err = a.loader.Discover(cwd)
		if err != nil {
			return err
		}
	}

	graph, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load definitions")
	}

	if opts.Trace {
		a.setupTracing()
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	orch := a.orchestrator(opts.Parallelism, opts.Timeout)
	changed := make(chan struct{}, 1)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := a.watcher.Watch(ctx, path, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		a.logger.Info(fmt.Sprintf("daemon started, evaluating every %s", interval))

		// First tick fires immediately; the ticker covers the rest.
		if err := a.tick(ctx, orch, graph, opts.DryRun); err != nil {
			return err
		}

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
				fresh, err := a.loader.Load(path)
				if err != nil {
					// Keep evaluating the last good graph.
					a.logger.Error(zerr.Wrap(err, "failed to reload definitions"))
					continue
				}
				graph = fresh
				a.logger.Info("definitions changed, graph reloaded")
			case <-ticker.C:
				if err := a.tick(ctx, orch, graph, opts.DryRun); err != nil {
					return err
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Validate loads the definitions file and reports whether it describes a
// well-formed asset graph. No tick is run.
func (a *App) Validate(_ context.Context, path string) error {
	graph, err := a.loader.Load(path)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("definitions valid: %d assets", len(graph.TopoOrder())))
	return nil
}

// tick runs one evaluation pass inside the daemon loop. Per-asset failures
// are reported in the rendered tick output and logged; only an abandoned
// tick stops the daemon.
func (a *App) tick(ctx context.Context, orch *orchestrator.Orchestrator, graph *domain.AssetGraph, dryRun bool) error {
	result, err := orch.Tick(ctx, graph)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	fmt.Fprint(a.out, report.Render(result))

	for _, failure := range result.Failures {
		a.logger.Error(failure.Err)
	}

	return a.submit(ctx, result.RunRequests, dryRun)
}

// submit hands run requests to the launcher through a scoped handle. The
// handle is released on every exit path.
func (a *App) submit(ctx context.Context, reqs []domain.RunRequest, dryRun bool) error {
	if len(reqs) == 0 {
		return nil
	}
	if dryRun {
		a.logger.Info(fmt.Sprintf("dry run: skipping %d run request(s)", len(reqs)))
		return nil
	}

	handle, err := a.launcher.Acquire(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to acquire run launcher")
	}
	defer func() { _ = handle.Release() }()

	if err := handle.Launch(ctx, reqs); err != nil {
		return zerr.Wrap(err, "failed to launch runs")
	}
	return nil
}

func (a *App) orchestrator(parallelism int, timeout time.Duration) *orchestrator.Orchestrator {
	var orchOpts []orchestrator.Option
	if parallelism > 0 {
		orchOpts = append(orchOpts, orchestrator.WithParallelism(parallelism))
	}
	if timeout > 0 {
		orchOpts = append(orchOpts, orchestrator.WithTimeout(timeout))
	}
	return orchestrator.New(a.store, a.clock, a.logger, a.tracer, orchOpts...)
}

// setupTracing installs a tracer provider whose spans are reported through
// the logger. Without it the global provider stays a no-op and spans cost
// nothing.
func (a *App) setupTracing() {
	a.traceOnce.Do(func() {
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(telemetry.NewBridge(a.logger)),
		)
		otel.SetTracerProvider(tp)
	})
}
