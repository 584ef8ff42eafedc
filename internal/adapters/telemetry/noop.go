package telemetry

import (
	"context"

	"github.com/contribulate/dagster/internal/core/ports"
)

// NoOpTracer is a ports.Tracer that records nothing. It is the default when
// tracing is disabled.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

type noOpSpan struct{}

func (noOpSpan) RecordError(error) {}
func (noOpSpan) End()              {}
