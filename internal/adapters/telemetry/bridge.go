package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/contribulate/dagster/internal/core/ports"
)

// timePrecision keeps logged durations readable.
const timePrecision = 100 * time.Microsecond

// Bridge implements sdktrace.SpanProcessor, forwarding completed spans to the
// application logger. It gives the daemon span-level visibility without an
// external collector.
type Bridge struct {
	logger ports.Logger
}

// NewBridge creates a span processor that logs span completions.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing; only completions are logged.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the completed span with its duration and status.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime()).Round(timePrecision)
	msg := fmt.Sprintf("span %s completed in %s", s.Name(), elapsed)

	if s.Status().Code == codes.Error {
		b.logger.Warn(msg + " (failed: " + s.Status().Description + ")")
		return
	}
	b.logger.Info(msg)
}

// Shutdown implements sdktrace.SpanProcessor.
func (b *Bridge) Shutdown(context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (b *Bridge) ForceFlush(context.Context) error { return nil }
