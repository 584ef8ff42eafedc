package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/mock/gomock"

	"github.com/contribulate/dagster/internal/adapters/telemetry"
	"github.com/contribulate/dagster/internal/core/ports"
	"github.com/contribulate/dagster/internal/core/ports/mocks"
)

func TestOTelTracer_Start(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)

	tracer := telemetry.NewOTelTracer("test")
	ctx, span := tracer.Start(context.Background(), "tick",
		ports.WithAttribute("asset_count", "3"),
	)

	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.RecordError(errors.New("evaluation failed"))
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(context.Background(), "tick")

	assert.NotNil(t, ctx)
	require.NotNil(t, span)

	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestBridge_LogsCompletedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)),
	)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "tick")
	span.End()
}

func TestBridge_LogsFailedSpansAsWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)),
	)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	otel.SetTracerProvider(tp)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "tick")
	span.RecordError(errors.New("boom"))
	span.End()
}
