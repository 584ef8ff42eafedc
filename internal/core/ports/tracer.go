package ports

import "context"

// SpanConfig carries optional span configuration.
type SpanConfig struct {
	Attributes map[string]string
}

// SpanOption configures a span at start time.
type SpanOption func(*SpanConfig)

// WithAttribute attaches a string attribute to the span.
func WithAttribute(key, value string) SpanOption {
	return func(cfg *SpanConfig) {
		if cfg.Attributes == nil {
			cfg.Attributes = make(map[string]string)
		}
		cfg.Attributes[key] = value
	}
}

// Span is one traced operation.
type Span interface {
	// RecordError marks the span as failed with err.
	RecordError(err error)
	// End completes the span.
	End()
}

// Tracer creates spans around ticks and per-asset evaluations.
type Tracer interface {
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}
