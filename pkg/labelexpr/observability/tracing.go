package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the labelexpr tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("labelexpr")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartCompileSpan starts a span for a filter compilation.
	// Returns the context with span and the span itself.
	StartCompileSpan(ctx context.Context, filter string) (context.Context, trace.Span)

	// StartCheckSpan starts a span for a filter evaluation.
	StartCheckSpan(ctx context.Context, filter, queryID string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartCompileSpan starts a span for a filter compilation.
func (m *otelSpanManager) StartCompileSpan(ctx context.Context, filter string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "labelexpr.compile",
		trace.WithAttributes(
			attribute.String("filter", filter),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartCheckSpan starts a span for a filter evaluation.
func (m *otelSpanManager) StartCheckSpan(ctx context.Context, filter, queryID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "labelexpr.check",
		trace.WithAttributes(
			attribute.String("filter", filter),
			attribute.String("query.id", queryID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
