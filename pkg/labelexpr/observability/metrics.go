package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records filter compilation and evaluation metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCompile records a filter compilation with its tree size,
	// duration, and error status. treeNodes is ignored on error.
	RecordCompile(ctx context.Context, filter string, treeNodes int, duration time.Duration, err error)

	// RecordCheck records a filter evaluation and its outcome.
	RecordCheck(ctx context.Context, filter string, matched bool, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	compiles       metric.Int64Counter
	compileLatency metric.Float64Histogram
	compileErrors  metric.Int64Counter
	treeNodes      metric.Int64Histogram
	checks         metric.Int64Counter
	checkLatency   metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("labelexpr")

	compiles, err := meter.Int64Counter("labelexpr.compile.count",
		metric.WithDescription("Number of filter compilations"),
	)
	if err != nil {
		return nil, err
	}

	compileLatency, err := meter.Float64Histogram("labelexpr.compile.latency_ms",
		metric.WithDescription("Filter compilation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	compileErrors, err := meter.Int64Counter("labelexpr.compile.errors",
		metric.WithDescription("Number of failed filter compilations"),
	)
	if err != nil {
		return nil, err
	}

	treeNodes, err := meter.Int64Histogram("labelexpr.tree.nodes",
		metric.WithDescription("Node count of compiled filter trees"),
	)
	if err != nil {
		return nil, err
	}

	checks, err := meter.Int64Counter("labelexpr.check.count",
		metric.WithDescription("Number of filter evaluations"),
	)
	if err != nil {
		return nil, err
	}

	checkLatency, err := meter.Float64Histogram("labelexpr.check.latency_ms",
		metric.WithDescription("Filter evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		compiles:       compiles,
		compileLatency: compileLatency,
		compileErrors:  compileErrors,
		treeNodes:      treeNodes,
		checks:         checks,
		checkLatency:   checkLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCompile records a filter compilation.
func (m *otelMetrics) RecordCompile(ctx context.Context, filter string, treeNodes int, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("filter", filter),
	}

	m.compiles.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.compileLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.compileErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
		return
	}
	m.treeNodes.Record(ctx, int64(treeNodes), metric.WithAttributes(attrs...))
}

// RecordCheck records a filter evaluation.
func (m *otelMetrics) RecordCheck(ctx context.Context, filter string, matched bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("filter", filter),
		attribute.Bool("matched", matched),
	}
	m.checks.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.checkLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}
