// Package observability provides structured logging, metrics, and
// distributed tracing for labelexpr filter compilation and evaluation.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds filter evaluation context to a logger.
// Returns a new logger with query_id and filter fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "q-123", "premium")
//	enriched.Debug("checking") // includes query_id, filter
func EnrichLogger(logger *slog.Logger, queryID, filter string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("query_id", queryID),
		slog.String("filter", filter),
	)
}

// LogCompile logs a successful filter compilation.
func LogCompile(logger *slog.Logger, filter string, durationMs float64, treeNodes int) {
	if logger == nil {
		return
	}
	logger.Debug("filter compiled",
		slog.String("filter", filter),
		slog.Float64("duration_ms", durationMs),
		slog.Int("tree_nodes", treeNodes),
	)
}

// LogCompileError logs a failed filter compilation.
func LogCompileError(logger *slog.Logger, filter, expr string, err error) {
	if logger == nil {
		return
	}
	logger.Error("filter compile failed",
		slog.String("filter", filter),
		slog.String("expr", expr),
		slog.String("error", err.Error()),
	)
}

// LogCheck logs a filter evaluation.
func LogCheck(logger *slog.Logger, queryID, filter string, matched bool, labelCount int) {
	if logger == nil {
		return
	}
	logger.Debug("filter checked",
		slog.String("query_id", queryID),
		slog.String("filter", filter),
		slog.Bool("matched", matched),
		slog.Int("label_count", labelCount),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
