package filterset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wisgy/labelexpr/pkg/labelexpr"
	"github.com/wisgy/labelexpr/pkg/labelexpr/observability"
)

var (
	// ErrFilterNotFound indicates a Check against a name that was never added.
	ErrFilterNotFound = errors.New("filter not found")
	// ErrDuplicateFilter indicates an Add with a name already in the set.
	ErrDuplicateFilter = errors.New("duplicate filter")
	// ErrNoFilters indicates a configuration source with no filter definitions.
	ErrNoFilters = errors.New("no filters defined")
)

// Set is a named collection of compiled filters over label type T.
// Safe for concurrent use.
type Set[T labelexpr.Label] struct {
	mu      sync.RWMutex
	filters map[string]*labelexpr.Tree[T]

	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
	compileOpts []labelexpr.Option
}

// Option configures a Set.
type Option[T labelexpr.Label] func(*Set[T])

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger[T labelexpr.Label](logger *slog.Logger) Option[T] {
	return func(s *Set[T]) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Defaults to no-op.
func WithMetrics[T labelexpr.Label](m observability.MetricsRecorder) Option[T] {
	return func(s *Set[T]) {
		s.metrics = m
	}
}

// WithSpanManager sets the trace span manager. Defaults to no-op.
func WithSpanManager[T labelexpr.Label](sm observability.SpanManager) Option[T] {
	return func(s *Set[T]) {
		s.spans = sm
	}
}

// WithCompileOptions sets options applied to every filter compilation,
// such as labelexpr.WithStrictParens().
func WithCompileOptions[T labelexpr.Label](opts ...labelexpr.Option) Option[T] {
	return func(s *Set[T]) {
		s.compileOpts = opts
	}
}

// New creates an empty filter set.
func New[T labelexpr.Label](opts ...Option[T]) *Set[T] {
	s := &Set[T]{
		filters: make(map[string]*labelexpr.Tree[T]),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add compiles expr and registers it under name.
// Returns ErrDuplicateFilter if name is already present, or a
// compilation error wrapping the labelexpr sentinel.
func (s *Set[T]) Add(ctx context.Context, name, expr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.filters[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateFilter, name)
	}

	_, span := s.spans.StartCompileSpan(ctx, name)
	start := time.Now()

	tree, err := labelexpr.Compile[T](expr, s.compileOpts...)
	duration := time.Since(start)

	nodes := 0
	if tree != nil {
		nodes = tree.Size()
	}
	s.metrics.RecordCompile(ctx, name, nodes, duration, err)
	s.spans.EndSpanWithError(span, err)

	if err != nil {
		observability.LogCompileError(s.logger, name, expr, err)
		return fmt.Errorf("compile filter %q: %w", name, err)
	}

	observability.LogCompile(s.logger, name, float64(duration.Milliseconds()), nodes)
	s.filters[name] = tree
	return nil
}

// Check evaluates the named filter against a point's labels.
// Returns ErrFilterNotFound if name is not in the set.
func (s *Set[T]) Check(ctx context.Context, name string, labels []T) (bool, error) {
	s.mu.RLock()
	tree, ok := s.filters[name]
	s.mu.RUnlock()

	if !ok {
		return false, fmt.Errorf("%w: %q", ErrFilterNotFound, name)
	}

	queryID := uuid.New().String()
	_, span := s.spans.StartCheckSpan(ctx, name, queryID)
	start := time.Now()

	matched := tree.Check(labels)

	s.metrics.RecordCheck(ctx, name, matched, time.Since(start))
	s.spans.EndSpanWithError(span, nil)
	observability.LogCheck(s.logger, queryID, name, matched, len(labels))

	return matched, nil
}

// Names returns the filter names in the set, in unspecified order.
func (s *Set[T]) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.filters))
	for name := range s.filters {
		names = append(names, name)
	}
	return names
}

// Has reports whether name is in the set.
func (s *Set[T]) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.filters[name]
	return ok
}

// Len returns the number of filters in the set.
func (s *Set[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.filters)
}

// Remove deletes the named filter. Returns ErrFilterNotFound if absent.
func (s *Set[T]) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.filters[name]; !ok {
		return fmt.Errorf("%w: %q", ErrFilterNotFound, name)
	}
	delete(s.filters, name)
	return nil
}
