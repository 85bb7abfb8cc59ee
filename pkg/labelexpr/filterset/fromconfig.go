package filterset

import (
	"context"
	"fmt"
	"sort"

	"github.com/wisgy/labelexpr/pkg/labelexpr"
	"github.com/wisgy/labelexpr/pkg/labelexpr/config"
)

// FromConfig builds a Set from the "filters" block of a configuration
// document, where names map to expression text. Filters are compiled in
// name order so the first error reported is deterministic.
//
// Returns ErrNoFilters if the block is missing or empty.
func FromConfig[T labelexpr.Label](ctx context.Context, cfg config.Config, opts ...Option[T]) (*Set[T], error) {
	defs := cfg.StringMap("filters")
	if len(defs) == 0 {
		return nil, ErrNoFilters
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	s := New[T](opts...)
	for _, name := range names {
		if err := s.Add(ctx, name, defs[name]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FromFile loads a configuration file (YAML or JSON, by extension) and
// builds a Set from its "filters" block.
func FromFile[T labelexpr.Label](ctx context.Context, path string, opts ...Option[T]) (*Set[T], error) {
	cfg, err := config.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load filter config: %w", err)
	}
	return FromConfig[T](ctx, cfg, opts...)
}
