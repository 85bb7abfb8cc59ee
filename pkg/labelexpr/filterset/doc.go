// Package filterset manages named collections of compiled label filters.
//
// A Set maps filter names to compiled expression trees and evaluates
// point label sets against them by name. Sets are safe for concurrent
// use: filters may be added while other goroutines evaluate.
//
// Basic usage:
//
//	set := filterset.New[uint32]()
//	if err := set.Add(ctx, "premium", "(1|2)&!3"); err != nil {
//		return err
//	}
//	matched, err := set.Check(ctx, "premium", []uint32{1, 4})
//
// Sets can also be loaded from YAML or JSON configuration files via
// FromFile, where a top-level "filters" block maps names to expressions:
//
//	filters:
//	  premium: "(1|2)&!3"
//	  visible: "10&11"
//
// Observability is opt-in through options: WithLogger for structured
// logging, WithMetrics for OTel metrics, WithSpanManager for tracing.
package filterset
