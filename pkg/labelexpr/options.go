package labelexpr

// compileConfig holds configuration for expression compilation.
type compileConfig struct {
	strictParens bool
}

// defaultCompileConfig returns the default compilation configuration.
func defaultCompileConfig() compileConfig {
	return compileConfig{}
}

// Option configures compilation behavior.
type Option func(*compileConfig)

// WithStrictParens makes unbalanced parentheses a compile error.
//
// By default an unmatched ')' is silently absorbed and an unmatched '('
// is discarded, so "1|2)" compiles the same as "1|2". With this option
// both cases fail with ErrMalformedExpression.
//
// Example:
//
//	_, err := labelexpr.Compile[uint32]("1|2)", labelexpr.WithStrictParens())
func WithStrictParens() Option {
	return func(c *compileConfig) {
		c.strictParens = true
	}
}
