package ipformat

import "fmt"

// Rules sets the active detection rules and their priority order.
//
// Rule names are case-insensitive and surrounding whitespace is ignored.
// Order matters: several rules can structurally match the same input and the
// first match wins.
func Rules(names ...string) Option {
	resolved := canonicalizeRuleNames(cloneStrings(names))

	return func(c *config) error {
		c.ruleOrder = cloneStrings(resolved)
		return nil
	}
}

// WithLogger sets the logger implementation used for warning events.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets a concrete metrics implementation.
//
// If previously configured, a metrics factory is disabled.
func WithMetrics(metrics Metrics) Option {
	return func(c *config) error {
		c.metrics = metrics
		c.metricsFactory = nil
		c.useMetricsFactory = false
		return nil
	}
}

// WithMetricsFactory configures a lazy metrics constructor.
//
// The factory is invoked only for the final winning metrics option after
// option validation succeeds.
func WithMetricsFactory(factory func() (Metrics, error)) Option {
	return func(c *config) error {
		if factory == nil {
			return fmt.Errorf("metrics factory cannot be nil")
		}

		c.metricsFactory = factory
		c.useMetricsFactory = true
		return nil
	}
}
