// Package metrics records assertion evaluation outcomes.
package metrics

import "digital.vasic.chronoassert/pkg/assertion"

// AssertionMetrics defines the interface for recording assertion
// metrics.
type AssertionMetrics interface {
	// Observe records one evaluated assertion.
	Observe(r assertion.Result)
	// RecordPass records a completed evaluation pass over a bank.
	RecordPass(total, failed int)
}

// NoopMetrics is a no-op implementation of AssertionMetrics
// useful for testing or when metrics collection is disabled.
type NoopMetrics struct{}

// Observe does nothing.
func (NoopMetrics) Observe(assertion.Result) {}

// RecordPass does nothing.
func (NoopMetrics) RecordPass(_, _ int) {}
