// Package assertion evaluates declarative time comparisons. A Definition
// names a subject, a target, a condition and a tolerance; the engine runs
// it through the fluent timeassert API and captures the outcome as a
// Result. Definitions are usually loaded from YAML or JSON bank files.
package assertion

import (
	"time"

	"digital.vasic.chronoassert/pkg/condition"
)

// Direction selects which comparison a definition performs.
type Direction string

const (
	// Before measures target - subject.
	Before Direction = "before"
	// After measures subject - target.
	After Direction = "after"
)

// Valid reports whether d is Before or After.
func (d Direction) Valid() bool {
	return d == Before || d == After
}

// Definition describes a single time comparison.
type Definition struct {
	// Name identifies the assertion in results and reports.
	Name string `json:"name" yaml:"name"`

	// Subject is the point in time under test.
	Subject time.Time `json:"subject" yaml:"subject"`

	// Target is the point in time compared against.
	Target time.Time `json:"target" yaml:"target"`

	// Check is a compact "condition:tolerance[:direction]" form,
	// e.g. "within:10s:after". When set it overrides Condition,
	// Tolerance and Direction.
	Check string `json:"check,omitempty" yaml:"check,omitempty"`

	// Condition is the relational condition to apply.
	Condition condition.Condition `json:"condition" yaml:"condition,omitempty"`

	// Tolerance is the duration threshold. YAML accepts
	// time.ParseDuration strings such as "1m30s".
	Tolerance time.Duration `json:"tolerance" yaml:"tolerance,omitempty"`

	// Direction is "before" (the default) or "after".
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty"`

	// Reason is an optional explanation inserted into the failure
	// message as a "because" clause.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Result captures the outcome of evaluating a single definition.
type Result struct {
	// Name is copied from the definition.
	Name string `json:"name"`

	// Condition is the condition that was applied.
	Condition condition.Condition `json:"condition"`

	// Direction is the comparison direction.
	Direction Direction `json:"direction"`

	// Tolerance is the expected duration threshold.
	Tolerance time.Duration `json:"tolerance"`

	// Actual is the measured signed distance.
	Actual time.Duration `json:"actual"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message is the failure message, or a short description of
	// the measured distance when the assertion passed.
	Message string `json:"message"`
}
