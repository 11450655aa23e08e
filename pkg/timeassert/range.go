package timeassert

import (
	"fmt"
	"time"

	"digital.vasic.chronoassert/pkg/condition"
)

// RangeAssertion compares the distance between the subject and a target
// against a tolerance under one condition. It is completed by Before or
// After.
type RangeAssertion struct {
	parent    *TimeAssertions
	subject   *time.Time
	tolerance time.Duration
	predicate condition.Predicate
}

// NewRangeAssertion resolves c once and binds it to subject and tolerance.
// It panics with condition.ErrInvalidCondition if c is not a declared
// condition.
func NewRangeAssertion(
	parent *TimeAssertions,
	subject *time.Time,
	c condition.Condition,
	tolerance time.Duration,
) *RangeAssertion {
	return &RangeAssertion{
		parent:    parent,
		subject:   subject,
		tolerance: tolerance,
		predicate: condition.MustResolve(c),
	}
}

// Label returns the display label of the resolved condition.
func (r *RangeAssertion) Label() string {
	return r.predicate.Label
}

// Tolerance returns the tolerance the assertion was built with.
func (r *RangeAssertion) Tolerance() time.Duration {
	return r.tolerance
}

// Before asserts on the distance target - subject.
func (r *RangeAssertion) Before(target time.Time, because ...any) AndConstraint {
	subject := r.mustSubject()
	return r.evaluate("before", subject, target, target.Sub(subject), because)
}

// After asserts on the distance subject - target.
func (r *RangeAssertion) After(target time.Time, because ...any) AndConstraint {
	subject := r.mustSubject()
	return r.evaluate("after", subject, target, subject.Sub(target), because)
}

// Distance returns the signed distance Before or After would evaluate.
func (r *RangeAssertion) Distance(target time.Time, before bool) time.Duration {
	subject := r.mustSubject()
	if before {
		return target.Sub(subject)
	}
	return subject.Sub(target)
}

func (r *RangeAssertion) evaluate(
	direction string,
	subject, target time.Time,
	actual time.Duration,
	because []any,
) AndConstraint {
	if !r.predicate.Compare(actual, r.tolerance) {
		r.parent.reporter.FailWith(because,
			"Expected date and/or time {0} to be "+r.predicate.Label+
				" {1} "+direction+" {2}{reason}, but it differs {3}.",
			subject, r.tolerance, target, actual,
		)
	}
	return AndConstraint{And: r.parent}
}

func (r *RangeAssertion) mustSubject() time.Time {
	if r.subject == nil {
		panic(fmt.Errorf(
			"%w: cannot compare a missing date and/or time", ErrInvalidState,
		))
	}
	return *r.subject
}
