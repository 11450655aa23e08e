// Package timeassert provides fluent assertions on points in time.
//
//	timeassert.That(failure.Testing(t), started).
//		BeWithin(2 * time.Second).Before(finished, "the job is quick").
//		And.BeLessThan(time.Minute).Before(deadline)
//
// Mismatches are handed to the failure.Reporter given to That; the
// assertions themselves never abort. A nil subject is a programming error
// and panics with an error wrapping ErrInvalidState.
package timeassert

import (
	"errors"
	"time"

	"digital.vasic.chronoassert/pkg/condition"
	"digital.vasic.chronoassert/pkg/failure"
)

// ErrInvalidState is wrapped by the panic raised when an assertion is
// evaluated against a missing subject.
var ErrInvalidState = errors.New("invalid state")

// TimeAssertions is the assertion context for one subject.
type TimeAssertions struct {
	subject  *time.Time
	reporter failure.Reporter
}

// AndConstraint is returned by every assertion so calls can be chained
// through its And field.
type AndConstraint struct {
	And *TimeAssertions
}

// That starts an assertion chain on subject.
func That(r failure.Reporter, subject time.Time) *TimeAssertions {
	return &TimeAssertions{subject: &subject, reporter: r}
}

// ThatPtr starts an assertion chain on an optional subject.
func ThatPtr(r failure.Reporter, subject *time.Time) *TimeAssertions {
	return &TimeAssertions{subject: subject, reporter: r}
}

// Subject returns the value under test, which may be nil.
func (a *TimeAssertions) Subject() *time.Time {
	return a.subject
}

// HaveValue asserts that the subject is present.
func (a *TimeAssertions) HaveValue(because ...any) AndConstraint {
	if a.subject == nil {
		a.reporter.FailWith(because,
			"Expected a value{reason}, but found {0}.", a.subject)
	}
	return AndConstraint{And: a}
}

// BeNil asserts that the subject is absent.
func (a *TimeAssertions) BeNil(because ...any) AndConstraint {
	if a.subject != nil {
		a.reporter.FailWith(because,
			"Expected no value{reason}, but found {0}.", a.subject)
	}
	return AndConstraint{And: a}
}

// BeMoreThan requires the distance to the target to exceed d.
func (a *TimeAssertions) BeMoreThan(d time.Duration) *RangeAssertion {
	return NewRangeAssertion(a, a.subject, condition.MoreThan, d)
}

// BeAtLeast requires the distance to the target to be d or more.
func (a *TimeAssertions) BeAtLeast(d time.Duration) *RangeAssertion {
	return NewRangeAssertion(a, a.subject, condition.AtLeast, d)
}

// BeExactly requires the distance to the target to equal d.
func (a *TimeAssertions) BeExactly(d time.Duration) *RangeAssertion {
	return NewRangeAssertion(a, a.subject, condition.Exactly, d)
}

// BeWithin requires the distance to the target to be at most d. Only the
// upper bound is checked.
func (a *TimeAssertions) BeWithin(d time.Duration) *RangeAssertion {
	return NewRangeAssertion(a, a.subject, condition.Within, d)
}

// BeLessThan requires the distance to the target to be below d.
func (a *TimeAssertions) BeLessThan(d time.Duration) *RangeAssertion {
	return NewRangeAssertion(a, a.subject, condition.LessThan, d)
}
